// Package models - domain comunicación.
//
// Năm resource của comunicación (publicidad, materiales, earned media,
// prensa pagada, vocerías) dùng chung một cấu trúc item, mỗi resource
// một collection riêng.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của một item comunicación
const (
	EstadoPendiente  = "pendiente"
	EstadoEnProceso  = "en-proceso"
	EstadoCompletado = "completado"
)

// ComItem một mục công việc truyền thông
type ComItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Titulo      string `json:"titulo" bson:"titulo"`
	Descripcion string `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Fecha       string `json:"fecha,omitempty" bson:"fecha,omitempty"` // ISO yyyy-MM-dd
	Estado      string `json:"estado" bson:"estado"`
	Responsable string `json:"responsable,omitempty" bson:"responsable,omitempty"`
	Enlace      string `json:"enlace,omitempty" bson:"enlace,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
