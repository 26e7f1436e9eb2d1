// Package models - domain estrategia.
//
// Năm resource của estrategia (día D, debate, precampaña, calendario,
// planeación) dùng chung một cấu trúc item, mỗi resource một collection.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EstItem một mục kế hoạch chiến lược
type EstItem struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Titulo      string `json:"titulo" bson:"titulo"`
	Descripcion string `json:"descripcion,omitempty" bson:"descripcion,omitempty"`
	Fecha       string `json:"fecha" bson:"fecha"` // ISO yyyy-MM-dd
	Lugar       string `json:"lugar,omitempty" bson:"lugar,omitempty"`
	Responsable string `json:"responsable,omitempty" bson:"responsable,omitempty"`
	Completado  bool   `json:"completado" bson:"completado"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
