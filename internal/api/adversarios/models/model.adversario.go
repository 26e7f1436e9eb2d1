// Package models - các entity thuộc domain adversarios.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adversario đối thủ chính trị đang được theo dõi (resource /adversarios)
type Adversario struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Nombre  string `json:"nombre" bson:"nombre"`
	Partido string `json:"partido" bson:"partido"`
	Cargo   string `json:"cargo,omitempty" bson:"cargo,omitempty"`
	Region  string `json:"region,omitempty" bson:"region,omitempty"`

	Fortalezas  []string `json:"fortalezas,omitempty" bson:"fortalezas,omitempty"`
	Debilidades []string `json:"debilidades,omitempty" bson:"debilidades,omitempty"`

	ImageURL string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// Actualizacion một cập nhật theo thời gian về một đối thủ
// (resource /adversarios/actualizaciones)
type Actualizacion struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	AdversarioID primitive.ObjectID `json:"adversarioId" bson:"adversarioId"`

	Titulo    string `json:"titulo" bson:"titulo"`
	Contenido string `json:"contenido" bson:"contenido"`
	Fecha     string `json:"fecha" bson:"fecha"` // ISO yyyy-MM-dd
	Fuente    string `json:"fuente,omitempty" bson:"fuente,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
