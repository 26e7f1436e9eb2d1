// Package models - Aviso thuộc domain avisos (collection avisos).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Aviso thông báo chiến dịch do server sở hữu (resource /avisos).
type Aviso struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Titulo    string `json:"titulo" bson:"titulo"`
	Contenido string `json:"contenido" bson:"contenido"`
	Autor     string `json:"autor,omitempty" bson:"autor,omitempty"`
	Categoria string `json:"categoria,omitempty" bson:"categoria,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
