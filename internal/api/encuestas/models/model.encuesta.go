// Package models - domain encuestas (khảo sát ý kiến cử tri).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Encuesta một kết quả khảo sát cho một ứng viên tại một khu vực
type Encuesta struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Region     string  `json:"region" bson:"region"`
	Candidato  string  `json:"candidato" bson:"candidato"`
	Fecha      string  `json:"fecha" bson:"fecha"` // ISO yyyy-MM-dd
	Porcentaje float64 `json:"porcentaje" bson:"porcentaje"`
	Encuestera string  `json:"encuestera,omitempty" bson:"encuestera,omitempty"`
	Muestra    int     `json:"muestra,omitempty" bson:"muestra,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
