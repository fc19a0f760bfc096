package models

import "time"

// Grado is an academic grade level (e.g. "Sexto", nivel "Secundaria").
type Grado struct {
	ID          int       `db:"id" json:"id"`
	Nombre      string    `db:"nombre" json:"nombre"`
	Nivel       string    `db:"nivel" json:"nivel"`
	Descripcion *string   `db:"descripcion" json:"descripcion"`
	Estado      bool      `db:"estado" json:"estado"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
