package models

import "time"

// Rol is an application role assignable to usuarios.
type Rol struct {
	ID          int       `db:"id" json:"id"`
	Nombre      string    `db:"nombre" json:"nombre"`
	Descripcion *string   `db:"descripcion" json:"descripcion"`
	Estado      bool      `db:"estado" json:"estado"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
