package models

import "time"

// Asignatura is a subject taught within an area.
type Asignatura struct {
	ID        int       `db:"id" json:"id"`
	IDArea    int       `db:"id_area" json:"idArea"`
	Nombre    string    `db:"nombre" json:"nombre"`
	Codigo    string    `db:"codigo" json:"codigo"`
	Estado    bool      `db:"estado" json:"estado"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
