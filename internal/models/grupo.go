package models

import "time"

// Grupo is a concrete class group within a grado for a school year.
type Grupo struct {
	ID          int       `db:"id" json:"id"`
	IDGrado     int       `db:"id_grado" json:"idGrado"`
	Codigo      string    `db:"codigo" json:"codigo"`
	AnioLectivo string    `db:"anio_lectivo" json:"anioLectivo"`
	Estado      bool      `db:"estado" json:"estado"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
