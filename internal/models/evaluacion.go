package models

import "time"

// Evaluacion is a gradable assessment tied to a grado-asignatura pairing.
// porcentaje is its weight (0-100, two decimals); the schema does not force
// the weights of a subject to add up to 100.
type Evaluacion struct {
	ID                int       `db:"id" json:"id"`
	IDGradoAsignatura int       `db:"id_grado_asignatura" json:"idGradoAsignatura"`
	Tipo              string    `db:"tipo" json:"tipo"`
	Fecha             Date      `db:"fecha" json:"fecha"`
	Descripcion       *string   `db:"descripcion" json:"descripcion"`
	Porcentaje        float64   `db:"porcentaje" json:"porcentaje"`
	Estado            bool      `db:"estado" json:"estado"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}
