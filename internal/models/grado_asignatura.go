package models

import "time"

// GradoAsignatura assigns an asignatura to a grado, optionally with the
// docente teaching it there. Unique per (grado, asignatura).
type GradoAsignatura struct {
	ID           int       `db:"id" json:"id"`
	IDGrado      int       `db:"id_grado" json:"idGrado"`
	IDAsignatura int       `db:"id_asignatura" json:"idAsignatura"`
	IDDocente    *int      `db:"id_docente" json:"idDocente"`
	Estado       bool      `db:"estado" json:"estado"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
