package models

import "time"

// Matricula enrolls an estudiante into a grupo for an academic period.
// fechaRegistro defaults to the current date at the storage layer.
type Matricula struct {
	ID            int       `db:"id" json:"id"`
	IDEstudiante  int       `db:"id_estudiante" json:"idEstudiante"`
	IDGrupo       int       `db:"id_grupo" json:"idGrupo"`
	Periodo       string    `db:"periodo" json:"periodo"`
	FechaRegistro Date      `db:"fecha_registro" json:"fechaRegistro"`
	Estado        bool      `db:"estado" json:"estado"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
