package models

import "time"

// Calificacion is a student's score on an evaluacion. valor is constrained
// to [0, 5] by chk_calificacion_valor at the storage layer.
type Calificacion struct {
	ID            int       `db:"id" json:"id"`
	IDEstudiante  int       `db:"id_estudiante" json:"idEstudiante"`
	IDEvaluacion  int       `db:"id_evaluacion" json:"idEvaluacion"`
	Valor         float64   `db:"valor" json:"valor"`
	FechaRegistro Date      `db:"fecha_registro" json:"fechaRegistro"`
	Observaciones *string   `db:"observaciones" json:"observaciones"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time `db:"updated_at" json:"updatedAt"`
}
