package models

import "time"

// Acudiente is a guardian responsible for one or more estudiantes.
// numero_documento is unique only among active rows, so a re-registered
// guardian may share a document number with an inactive predecessor.
type Acudiente struct {
	ID              int        `db:"id" json:"id"`
	IDTipoDocumento int        `db:"id_tipo_documento" json:"idTipoDocumento"`
	NumeroDocumento string     `db:"numero_documento" json:"numeroDocumento"`
	Genero          string     `db:"genero" json:"genero"`
	Nombres         string     `db:"nombres" json:"nombres"`
	Apellidos       string     `db:"apellidos" json:"apellidos"`
	Telefono        *string    `db:"telefono" json:"telefono"`
	Correo          *string    `db:"correo" json:"correo"`
	Estado          bool       `db:"estado" json:"estado"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt       *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
}

// AcudienteEstudiante records a guardianship with its kinship.
type AcudienteEstudiante struct {
	ID           int       `db:"id" json:"id"`
	IDAcudiente  int       `db:"id_acudiente" json:"idAcudiente"`
	IDEstudiante int       `db:"id_estudiante" json:"idEstudiante"`
	Parentesco   *string   `db:"parentesco" json:"parentesco"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
