package models

import "time"

// Estudiante is a learner. The idAcudiente link is the primary guardian and
// clears to null when that acudiente is removed; full guardianships live in
// acudiente_estudiante.
type Estudiante struct {
	ID              int        `db:"id" json:"id"`
	IDTipoDocumento int        `db:"id_tipo_documento" json:"idTipoDocumento"`
	IDAcudiente     *int       `db:"id_acudiente" json:"idAcudiente"`
	NumeroDocumento string     `db:"numero_documento" json:"numeroDocumento"`
	Genero          string     `db:"genero" json:"genero"`
	Nombres         string     `db:"nombres" json:"nombres"`
	Apellidos       string     `db:"apellidos" json:"apellidos"`
	FechaNacimiento Date       `db:"fecha_nacimiento" json:"fechaNacimiento"`
	Estado          bool       `db:"estado" json:"estado"`
	CreatedAt       time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt       *time.Time `db:"deleted_at" json:"deletedAt,omitempty"`
}
