package models

import "time"

// Docente is a teacher, optionally linked to a usuario account.
type Docente struct {
	ID                int       `db:"id" json:"id"`
	IDUsuario         *int      `db:"id_usuario" json:"idUsuario"`
	IDTipoDocumento   int       `db:"id_tipo_documento" json:"idTipoDocumento"`
	NumeroDocumento   string    `db:"numero_documento" json:"numeroDocumento"`
	Nombres           string    `db:"nombres" json:"nombres"`
	Apellidos         string    `db:"apellidos" json:"apellidos"`
	Telefono          *string   `db:"telefono" json:"telefono"`
	Correo            *string   `db:"correo" json:"correo"`
	FechaNacimiento   *Date     `db:"fecha_nacimiento" json:"fechaNacimiento"`
	Genero            *string   `db:"genero" json:"genero"`
	FechaContratacion Date      `db:"fecha_contratacion" json:"fechaContratacion"`
	Estado            bool      `db:"estado" json:"estado"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

// DocenteAsignatura links a docente to an asignatura they can teach.
// Join table: unique (docente, asignatura) pair, createdAt only.
type DocenteAsignatura struct {
	ID           int       `db:"id" json:"id"`
	IDDocente    int       `db:"id_docente" json:"idDocente"`
	IDAsignatura int       `db:"id_asignatura" json:"idAsignatura"`
	Estado       bool      `db:"estado" json:"estado"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
