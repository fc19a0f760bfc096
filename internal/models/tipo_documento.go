package models

import "time"

// TipoDocumento is the identity-document lookup table. It carries no estado
// flag: every row is always visible.
type TipoDocumento struct {
	ID          int       `db:"id" json:"id"`
	Nombre      string    `db:"nombre" json:"nombre"`
	Abreviatura string    `db:"abreviatura" json:"abreviatura"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
