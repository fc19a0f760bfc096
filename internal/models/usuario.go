package models

import "time"

// Usuario is an account that can sign into the admin panel. The password
// column stores a bcrypt hash and is never serialized.
type Usuario struct {
	ID        int       `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	Password  string    `db:"password" json:"-"`
	Nombres   string    `db:"nombres" json:"nombres"`
	Apellidos string    `db:"apellidos" json:"apellidos"`
	IDRol     int       `db:"id_rol" json:"idRol"`
	Estado    bool      `db:"estado" json:"estado"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
