package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/academico/school-management-api/internal/models"
)

// UsuarioRepository extends the generic CRUD access with the credential
// lookups the auth flow needs.
type UsuarioRepository struct {
	*Crud[models.Usuario]
	db *sqlx.DB
}

// NewUsuarioRepository constructs a UsuarioRepository.
func NewUsuarioRepository(db *sqlx.DB) *UsuarioRepository {
	crud := NewCrud[models.Usuario](db, Descriptor{
		Schema:    coreSchema,
		Table:     "usuario",
		Columns:   []string{"id", "username", "password", "nombres", "apellidos", "id_rol", "estado", "created_at", "updated_at"},
		Insert:    []string{"username", "password", "nombres", "apellidos", "id_rol"},
		HasEstado: true,
	})
	return &UsuarioRepository{Crud: crud, db: db}
}

// FindByUsername fetches a usuario by username, case-insensitively, in any
// state. sql.ErrNoRows propagates when no account matches.
func (r *UsuarioRepository) FindByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	const query = `SELECT id, username, password, nombres, apellidos, id_rol, estado, created_at, updated_at
        FROM core.usuario WHERE LOWER(username) = LOWER($1)`
	var user models.Usuario
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		return nil, err
	}
	return &user, nil
}
