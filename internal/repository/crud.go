package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	appErrors "github.com/academico/school-management-api/pkg/errors"
)

// Descriptor describes how one table maps onto the uniform CRUD queries.
// Insert lists exactly the client-settable columns; everything else (id,
// estado, timestamps, deleted_at) is generated or defaulted by the storage
// engine.
type Descriptor struct {
	Schema     string
	Table      string
	Columns    []string
	Insert     []string
	HasEstado  bool
	HasDeleted bool
}

func (d Descriptor) qualified() string {
	if d.Schema == "" {
		return d.Table
	}
	return d.Schema + "." + d.Table
}

// Crud is the descriptor-driven repository shared by every entity. The
// per-entity constructors in catalog.go instantiate it with the right
// descriptor and row type.
type Crud[T any] struct {
	db   *sqlx.DB
	desc Descriptor
}

// NewCrud constructs a Crud repository for the given descriptor.
func NewCrud[T any](db *sqlx.DB, desc Descriptor) *Crud[T] {
	return &Crud[T]{db: db, desc: desc}
}

// Table returns the unqualified table name, used for logging and cache keys.
func (r *Crud[T]) Table() string {
	return r.desc.Table
}

// List returns every visible row: estado = true where the flag exists and
// deleted_at IS NULL where soft deletion exists; tables without either
// notion return all rows.
func (r *Crud[T]) List(ctx context.Context) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(r.desc.Columns, ", "), r.desc.qualified())

	var conds []string
	if r.desc.HasEstado {
		conds = append(conds, "estado = TRUE")
	}
	if r.desc.HasDeleted {
		conds = append(conds, "deleted_at IS NULL")
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id"

	rows := []T{}
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", r.desc.Table, err)
	}
	return rows, nil
}

// Create inserts one row and returns it fully populated, generated id and
// defaulted columns included. Constraint rejections come back as tagged
// errors so callers can tell duplicates from missing references.
func (r *Crud[T]) Create(ctx context.Context, arg interface{}) (*T, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s) RETURNING %s",
		r.desc.qualified(),
		strings.Join(r.desc.Insert, ", "),
		strings.Join(r.desc.Insert, ", :"),
		strings.Join(r.desc.Columns, ", "),
	)

	rows, err := sqlx.NamedQueryContext(ctx, r.db, query, arg)
	if err != nil {
		return nil, appErrors.FromPostgres(err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, appErrors.FromPostgres(err)
		}
		return nil, fmt.Errorf("insert %s: no row returned", r.desc.Table)
	}

	var created T
	if err := rows.StructScan(&created); err != nil {
		return nil, fmt.Errorf("scan %s: %w", r.desc.Table, err)
	}
	return &created, nil
}

// FindByID fetches one row by primary key. sql.ErrNoRows propagates so the
// service layer can classify it.
func (r *Crud[T]) FindByID(ctx context.Context, id interface{}) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1",
		strings.Join(r.desc.Columns, ", "), r.desc.qualified())

	var row T
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		return nil, err
	}
	return &row, nil
}

// SoftDelete stamps deleted_at on a live row. sql.ErrNoRows signals that no
// live row matched (absent or already deleted).
func (r *Crud[T]) SoftDelete(ctx context.Context, id int) error {
	if !r.desc.HasDeleted {
		return fmt.Errorf("soft delete %s: table has no deleted_at column", r.desc.Table)
	}

	query := fmt.Sprintf("UPDATE %s SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL", r.desc.qualified())
	res, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return appErrors.FromPostgres(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("soft delete %s: %w", r.desc.Table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
