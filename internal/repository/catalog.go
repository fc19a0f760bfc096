package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/academico/school-management-api/internal/models"
)

// All academic tables live under the core schema; only the legacy students
// roster sits in public.
const coreSchema = "core"

func NewTipoDocumentoRepository(db *sqlx.DB) *Crud[models.TipoDocumento] {
	return NewCrud[models.TipoDocumento](db, Descriptor{
		Schema:  coreSchema,
		Table:   "tipo_documento",
		Columns: []string{"id", "nombre", "abreviatura", "created_at", "updated_at"},
		Insert:  []string{"nombre", "abreviatura"},
	})
}

func NewRolRepository(db *sqlx.DB) *Crud[models.Rol] {
	return NewCrud[models.Rol](db, Descriptor{
		Schema:    coreSchema,
		Table:     "rol",
		Columns:   []string{"id", "nombre", "descripcion", "estado", "created_at", "updated_at"},
		Insert:    []string{"nombre", "descripcion"},
		HasEstado: true,
	})
}

func NewAreaRepository(db *sqlx.DB) *Crud[models.Area] {
	return NewCrud[models.Area](db, Descriptor{
		Schema:    coreSchema,
		Table:     "area",
		Columns:   []string{"id", "nombre", "descripcion", "estado", "created_at", "updated_at"},
		Insert:    []string{"nombre", "descripcion"},
		HasEstado: true,
	})
}

func NewAsignaturaRepository(db *sqlx.DB) *Crud[models.Asignatura] {
	return NewCrud[models.Asignatura](db, Descriptor{
		Schema:    coreSchema,
		Table:     "asignatura",
		Columns:   []string{"id", "id_area", "nombre", "codigo", "estado", "created_at", "updated_at"},
		Insert:    []string{"id_area", "nombre", "codigo"},
		HasEstado: true,
	})
}

func NewGradoRepository(db *sqlx.DB) *Crud[models.Grado] {
	return NewCrud[models.Grado](db, Descriptor{
		Schema:    coreSchema,
		Table:     "grado",
		Columns:   []string{"id", "nombre", "nivel", "descripcion", "estado", "created_at", "updated_at"},
		Insert:    []string{"nombre", "nivel", "descripcion"},
		HasEstado: true,
	})
}

func NewGrupoRepository(db *sqlx.DB) *Crud[models.Grupo] {
	return NewCrud[models.Grupo](db, Descriptor{
		Schema:    coreSchema,
		Table:     "grupo",
		Columns:   []string{"id", "id_grado", "codigo", "anio_lectivo", "estado", "created_at", "updated_at"},
		Insert:    []string{"id_grado", "codigo", "anio_lectivo"},
		HasEstado: true,
	})
}

func NewDocenteRepository(db *sqlx.DB) *Crud[models.Docente] {
	return NewCrud[models.Docente](db, Descriptor{
		Schema: coreSchema,
		Table:  "docente",
		Columns: []string{
			"id", "id_usuario", "id_tipo_documento", "numero_documento", "nombres", "apellidos",
			"telefono", "correo", "fecha_nacimiento", "genero", "fecha_contratacion",
			"estado", "created_at", "updated_at",
		},
		Insert: []string{
			"id_usuario", "id_tipo_documento", "numero_documento", "nombres", "apellidos",
			"telefono", "correo", "fecha_nacimiento", "genero", "fecha_contratacion",
		},
		HasEstado: true,
	})
}

func NewAcudienteRepository(db *sqlx.DB) *Crud[models.Acudiente] {
	return NewCrud[models.Acudiente](db, Descriptor{
		Schema: coreSchema,
		Table:  "acudiente",
		Columns: []string{
			"id", "id_tipo_documento", "numero_documento", "genero", "nombres", "apellidos",
			"telefono", "correo", "estado", "created_at", "updated_at", "deleted_at",
		},
		Insert: []string{
			"id_tipo_documento", "numero_documento", "genero", "nombres", "apellidos",
			"telefono", "correo",
		},
		HasEstado:  true,
		HasDeleted: true,
	})
}

func NewEstudianteRepository(db *sqlx.DB) *Crud[models.Estudiante] {
	return NewCrud[models.Estudiante](db, Descriptor{
		Schema: coreSchema,
		Table:  "estudiante",
		Columns: []string{
			"id", "id_tipo_documento", "id_acudiente", "numero_documento", "genero",
			"nombres", "apellidos", "fecha_nacimiento", "estado", "created_at", "updated_at", "deleted_at",
		},
		Insert: []string{
			"id_tipo_documento", "id_acudiente", "numero_documento", "genero",
			"nombres", "apellidos", "fecha_nacimiento",
		},
		HasEstado:  true,
		HasDeleted: true,
	})
}

func NewAcudienteEstudianteRepository(db *sqlx.DB) *Crud[models.AcudienteEstudiante] {
	return NewCrud[models.AcudienteEstudiante](db, Descriptor{
		Schema:  coreSchema,
		Table:   "acudiente_estudiante",
		Columns: []string{"id", "id_acudiente", "id_estudiante", "parentesco", "created_at"},
		Insert:  []string{"id_acudiente", "id_estudiante", "parentesco"},
	})
}

func NewDocenteAsignaturaRepository(db *sqlx.DB) *Crud[models.DocenteAsignatura] {
	return NewCrud[models.DocenteAsignatura](db, Descriptor{
		Schema:    coreSchema,
		Table:     "docente_asignatura",
		Columns:   []string{"id", "id_docente", "id_asignatura", "estado", "created_at"},
		Insert:    []string{"id_docente", "id_asignatura"},
		HasEstado: true,
	})
}

func NewGradoAsignaturaRepository(db *sqlx.DB) *Crud[models.GradoAsignatura] {
	return NewCrud[models.GradoAsignatura](db, Descriptor{
		Schema:    coreSchema,
		Table:     "grado_asignatura",
		Columns:   []string{"id", "id_grado", "id_asignatura", "id_docente", "estado", "created_at", "updated_at"},
		Insert:    []string{"id_grado", "id_asignatura", "id_docente"},
		HasEstado: true,
	})
}

func NewMatriculaRepository(db *sqlx.DB) *Crud[models.Matricula] {
	return NewCrud[models.Matricula](db, Descriptor{
		Schema:    coreSchema,
		Table:     "matricula",
		Columns:   []string{"id", "id_estudiante", "id_grupo", "periodo", "fecha_registro", "estado", "created_at", "updated_at"},
		Insert:    []string{"id_estudiante", "id_grupo", "periodo"},
		HasEstado: true,
	})
}

func NewEvaluacionRepository(db *sqlx.DB) *Crud[models.Evaluacion] {
	return NewCrud[models.Evaluacion](db, Descriptor{
		Schema:    coreSchema,
		Table:     "evaluacion",
		Columns:   []string{"id", "id_grado_asignatura", "tipo", "fecha", "descripcion", "porcentaje", "estado", "created_at", "updated_at"},
		Insert:    []string{"id_grado_asignatura", "tipo", "fecha", "descripcion", "porcentaje"},
		HasEstado: true,
	})
}

func NewCalificacionRepository(db *sqlx.DB) *Crud[models.Calificacion] {
	return NewCrud[models.Calificacion](db, Descriptor{
		Schema:  coreSchema,
		Table:   "calificacion",
		Columns: []string{"id", "id_estudiante", "id_evaluacion", "valor", "fecha_registro", "observaciones", "created_at", "updated_at"},
		Insert:  []string{"id_estudiante", "id_evaluacion", "valor", "observaciones"},
	})
}
