package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/academico/school-management-api/internal/middleware"
	"github.com/academico/school-management-api/internal/models"
	"github.com/academico/school-management-api/internal/repository"
	"github.com/academico/school-management-api/internal/service"
	"github.com/academico/school-management-api/pkg/config"
)

// Deps bundles everything route registration needs.
type Deps struct {
	DB      *sqlx.DB
	Redis   *redis.Client
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *service.MetricsService
}

// RegisterRoutes mounts every API route on the engine.
func RegisterRoutes(r *gin.Engine, deps Deps) {
	validate := validator.New()
	db, logger := deps.DB, deps.Logger

	api := r.Group("/api")
	if deps.Config.Cache.Enabled && deps.Redis != nil {
		cacheRepo := repository.NewCacheRepository(deps.Redis, logger)
		api.Use(middleware.ListCache(cacheRepo, deps.Metrics, deps.Config.Cache.TTL, logger))
	}

	auth := NewAuthHandler(service.NewAuthService(db, deps.Config.JWT, validate, logger))
	api.POST("/auth/login", auth.Login)

	mountCrud(api, "/tipos-documento", NewCrudHandler[service.CreateTipoDocumentoRequest, models.TipoDocumento](service.NewTipoDocumentoService(db, validate, logger)), false)
	mountCrud(api, "/roles", NewCrudHandler[service.CreateRolRequest, models.Rol](service.NewRolService(db, validate, logger)), false)
	mountCrud(api, "/areas", NewCrudHandler[service.CreateAreaRequest, models.Area](service.NewAreaService(db, validate, logger)), false)
	mountCrud(api, "/usuarios", NewCrudHandler[service.CreateUsuarioRequest, models.Usuario](service.NewUsuarioService(db, validate, logger)), false)
	mountCrud(api, "/acudientes", NewCrudHandler[service.CreateAcudienteRequest, models.Acudiente](service.NewAcudienteService(db, validate, logger)), true)
	mountCrud(api, "/docentes", NewCrudHandler[service.CreateDocenteRequest, models.Docente](service.NewDocenteService(db, validate, logger)), false)
	mountCrud(api, "/asignaturas", NewCrudHandler[service.CreateAsignaturaRequest, models.Asignatura](service.NewAsignaturaService(db, validate, logger)), false)
	mountCrud(api, "/grados", NewCrudHandler[service.CreateGradoRequest, models.Grado](service.NewGradoService(db, validate, logger)), false)
	mountCrud(api, "/grupos", NewCrudHandler[service.CreateGrupoRequest, models.Grupo](service.NewGrupoService(db, validate, logger)), false)
	mountCrud(api, "/matriculas", NewCrudHandler[service.CreateMatriculaRequest, models.Matricula](service.NewMatriculaService(db, validate, logger)), false)
	mountCrud(api, "/evaluaciones", NewCrudHandler[service.CreateEvaluacionRequest, models.Evaluacion](service.NewEvaluacionService(db, validate, logger)), false)
	mountCrud(api, "/calificaciones", NewCrudHandler[service.CreateCalificacionRequest, models.Calificacion](service.NewCalificacionService(db, validate, logger)), false)
	mountCrud(api, "/grado-asignaturas", NewCrudHandler[service.CreateGradoAsignaturaRequest, models.GradoAsignatura](service.NewGradoAsignaturaService(db, validate, logger)), false)
	mountCrud(api, "/docente-asignaturas", NewCrudHandler[service.CreateDocenteAsignaturaRequest, models.DocenteAsignatura](service.NewDocenteAsignaturaService(db, validate, logger)), false)
	mountCrud(api, "/acudiente-estudiantes", NewCrudHandler[service.CreateAcudienteEstudianteRequest, models.AcudienteEstudiante](service.NewAcudienteEstudianteService(db, validate, logger)), false)
	mountCrud(api, "/estudiantes", NewCrudHandler[service.CreateEstudianteRequest, models.Estudiante](service.NewEstudianteService(db, validate, logger)), true)

	students := NewStudentHandler(service.NewStudentService(db, validate, logger))
	api.GET("/students", students.List)
	api.POST("/students", students.Create)

	metrics := NewMetricsHandler(deps.Metrics, config.ServiceName)
	r.GET("/health", metrics.Health)
	r.GET("/metrics", metrics.Prometheus)

	r.NoRoute(notFound)
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":  "Ruta no encontrada",
		"path":   c.Request.URL.Path,
		"method": c.Request.Method,
	})
}

// mountCrud registers the standard routes of one resource. Deletion only
// exists for the two resources whose tables carry a soft-delete marker.
func mountCrud[Req any, T any](g *gin.RouterGroup, path string, h *CrudHandler[Req, T], deletable bool) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	if deletable {
		g.DELETE(path+"/:id", h.Delete)
	}
}

// Recovery converts panics into the documented 500 payload. The panic detail
// is withheld in production.
func Recovery(logger *zap.Logger, env string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("panic recovered", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		payload := gin.H{"error": "Error interno del servidor"}
		if env != config.EnvProduction {
			payload["message"] = panicMessage(recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, payload)
	})
}

func panicMessage(recovered interface{}) string {
	switch v := recovered.(type) {
	case error:
		return v.Error()
	case string:
		return v
	default:
		return "unexpected error"
	}
}
