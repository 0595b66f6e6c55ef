package router

import (
	"time"

	"github.com/WilliamCuc/PG2-Edutech/internal/config"
	"github.com/WilliamCuc/PG2-Edutech/internal/handler"
	"github.com/WilliamCuc/PG2-Edutech/internal/infra"
	"github.com/WilliamCuc/PG2-Edutech/internal/middleware"
	"github.com/WilliamCuc/PG2-Edutech/internal/repository"
	"github.com/WilliamCuc/PG2-Edutech/internal/service"
	"github.com/WilliamCuc/PG2-Edutech/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, smtpCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	periodoRepo := repository.NewPeriodoRepository(db)
	cursoRepo := repository.NewCursoRepository(db)
	maestroRepo := repository.NewMaestroRepository(db)
	claseRepo := repository.NewClaseRepository(db)
	gradoRepo := repository.NewGradoRepository(db)
	estudianteRepo := repository.NewEstudianteRepository(db)
	cargoRepo := repository.NewCargoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	actividadRepo := repository.NewActividadRepository(db)
	noticiaRepo := repository.NewNoticiaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	periodoSvc := service.NewPeriodoService(periodoRepo, estudianteRepo)
	cursoSvc := service.NewCursoService(cursoRepo)
	maestroSvc := service.NewMaestroService(maestroRepo, usuarioRepo, cursoRepo)
	claseSvc := service.NewClaseService(claseRepo, cursoRepo, maestroRepo, periodoRepo, estudianteRepo)
	gradoSvc := service.NewGradoService(gradoRepo, claseRepo)
	inscripcionSvc := service.NewInscripcionService(estudianteRepo, gradoRepo, cargoRepo)
	estudianteSvc := service.NewEstudianteService(estudianteRepo, usuarioRepo, gradoRepo, inscripcionSvc)
	cargoSvc := service.NewCargoService(cargoRepo)
	pagoSvc := service.NewPagoService(pagoRepo, cargoRepo, cargoSvc)
	horarioSvc := service.NewHorarioService(periodoRepo, claseRepo)
	actividadSvc := service.NewActividadService(actividadRepo, claseRepo, maestroRepo, estudianteRepo)
	noticiaSvc := service.NewNoticiaService(noticiaRepo, usuarioRepo, dispatcher)
	portalSvc := service.NewPortalService(estudianteRepo, maestroRepo, claseRepo, actividadRepo, cargoRepo, periodoRepo, periodoSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	estudiantesH := handler.NewEstudiantesHandler(estudianteSvc, inscripcionSvc)
	maestrosH := handler.NewMaestrosHandler(maestroSvc)
	periodosH := handler.NewPeriodosHandler(periodoSvc)
	cursosH := handler.NewCursosHandler(cursoSvc)
	gradosH := handler.NewGradosHandler(gradoSvc)
	clasesH := handler.NewClasesHandler(claseSvc, horarioSvc)
	cargosH := handler.NewCargosHandler(cargoSvc, pagoSvc)
	pagosH := handler.NewPagosHandler(pagoSvc)
	actividadesH := handler.NewActividadesHandler(actividadSvc)
	portalH := handler.NewPortalHandler(portalSvc)
	noticiasH := handler.NewNoticiasHandler(noticiaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb, smtpCB))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Roles: estudiante, maestro, padre, cajero, administrador — declared per-endpoint
		usuarios := v1.Group("/usuarios", middleware.RequireRole("administrador"))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
			usuarios.PATCH("/:id/reactivar", usuariosH.Reactivar)
		}

		// Estudiantes — administración gestiona las fichas; caja consulta sus cargos
		v1.GET("/estudiantes", middleware.RequireRole("administrador", "cajero"), estudiantesH.Listar)
		v1.GET("/estudiantes/:id", middleware.RequireRole("administrador", "cajero"), estudiantesH.ObtenerPorID)
		v1.GET("/estudiantes/:id/cargos", middleware.RequireRole("administrador", "cajero"), cargosH.ListarPorEstudiante)
		ests := v1.Group("/estudiantes", middleware.RequireRole("administrador"))
		{
			ests.POST("", estudiantesH.Crear)
			ests.PUT("/:id", estudiantesH.Actualizar)
			ests.DELETE("/:id", estudiantesH.Eliminar)
			ests.POST("/:id/inscribir", estudiantesH.Inscribir)
		}

		maestros := v1.Group("/maestros", middleware.RequireRole("administrador"))
		{
			maestros.POST("", maestrosH.Crear)
			maestros.GET("", maestrosH.Listar)
			maestros.GET("/:id", maestrosH.ObtenerPorID)
			maestros.PUT("/:id", maestrosH.Actualizar)
			maestros.DELETE("/:id", maestrosH.Eliminar)
			maestros.PUT("/:id/cursos", maestrosH.AsignarCursos)
		}

		// Catálogo académico — administrador escribe, maestros pueden consultar
		v1.GET("/periodos", middleware.RequireRole("administrador", "maestro"), periodosH.Listar)
		periodos := v1.Group("/periodos", middleware.RequireRole("administrador"))
		{
			periodos.POST("", periodosH.Crear)
			periodos.PUT("/:id", periodosH.Actualizar)
			periodos.DELETE("/:id", periodosH.Eliminar)
		}

		v1.GET("/cursos", middleware.RequireRole("administrador", "maestro"), cursosH.Listar)
		cursos := v1.Group("/cursos", middleware.RequireRole("administrador"))
		{
			cursos.POST("", cursosH.Crear)
			cursos.PUT("/:id", cursosH.Actualizar)
			cursos.DELETE("/:id", cursosH.Eliminar)
		}

		grados := v1.Group("/grados", middleware.RequireRole("administrador"))
		{
			grados.POST("", gradosH.Crear)
			grados.GET("", gradosH.Listar)
			grados.GET("/:id", gradosH.ObtenerPorID)
			grados.PUT("/:id", gradosH.Actualizar)
			grados.DELETE("/:id", gradosH.Eliminar)
			grados.PUT("/:id/clases", gradosH.AsignarClases)
		}

		v1.GET("/clases", middleware.RequireRole("administrador", "maestro"), clasesH.ListarPorPeriodo)
		v1.GET("/clases/:id", middleware.RequireRole("administrador", "maestro"), clasesH.ObtenerPorID)
		clases := v1.Group("/clases", middleware.RequireRole("administrador"))
		{
			clases.POST("", clasesH.Crear)
			clases.PUT("/:id", clasesH.Actualizar)
			clases.DELETE("/:id", clasesH.Eliminar)
			clases.PUT("/:id/estudiantes", clasesH.InscribirEstudiantes)
		}

		// Horario — cualquier usuario autenticado consulta su propia grilla
		v1.GET("/horario", middleware.RequireRole("estudiante", "maestro", "padre", "cajero", "administrador"), clasesH.Horario)

		// Caja — cargos y pagos
		cargos := v1.Group("/cargos", middleware.RequireRole("cajero", "administrador"))
		{
			cargos.POST("", cargosH.Crear)
			cargos.GET("/:id", cargosH.ObtenerPorID)
			cargos.GET("/:id/pagos", cargosH.ListarPagos)
			cargos.PATCH("/:id/cancelar", cargosH.Cancelar)
			cargos.DELETE("/:id", cargosH.Eliminar)
		}
		v1.POST("/pagos", middleware.RequireRole("cajero", "administrador"), pagosH.Registrar)
		v1.DELETE("/pagos/:id", middleware.RequireRole("cajero", "administrador"), pagosH.Eliminar)

		// Actividades — el maestro publica y califica, el estudiante entrega
		v1.POST("/actividades", middleware.RequireRole("maestro"), actividadesH.Crear)
		v1.GET("/actividades/:id/entregas", middleware.RequireRole("maestro"), actividadesH.ListarEntregas)
		v1.POST("/actividades/:id/entregar", middleware.RequireRole("estudiante"), actividadesH.Entregar)
		v1.PATCH("/entregas/:id/calificar", middleware.RequireRole("maestro"), actividadesH.Calificar)

		// Portales
		v1.GET("/portal/estudiante", middleware.RequireRole("estudiante"), portalH.Estudiante)
		v1.GET("/portal/maestro", middleware.RequireRole("maestro"), portalH.Maestro)

		// Noticias — administrador publica, todos los roles leen
		v1.GET("/noticias", middleware.RequireRole("estudiante", "maestro", "padre", "cajero", "administrador"), noticiasH.Listar)
		noticias := v1.Group("/noticias", middleware.RequireRole("administrador"))
		{
			noticias.POST("", noticiasH.Crear)
			noticias.PUT("/:id", noticiasH.Actualizar)
			noticias.DELETE("/:id", noticiasH.Eliminar)
		}

		v1.POST("/notificaciones", middleware.RequireRole("administrador"), noticiasH.EnviarNotificacion)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
