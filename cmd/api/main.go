package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/analytics"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ports"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/streaming"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ventas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/domain/entity"
	infracron "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/cron"
	infrapdf "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/pdf"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/postgres"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/queue"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/storage"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/sunat"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/telegram"
	httpRouter "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/interfaces/http"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/config"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/logger"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/montos"
)

// jobQueue cola de PDFs: en memoria o Redis.
type jobQueue interface {
	nomina.JobQueue
	Start(ctx context.Context)
	Wait()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	})
	zl := log.Zerolog()
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("timezone", cfg.App.Timezone).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}
	loc := cfg.App.Location()

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, zl)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.RunMigrations {
		if err := postgres.Migrate(ctx, pool, cfg.DB.MigrationsDir, zl); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	// ── Repositorios ─────────────────────────────────────────────────────────
	empleadoRepo := postgres.NewEmpleadoRepository(pool)
	tipoRepo := postgres.NewTipoTrabajoRepository(pool)
	turnoRepo := postgres.NewTurnoRepository(pool)
	asistenciaRepo := postgres.NewAsistenciaRepository(pool)
	produccionRepo := postgres.NewProduccionRepository(pool)
	movimientoRepo := postgres.NewMovimientoRepository(pool)
	cicloRepo := postgres.NewCicloRepository(pool)
	boletaRepo := postgres.NewBoletaRepository(pool)
	settingRepo := postgres.NewSettingRepository(pool)
	ventaRepo := postgres.NewVentaBoletaRepository(pool)
	platformRepo := postgres.NewPlatformRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	socialCatalogRepo := postgres.NewSocialCatalogRepository(pool)
	socialOrderRepo := postgres.NewSocialOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// ── Adaptadores ──────────────────────────────────────────────────────────
	files, archivos, err := newStorage(cfg.Storage, cfg.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento")
	}
	notifier := telegram.NewClient(telegram.DefaultBaseURL, cfg.Telegram.BotToken, zl)
	if !notifier.Enabled() {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN vacío: notificaciones deshabilitadas")
	}
	formateador := montos.NewFormateador(cfg.App.Locale)
	empresa := entity.Empresa{
		Nombre:    cfg.Empresa.Nombre,
		RUC:       cfg.Empresa.RUC,
		Direccion: cfg.Empresa.Direccion,
		Telefono:  cfg.Empresa.Telefono,
		Email:     cfg.Empresa.Email,
	}

	// ── Taller ───────────────────────────────────────────────────────────────
	empleadoUC := usecase.NewEmpleadoUseCase(empleadoRepo)
	catalogoUC := usecase.NewCatalogoUseCase(tipoRepo, turnoRepo)
	asistenciaUC := usecase.NewAsistenciaUseCase(asistenciaRepo, empleadoRepo, turnoRepo, loc)
	produccionUC := usecase.NewProduccionUseCase(produccionRepo, empleadoRepo, tipoRepo, loc)
	movimientoUC := usecase.NewMovimientoUseCase(movimientoRepo, empleadoRepo, loc)
	configuracionUC := usecase.NewConfiguracionUseCase(settingRepo)
	pendientesUC := nomina.NewPendientesUseCase(empleadoRepo, produccionRepo, movimientoRepo, cicloRepo)

	boletaUC := nomina.NewBoletaUseCase(
		boletaRepo, cicloRepo, produccionRepo, movimientoRepo,
		infrapdf.NewBoletaTermica(cfg.Empresa.Nombre), files, zl,
	)

	// Cola de PDFs: Redis si está configurado, si no en memoria.
	var jobs jobQueue
	if cfg.Redis.Addr != "" {
		rq := queue.NewRedisQueue(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, boletaUC.CerrarYGenerar, zl)
		if err := rq.Ping(ctx); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("conexión a Redis")
		}
		defer rq.Close()
		jobs = rq
	} else {
		jobs = queue.NewMemoryQueue(100, boletaUC.CerrarYGenerar, zl)
	}
	liquidacionUC := nomina.NewLiquidacionUseCase(txRunner, jobs, zl, loc)

	ventaUC := ventas.NewBoletaVentaUseCase(
		txRunner, ventaRepo,
		infrapdf.NewBoletaVenta(formateador), sunat.NewUBLBuilder(),
		empresa, loc,
	)

	// ── Reventa ──────────────────────────────────────────────────────────────
	platformUC := usecase.NewPlatformUseCase(platformRepo, files)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	saleUC := streaming.NewSaleUseCase(txRunner, saleRepo, platformRepo, notifier, cfg.Telegram.ChatID, formateador, zl, loc)
	reminderUC := streaming.NewReminderUseCase(txRunner, reminderRepo, notifier, cfg.Telegram.ChatID, formateador, zl, loc)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, loc)
	socialUC := usecase.NewSocialUseCase(socialCatalogRepo, socialOrderRepo)

	// ── Trabajos en segundo plano ────────────────────────────────────────────
	bgCtx, stopBackground := context.WithCancel(context.Background())
	jobs.Start(bgCtx)

	scheduler := infracron.NewScheduler(zl)
	scheduler.AddJob("reminders", cfg.Cron.RemindersInterval, reminderUC.Run)
	if scheduler.Len() > 0 {
		scheduler.Start()
	}
	if cfg.Cron.Secret == "" {
		log.Warn().Msg("CRON_SECRET vacío: /api/cron/reminders queda cerrado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    5 * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Taller API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpleadoUC:      empleadoUC,
		CatalogoUC:      catalogoUC,
		AsistenciaUC:    asistenciaUC,
		ProduccionUC:    produccionUC,
		MovimientoUC:    movimientoUC,
		ConfiguracionUC: configuracionUC,
		PendientesUC:    pendientesUC,
		LiquidacionUC:   liquidacionUC,
		BoletaUC:        boletaUC,
		VentaBoletaUC:   ventaUC,
		PlatformUC:      platformUC,
		CustomerUC:      customerUC,
		SaleUC:          saleUC,
		ReminderUC:      reminderUC,
		DashboardUC:     dashboardUC,
		SocialUC:        socialUC,
		JWTSecret:       cfg.JWT.Secret,
		CronSecret:      cfg.Cron.Secret,
		Archivos:        archivos,
		Log:             zl,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	scheduler.Stop()
	stopBackground()
	jobs.Wait()

	log.Info().Msg("aplicación detenida")
}

// newStorage elige el backend de archivos. Con disco local también devuelve lo que sirve /archivos.
func newStorage(cfg config.StorageConfig, secret string) (ports.FileStorage, httpRouter.ArchivosLocales, error) {
	if cfg.Driver == "supabase" {
		s, err := storage.NewSupabaseStorage(cfg.SupabaseURL, cfg.ServiceKey, cfg.Bucket)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	}
	s, err := storage.NewLocalStorage(cfg.LocalPath, cfg.PublicURL, secret)
	if err != nil {
		return nil, nil, err
	}
	return s, s, nil
}
