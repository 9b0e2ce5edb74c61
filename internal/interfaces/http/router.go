package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	appanalytics "github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/analytics"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/nomina"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/streaming"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/ventas"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	// Taller
	EmpleadoUC      *usecase.EmpleadoUseCase
	CatalogoUC      *usecase.CatalogoUseCase
	AsistenciaUC    *usecase.AsistenciaUseCase
	ProduccionUC    *usecase.ProduccionUseCase
	MovimientoUC    *usecase.MovimientoUseCase
	ConfiguracionUC *usecase.ConfiguracionUseCase
	PendientesUC    *nomina.PendientesUseCase
	LiquidacionUC   *nomina.LiquidacionUseCase
	BoletaUC        *nomina.BoletaUseCase
	VentaBoletaUC   *ventas.BoletaVentaUseCase

	// Reventa
	PlatformUC  *usecase.PlatformUseCase
	CustomerUC  *usecase.CustomerUseCase
	SaleUC      *streaming.SaleUseCase
	ReminderUC  *streaming.ReminderUseCase
	DashboardUC *appanalytics.DashboardUseCase
	SocialUC    *usecase.SocialUseCase

	JWTSecret  string
	CronSecret string
	// Archivos almacenamiento local servido en /archivos; nil con Supabase.
	Archivos ArchivosLocales
	Log      zerolog.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Archivos != nil {
		app.Get("/archivos/*", NewArchivosHandler(deps.Archivos).Servir)
	}

	api := app.Group("/api")

	// Cron (secreto compartido, sin JWT)
	cron := api.Group("/cron", CronAuth(deps.CronSecret))
	cronHandler := NewCronHandler(deps.ReminderUC, deps.Log)
	cron.Get("/reminders", cronHandler.Reminders)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	admin := RequireRole(jwt.RolAdmin)
	registro := RequireRole(jwt.RolAdmin, jwt.RolRegistrador)

	// Empleados
	empleados := protected.Group("/empleados")
	empleadoHandler := NewEmpleadoHandler(deps.EmpleadoUC)
	empleados.Get("/", registro, empleadoHandler.List)
	empleados.Get("/resumen", admin, empleadoHandler.Resumen)
	empleados.Get("/:id", registro, empleadoHandler.GetByID)
	empleados.Post("/", admin, empleadoHandler.Create)
	empleados.Put("/:id", admin, empleadoHandler.Update)
	empleados.Patch("/:id/estado", admin, empleadoHandler.SetEstado)

	// Tipos de trabajo y turnos
	catalogoHandler := NewCatalogoHandler(deps.CatalogoUC)
	tipos := protected.Group("/tipos-trabajo")
	tipos.Get("/", registro, catalogoHandler.ListTipos)
	tipos.Post("/", admin, catalogoHandler.CreateTipo)
	tipos.Put("/:id", admin, catalogoHandler.UpdateTipo)
	tipos.Patch("/:id/estado", admin, catalogoHandler.SetTipoEstado)
	turnos := protected.Group("/turnos")
	turnos.Get("/", registro, catalogoHandler.ListTurnos)
	turnos.Post("/", admin, catalogoHandler.CreateTurno)
	turnos.Put("/:id", admin, catalogoHandler.UpdateTurno)
	turnos.Patch("/:id/estado", admin, catalogoHandler.SetTurnoEstado)

	// Asistencia (cualquier rol autenticado puede marcar)
	asistencia := protected.Group("/asistencia")
	asistenciaHandler := NewAsistenciaHandler(deps.AsistenciaUC)
	asistencia.Get("/", registro, asistenciaHandler.Dia)
	asistencia.Post("/marcar", asistenciaHandler.Marcar)

	// Producción
	produccion := protected.Group("/produccion", registro)
	produccionHandler := NewProduccionHandler(deps.ProduccionUC)
	produccion.Post("/", produccionHandler.Create)
	produccion.Get("/", produccionHandler.ListByFecha)
	produccion.Get("/stats", produccionHandler.Stats)
	produccion.Get("/empleado/:id", produccionHandler.ListByEmpleado)
	produccion.Delete("/:id", admin, produccionHandler.Delete)

	// Movimientos
	movimientos := protected.Group("/movimientos", admin)
	movimientoHandler := NewMovimientoHandler(deps.MovimientoUC)
	movimientos.Get("/", movimientoHandler.List)
	movimientos.Post("/", movimientoHandler.Create)
	movimientos.Delete("/:id", movimientoHandler.Delete)

	// Pagos, ciclos y boletas de pago
	pagosHandler := NewPagosHandler(deps.PendientesUC, deps.LiquidacionUC, deps.BoletaUC, deps.Log)
	pagos := protected.Group("/pagos", admin)
	pagos.Get("/pendientes", pagosHandler.Pendientes)
	pagos.Get("/pendientes/:empleadoId", pagosHandler.PendienteEmpleado)
	pagos.Post("/liquidar", pagosHandler.Liquidar)
	pagos.Post("/cerrar", pagosHandler.Cerrar)

	boletaHandler := NewBoletaHandler(deps.BoletaUC)
	ciclos := protected.Group("/ciclos", admin)
	ciclos.Get("/", boletaHandler.Ciclos)
	ciclos.Get("/:id/boleta/pdf", boletaHandler.PDFCiclo)
	boletas := protected.Group("/boletas", admin)
	boletas.Get("/", boletaHandler.List)
	boletas.Get("/:id", boletaHandler.GetByID)
	boletas.Get("/:id/pdf", boletaHandler.PDF)
	boletas.Get("/:id/archivo", boletaHandler.Archivo)
	boletas.Get("/:id/url", boletaHandler.URL)

	// Configuración
	configuracion := protected.Group("/configuracion", admin)
	configuracionHandler := NewConfiguracionHandler(deps.ConfiguracionUC)
	configuracion.Get("/", configuracionHandler.List)
	configuracion.Get("/ciclo", configuracionHandler.Ciclo)
	configuracion.Put("/ciclo", configuracionHandler.GuardarCiclo)
	configuracion.Get("/:clave", configuracionHandler.Get)
	configuracion.Put("/:clave", configuracionHandler.Update)

	// Boletas de venta
	ventasGroup := protected.Group("/ventas/boletas", admin)
	ventaHandler := NewVentaBoletaHandler(deps.VentaBoletaUC)
	ventasGroup.Get("/", ventaHandler.List)
	ventasGroup.Post("/", ventaHandler.Create)
	ventasGroup.Get("/:id", ventaHandler.GetByID)
	ventasGroup.Put("/:id", ventaHandler.Update)
	ventasGroup.Delete("/:id", ventaHandler.Delete)
	ventasGroup.Get("/:id/pdf", ventaHandler.PDF)
	ventasGroup.Get("/:id/xml", ventaHandler.XML)

	// ── Reventa de streaming (admin) ─────────────────────────────────────────
	platforms := protected.Group("/platforms", admin)
	platformHandler := NewPlatformHandler(deps.PlatformUC)
	platforms.Get("/", platformHandler.List)
	platforms.Post("/", platformHandler.Create)
	platforms.Get("/:id", platformHandler.GetByID)
	platforms.Put("/:id", platformHandler.Update)
	platforms.Patch("/:id/estado", platformHandler.SetEstado)
	platforms.Post("/:id/logo", platformHandler.SubirLogo)

	customers := protected.Group("/customers", admin)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:id", customerHandler.GetByID)

	sales := protected.Group("/sales", admin)
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Get("/", saleHandler.List)
	sales.Post("/", saleHandler.Create)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Patch("/:id/status", saleHandler.UpdateStatus)
	sales.Post("/:id/mensaje", saleHandler.MensajeWhatsApp)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", admin, dashboardHandler.GetSummary)
	protected.Get("/reports/monthly", admin, dashboardHandler.MonthlyReport)

	social := protected.Group("/social", admin)
	socialHandler := NewSocialHandler(deps.SocialUC)
	social.Get("/networks", socialHandler.ListNetworks)
	social.Post("/networks", socialHandler.CreateNetwork)
	social.Patch("/networks/:id/estado", socialHandler.SetNetworkEstado)
	social.Get("/categories", socialHandler.ListCategories)
	social.Post("/categories", socialHandler.CreateCategory)
	social.Get("/services", socialHandler.ListServices)
	social.Post("/services", socialHandler.CreateService)
	social.Get("/prices", socialHandler.ListPrices)
	social.Post("/prices", socialHandler.CreatePrice)
	social.Get("/orders", socialHandler.ListOrders)
	social.Post("/orders", socialHandler.CreateOrder)
	social.Patch("/orders/:id/status", socialHandler.UpdateOrderStatus)
}
