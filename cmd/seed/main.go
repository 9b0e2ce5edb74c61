// seed carga el catálogo de tipos de trabajo desde un CSV exportado de Excel.
//
// Uso: go run ./cmd/seed [ruta/tipos.csv]
// Columnas: nombre;categoria;tarifa (separador ";" o ","). Los nombres que ya existen se omiten.
package main

import (
	"context"
	"os"
	"strings"

	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/dto"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/application/usecase"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/internal/infrastructure/postgres"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/config"
	"github.com/glassardtaller-a11y/Proyecto-Taller-1/pkg/logger"
)

func main() {
	csvPath := "tipos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})
	zl := log.Zerolog()

	f, err := os.Open(csvPath)
	if err != nil {
		log.Fatal().Err(err).Str("archivo", csvPath).Msg("abrir CSV")
	}
	defer f.Close()

	filas, err := LeerTipos(f)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB, zl)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	catalogo := usecase.NewCatalogoUseCase(postgres.NewTipoTrabajoRepository(pool), postgres.NewTurnoRepository(pool))
	existentes, err := catalogo.ListTipos(ctx, false)
	if err != nil {
		log.Fatal().Err(err).Msg("listar tipos de trabajo")
	}
	nombres := make(map[string]bool, len(existentes))
	for _, t := range existentes {
		nombres[strings.ToLower(t.Nombre)] = true
	}

	creados, omitidos := 0, 0
	for _, fila := range filas {
		if nombres[strings.ToLower(fila.Nombre)] {
			omitidos++
			continue
		}
		if _, err := catalogo.CreateTipo(ctx, dto.TipoTrabajoRequest{
			Nombre:       fila.Nombre,
			Descripcion:  fila.Categoria,
			TarifaActual: fila.Tarifa,
		}); err != nil {
			log.Error().Err(err).Int("linea", fila.Linea).Str("nombre", fila.Nombre).Msg("tipo de trabajo no creado")
			continue
		}
		nombres[strings.ToLower(fila.Nombre)] = true
		creados++
	}
	log.Info().Int("creados", creados).Int("omitidos", omitidos).Str("archivo", csvPath).Msg("catálogo cargado")
}
