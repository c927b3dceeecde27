package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/config"
	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/infra"
	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/repository"
	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/service"
)

func main() {
	// Logger estructurado con timestamps RFC3339 y un id por corrida
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	log.Logger = log.With().Str("run_id", uuid.NewString()).Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.FechaInicial == "" || cfg.FechaFinal == "" {
		log.Fatal().Msg("FECHA_INICIAL y FECHA_FINAL son obligatorias (YYYY-MM-DD)")
	}
	switch cfg.ExportMode {
	case "json", "fecha", "proveedor", "todos":
	default:
		log.Fatal().Str("modo", cfg.ExportMode).Msg("EXPORT_MODE inválido: use json, fecha, proveedor o todos")
	}

	// Raíz de composición: repositorio de catálogo + servicios del simulador.
	repo := repository.NewCatalogoRepository(cfg.CatalogDir)
	descuentos, err := service.NewDescuentoService(cfg.MaxProbability)
	if err != nil {
		log.Fatal().Err(err).Float64("max_probability", cfg.MaxProbability).Msg("configuración de descuentos inválida")
	}
	precios := service.NewPrecioService(nil)
	simulador := service.NewSimuladorService(repo, precios, descuentos)

	if err := simulador.CargarDatos(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("no se pudo cargar el catálogo")
	}

	datos, err := simulador.Generar(cfg.FechaInicial, cfg.FechaFinal)
	if err != nil {
		log.Fatal().Err(err).Msg("falló la generación de datos")
	}

	if cfg.ExportMode == "json" || cfg.ExportMode == "todos" {
		ruta := filepath.Join(cfg.OutputDir, fmt.Sprintf("datos_scraping_%s.json", time.Now().Format("20060102_150405")))
		if _, err := infra.ExportarJSON(datos, ruta); err != nil {
			log.Fatal().Err(err).Msg("falló la exportación a JSON único")
		}
	}
	if cfg.ExportMode == "fecha" || cfg.ExportMode == "todos" {
		dir := filepath.Join(cfg.OutputDir, "datos_por_fecha")
		if err := infra.ExportarPorFecha(datos, dir); err != nil {
			log.Fatal().Err(err).Msg("falló la exportación por fecha")
		}
	}
	if cfg.ExportMode == "proveedor" || cfg.ExportMode == "todos" {
		dir := filepath.Join(cfg.OutputDir, "datos_por_fecha_proveedor")
		if err := infra.ExportarPorFechaYProveedor(datos, dir); err != nil {
			log.Fatal().Err(err).Msg("falló la exportación por fecha y proveedor")
		}
	}

	log.Info().Msg("simulación completada")
}
