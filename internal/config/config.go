package config

import (
	"github.com/spf13/viper"

	"github.com/andres-gd/proyecto-m1-mineria-datos/internal/simerror"
)

// Config reúne toda la configuración de runtime cargada de variables de
// entorno.
type Config struct {
	Env string `mapstructure:"APP_ENV"` // development | production

	// CatalogDir es el directorio con los archivos dim_producto /
	// dim_proveedor / dim_categoria (.csv o .xlsx).
	CatalogDir string `mapstructure:"CATALOG_DIR"`
	OutputDir  string `mapstructure:"OUTPUT_DIR"`

	// Rango de fechas inclusivo de la simulación, YYYY-MM-DD.
	FechaInicial string `mapstructure:"FECHA_INICIAL"`
	FechaFinal   string `mapstructure:"FECHA_FINAL"`

	// MaxProbability reescala los pesos de los niveles de descuento para
	// que la probabilidad total de descuento valga esto. Debe estar en [0, 1].
	MaxProbability float64 `mapstructure:"MAX_PROBABILITY"`

	// ExportMode: json | fecha | proveedor | todos
	ExportMode string `mapstructure:"EXPORT_MODE"`
}

// Load lee la configuración de variables de entorno (y un .env opcional).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CATALOG_DIR", ".")
	viper.SetDefault("OUTPUT_DIR", ".")
	viper.SetDefault("MAX_PROBABILITY", 0.20)
	viper.SetDefault("EXPORT_MODE", "json")
	// Sin default real: registradas para que AutomaticEnv las resuelva
	viper.SetDefault("FECHA_INICIAL", "")
	viper.SetDefault("FECHA_FINAL", "")

	// .env opcional para desarrollo local — no falla si no existe
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if cfg.MaxProbability < 0 || cfg.MaxProbability > 1 {
		return nil, simerror.ErrMaxProbability
	}
	return cfg, nil
}
