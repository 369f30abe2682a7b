package common

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/facturascan/pipeline/constants"
)

// Config is the explicit configuration value object built once at process
// start and passed to every component that needs it. There is no package
// level mutable configuration anywhere in this module.
type Config struct {
	Database DatabaseConfig
	Paths    PathsConfig
	Scoring  ScoringConfig
	Pipeline PipelineConfig
	Server   ServerConfig
}

// DatabaseConfig holds connection settings for the relational store, the
// single source of truth and the only inter-process coordination mechanism.
type DatabaseConfig struct {
	DSN              string `validate:"required"`
	MaxConns         int32  `validate:"gte=1"`
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// PathsConfig holds the working directories of the file-facing stages.
type PathsConfig struct {
	Entrada        string // drop zone watched for new PDFs
	ParaProcesar   string // PDFs waiting for registration
	Errores        string // failed artifacts plus sidecar diagnostic notes
	ArchivosPadres string // originals of split multi-page PDFs
	Procesados     string // delivered artifacts
	Salida         string // XLSX export target
}

// ScoringConfig holds the tunables of the field scorer.
type ScoringConfig struct {
	// MetodoPrimario's tipo_doc candidates get BonusTipoDoc added to their
	// score. Empirically that engine reads document-type headers best.
	MetodoPrimario       string  `validate:"required"`
	BonusTipoDoc         float64 `validate:"gte=0,lte=1"`
	RutaDiccionario      string  // marcas CSV; built-in list when empty
	ScoreMinimoAceptable float64 `validate:"gte=0,lte=1"`
}

// PipelineConfig holds batch behavior shared by the stage CLIs.
type PipelineConfig struct {
	Paralelismo        int      `validate:"gte=1"`
	MaxArchivosPorLote int      `validate:"gte=1"`
	PrioridadMetodos   []string `validate:"min=1"`
}

// ServerConfig holds settings for the read-only gRPC daemon.
type ServerConfig struct {
	GRPCAddr string `validate:"required"`
}

// LoadConfig builds the configuration from the environment. A .env file in
// the working directory is honored when present.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Paths: PathsConfig{
			Entrada:        getEnv("DIR_ENTRADA", "./entrada"),
			ParaProcesar:   getEnv("DIR_PARA_PROCESAR", "./para_procesar"),
			Errores:        getEnv("DIR_ERRORES", "./errores"),
			ArchivosPadres: getEnv("DIR_ARCHIVOS_PADRES", "./archivos_padres"),
			Procesados:     getEnv("DIR_PROCESADOS", "./procesados"),
			Salida:         getEnv("DIR_SALIDA", "./salida"),
		},
		Scoring: ScoringConfig{
			MetodoPrimario:       getEnv("METODO_PRIMARIO", constants.MetodoPaddleOCR),
			BonusTipoDoc:         getEnvAsFloat64("BONUS_TIPO_DOC", 0.20),
			RutaDiccionario:      getEnv("RUTA_DICCIONARIO_MARCAS", ""),
			ScoreMinimoAceptable: getEnvAsFloat64("SCORE_MINIMO_ACEPTABLE", 0.4),
		},
		Pipeline: PipelineConfig{
			Paralelismo:        getEnvAsInt("PARALELISMO", 4),
			MaxArchivosPorLote: getEnvAsInt("MAX_ARCHIVOS_POR_LOTE", 30),
			PrioridadMetodos:   getEnvAsList("PRIORIDAD_METODOS", constants.PrioridadMetodos),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
	}
}

// Validate checks the loaded configuration. Configuration errors are fatal
// by design: every subsequent operation depends on them.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return NewAppError("CONFIG_ERROR", "invalid configuration", err)
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
