package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	OutputDir string

	// SheetName vazio significa a primeira aba da planilha.
	SheetName string

	// CSVDelimiter é o separador padrão do export (";" no costume brasileiro).
	CSVDelimiter rune

	// DateFallbackLabel rotula registros sem data no agrupamento.
	DateFallbackLabel string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:            getEnv("DB_PATH", filepath.Join(cwd, "data", "filtro.db")),
		OutputDir:         getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		SheetName:         getEnv("SHEET_NAME", ""),
		CSVDelimiter:      getEnvDelim("CSV_DELIMITER", ';'),
		DateFallbackLabel: getEnv("DATE_FALLBACK_LABEL", "Sem data"),
	}

	return cfg, nil
}

// ResolveOutputPath ancora caminhos relativos de export no OutputDir;
// caminhos absolutos passam intactos.
func (c Config) ResolveOutputPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvDelim(key string, fallback rune) rune {
	value := strings.TrimSpace(getEnv(key, ""))
	if value == "" {
		return fallback
	}
	return []rune(value)[0]
}
