package config

import (
	"os"
	"strconv"
	"strings"

	"lrslens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
	Analysis AnalysisConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds the paths of the four input extracts
type DataConfig struct {
	StatementsFile string
	DiagnosticFile string
	FinalFile      string
	SurveyFile     string
}

// DatabaseConfig holds the optional run-archive connection. An empty URL
// disables archiving entirely.
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig holds the overridable analysis constants: the activity
// marker that identifies question activities and the cohort timing
// predicates.
type AnalysisConfig struct {
	QuestionMarker string

	StartVerb           string
	StartModuleContains string
	EndVerbs            []string
	EndModuleContains   string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			StatementsFile: getEnvOrDefault("STATEMENTS_FILE", "statements_clean.csv"),
			DiagnosticFile: getEnvOrDefault("DIAGNOSTIC_FILE", "diagnostica_clean.csv"),
			FinalFile:      getEnvOrDefault("FINAL_FILE", "final_clean.csv"),
			SurveyFile:     getEnvOrDefault("SURVEY_FILE", "satisfacao_clean.csv"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		Analysis: AnalysisConfig{
			QuestionMarker:      getEnvOrDefault("QUESTION_MARKER", "Pergunta"),
			StartVerb:           getEnvOrDefault("TIMING_START_VERB", "viewed"),
			StartModuleContains: getEnvOrDefault("TIMING_START_MODULE", "diagnostica"),
			EndVerbs:            getEnvListOrDefault("TIMING_END_VERBS", []string{"submitted", "answered"}),
			EndModuleContains:   getEnvOrDefault("TIMING_END_MODULE", "satisf"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Data.StatementsFile == "" {
		return errors.ConfigInvalid("STATEMENTS_FILE is required")
	}
	if config.Data.DiagnosticFile == "" {
		return errors.ConfigInvalid("DIAGNOSTIC_FILE is required")
	}
	if config.Data.FinalFile == "" {
		return errors.ConfigInvalid("FINAL_FILE is required")
	}
	if config.Data.SurveyFile == "" {
		return errors.ConfigInvalid("SURVEY_FILE is required")
	}
	if config.Analysis.StartVerb == "" || len(config.Analysis.EndVerbs) == 0 {
		return errors.ConfigInvalid("timing predicates must name at least one verb each")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
