package setup

import (
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/patterns/internal/config"
	"github.com/povarna/generative-ai-agents/patterns/internal/solver"
	"github.com/rs/zerolog"
)

type Config struct {
	Port         string
	LogLevel     string
	CheckSorted  bool
	ExamplesPath string
}

type Dependencies struct {
	Solver *solver.Solver
	Logger *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Port:         getEnv("PATTERNS_API_PORT", "18083"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CheckSorted:  getEnvBool("CHECK_SORTED", false),
		ExamplesPath: getEnv("EXAMPLES_CONFIG_PATH", config.DefaultExamplesPath),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) *Dependencies {
	s := solver.New(logger, solver.WithCheckedSort(cfg.CheckSorted))

	return &Dependencies{
		Solver: s,
		Logger: logger,
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
