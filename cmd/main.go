package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/patterns/internal/config"
	"github.com/povarna/generative-ai-agents/patterns/internal/setup"
	"github.com/povarna/generative-ai-agents/patterns/internal/setup/logger"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load env
	envErr := godotenv.Load()

	cfg := setup.LoadConfig()

	// Setup logging
	log.Logger = logger.New(cfg.LogLevel)
	if envErr != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	examples, err := config.LoadExamplesConfig(cfg.ExamplesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load examples config")
	}

	deps := setup.Wire(cfg, &log.Logger)

	failures := 0

	for _, example := range examples.Anagrams {
		result, err := deps.Solver.Anagram(ctx, example.Request())
		if err != nil {
			log.Error().Err(err).Str("id", example.ID).Msg("Anagram example failed")
			failures++
			continue
		}

		event := log.Info()
		if result.IsAnagram != example.Expected {
			event = log.Error().Bool("expected", example.Expected)
			failures++
		}
		event.
			Str("id", result.ID).
			Str("word", result.Word).
			Str("candidate", result.Candidate).
			Str("method", string(result.Method)).
			Bool("is_anagram", result.IsAnagram).
			Msg("isAnagram")
	}

	for _, example := range examples.Unique {
		result, err := deps.Solver.CountUnique(ctx, example.Request())
		if err != nil {
			log.Error().Err(err).Str("id", example.ID).Msg("Unique example failed")
			failures++
			continue
		}

		event := log.Info()
		if result.Count != example.Expected {
			event = log.Error().Int("expected", example.Expected)
			failures++
		}
		event.
			Str("id", result.ID).
			Ints("values", result.Values).
			Int("count", result.Count).
			Msg("countUniqueValues")
	}

	if failures > 0 {
		log.Error().Int("failures", failures).Msg("Examples did not match expectations")
		os.Exit(1)
	}

	log.Info().
		Int("anagrams", len(examples.Anagrams)).
		Int("unique", len(examples.Unique)).
		Msg("All examples passed")
}
