package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"typetrainer/internal/config"
	"typetrainer/internal/ui"
	"typetrainer/internal/words"
)

func main() {
	configSvc := config.NewConfigService()
	cfg, cfgErr := loadOrCreateConfig(configSvc)

	// Set up logging
	logPath := cfg.LogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Could not create log directory: %v", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}
	if cfgErr != nil {
		log.Printf("Error loading config, using defaults: %v", cfgErr)
	}

	// Build the prompt queue
	wordList, err := words.Load()
	if err != nil {
		log.Printf("Error loading words: %v", err)
		fmt.Printf("Error loading words: %v\n", err)
		os.Exit(1)
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	prompts := words.Sample(wordList, words.PromptCount, rng)
	log.Printf("Sampled %d prompts from %d words", len(prompts), len(wordList))

	model := ui.NewModel(cfg, prompts)
	p := tea.NewProgram(model, tea.WithAltScreen())

	log.Printf("Starting UI with layout %s...", model.Layout())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally after %d prompts", len(model.History()))

	if model.ReviewOnExit() {
		if err := ui.ShowReviewInPager(model.History()); err != nil {
			log.Printf("Error showing review: %v", err)
			fmt.Printf("Error showing review: %v\n", err)
			os.Exit(1)
		}
	}
}

// loadOrCreateConfig loads the user config, writing the defaults on first run.
// The returned config is always usable; the error only reports why defaults
// were substituted.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	cfg, err := configSvc.LoadFromPath(configSvc.Path())
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, config.ErrNotFound) {
		return config.DefaultConfig(), err
	}

	cfg = config.DefaultConfig()
	if err := configSvc.Save(cfg); err != nil {
		return cfg, fmt.Errorf("failed to create config: %w", err)
	}
	return cfg, nil
}
