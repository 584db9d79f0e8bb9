package main

import (
	"fmt"
	"os"
	"time"
)

const DefaultModelID = "mistralai/Mistral-7B-Instruct-v0.2"
const DefaultRouterURL = "https://router.huggingface.co/v1/chat/completions"

// Config holds everything the app reads from the environment. It is loaded
// once at startup and passed to the handlers, so tests can build their own
// instead of poking at os.Setenv.
type Config struct {
	Token     string        // HUGGINGFACE_API_KEY, optional
	ModelID   string        // PLANNER_MODEL_ID
	RouterURL string        // PLANNER_ROUTER_URL, chat-completions endpoint
	Timeout   time.Duration // outbound request timeout
	Port      string        // PORT (Railway sets PORT)
}

func loadConfig() Config {
	cfg := Config{
		Token:     os.Getenv("HUGGINGFACE_API_KEY"),
		ModelID:   os.Getenv("PLANNER_MODEL_ID"),
		RouterURL: os.Getenv("PLANNER_ROUTER_URL"),
		Timeout:   30 * time.Second,
		Port:      os.Getenv("PORT"),
	}

	if cfg.ModelID == "" {
		cfg.ModelID = DefaultModelID
	}
	if cfg.RouterURL == "" {
		cfg.RouterURL = DefaultRouterURL
	}
	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	// Missing token is not fatal: every request just uses the local generator.
	if cfg.Token == "" {
		fmt.Println("⚠️ HUGGINGFACE_API_KEY not set, timetables will be generated locally")
	}

	return cfg
}
