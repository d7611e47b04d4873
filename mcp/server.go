// Package mcp runs the speaker-tracker MCP server. It exposes the Notion
// speaker database as a set of MCP tools over stdio or Streamable HTTP.
package mcp

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/codingnoodle/speaker-tracker/client"
	"github.com/codingnoodle/speaker-tracker/mcp/internal/handlers"
)

// config holds all settings for the MCP server. Values come from the
// environment (optionally seeded from a .env file) with flag overrides.
type config struct {
	NotionAPIKey     string        `envconfig:"NOTION_API_KEY"`
	NotionDatabaseID string        `envconfig:"NOTION_DATABASE_ID"`
	ServerName       string        `envconfig:"MCP_SERVER_NAME" default:"speaker-tracker-mcp"`
	ServerVersion    string        `envconfig:"MCP_SERVER_VERSION" default:"0.3.0"`
	HTTPAddr         string        `envconfig:"MCP_HTTP_ADDR" default:":8385"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	NotionTimeout    time.Duration `envconfig:"NOTION_HTTP_TIMEOUT" default:"30s"`
	ShutdownTimeout  time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	HTTPReadTimeout  time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"5s"`
	HTTPIdleTimeout  time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"120s"`
}

// loadConfig loads configuration from the environment and command line flags.
func loadConfig() (*config, error) {
	// A .env file is optional; deployments usually set the variables directly.
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}

	cfg := &config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	// Command line flags (will override env vars)
	var rawLogLevel, httpAddr string
	flag.StringVar(&rawLogLevel, "log-level", cfg.LogLevel, "Log level: debug|info|warn|error")
	flag.StringVar(&httpAddr, "http-addr", cfg.HTTPAddr, "Listen address for the Streamable HTTP transport")
	flag.Parse()
	cfg.LogLevel = rawLogLevel
	cfg.HTTPAddr = httpAddr

	return cfg, nil
}

// initLogger initializes the logger with the configured level
func (c *config) initLogger() {
	zerolog.SetGlobalLevel(parseLogLevel(c.LogLevel))
	log.Logger = log.With().Caller().Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// RunMCPServer starts the MCP server with the given configuration
func RunMCPServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.initLogger()

	// Initialize the speaker client against the configured Notion database
	log.Info().Str("database_id", cfg.NotionDatabaseID).Msg("Creating speaker client")
	speakerClient, err := client.New(cfg.NotionAPIKey, cfg.NotionDatabaseID,
		client.WithHTTPTimeout(cfg.NotionTimeout),
		client.WithLogger(log.Logger),
	)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create speaker client")
		return err
	}
	log.Info().Msg("Speaker client created successfully")

	// Create a new MCP server
	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
		// Advertise empty resources & prompts so the host client stops returning
		// -32601 for resources/list and prompts/list.
		server.WithResourceCapabilities(true, true), // subscribe=true, listChanged=true
		server.WithPromptCapabilities(true),         // listChanged=true
	)

	// Initialize and register handlers
	registerHandler(s, handlers.NewSpeakerHandler(speakerClient), "speaker")
	registerHandler(s, handlers.NewSearchHandler(speakerClient), "search")
	registerHandler(s, handlers.NewResearchHandler(), "research")
	registerHandler(s, handlers.NewAdminHandler(speakerClient), "admin")

	// Auto-detect transport method
	if shouldUseStdio() {
		// Stdio transport (for Claude Desktop, launched processes)
		log.Info().Msg("Starting speaker-tracker MCP server (stdio transport)")

		if err := server.ServeStdio(s); err != nil {
			log.Fatal().Err(err).Msg("Stdio server error")
		}
	} else {
		// HTTP transport (for manual/Docker startup)
		log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting speaker-tracker MCP server (Streamable HTTP)")

		// Set up graceful shutdown handling
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		shutdownComplete := make(chan struct{})

		streamSrv := server.NewStreamableHTTPServer(
			s,
			server.WithEndpointPath("/mcp"),
			server.WithHeartbeatInterval(30*time.Second),
		)

		r := mux.NewRouter()
		r.PathPrefix("/mcp").Handler(streamSrv)
		r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

		srv := &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      r,
			ReadTimeout:  cfg.HTTPReadTimeout, // Keep short for request parsing
			WriteTimeout: 0,                   // No deadline - required for SSE streaming
			IdleTimeout:  cfg.HTTPIdleTimeout, // Keep for after requests finish
		}

		// Graceful shutdown handler
		go func() {
			defer close(shutdownComplete)

			sig := <-sigChan
			log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()

			// Shutdown HTTP server first
			log.Info().Msg("Shutting down HTTP server...")
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Error during HTTP server shutdown")
			} else {
				log.Info().Msg("HTTP server shutdown complete")
			}

			// Shutdown streamable MCP server
			log.Info().Msg("Shutting down MCP streamable server...")
			if err := streamSrv.Shutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("Error during MCP server shutdown")
			} else {
				log.Info().Msg("MCP server shutdown complete")
			}
		}()

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}

		// Wait for graceful shutdown to complete
		<-shutdownComplete
		log.Info().Msg("MCP server shutdown complete")
	}

	return nil
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	// Force stdio mode with environment variable
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}

	// Force HTTP mode with environment variable
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	// Default to HTTP if detection fails
	return false
}
