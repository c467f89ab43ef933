package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/viper"

	"chartgen/internal/api"
	"chartgen/internal/chart"
	"chartgen/internal/config"
	"chartgen/internal/database"
	"chartgen/internal/llm"
	"chartgen/internal/repository"
	"chartgen/internal/schema"
	"chartgen/internal/service"
)

// routeSlack is added to the model call timeout for the HTTP middleware
// deadline, so a timed-out call still gets a classified 504 body.
const routeSlack = 5 * time.Second

// App holds the long-lived resources of the server process.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	SetupLogger(cfg.LogLevel, cfg.LogFormat)

	logConfigSource()

	probeUpstream(cfg.LLMBaseURL)

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		slog.Info("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), cfg.LLMTimeout+routeSlack)
		defer cancel()
		if err := app.Server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Starting server", "port", cfg.AppPort, "model", cfg.LLMModel, "transport", cfg.LLMTransport)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}
	slog.Info("Server stopped")

	return 0
}

// NewApp opens the history database and wires the generation pipeline
// behind the HTTP router.
func NewApp(cfg *config.Config) (*App, error) {
	generator, validator, err := BuildGenerator(cfg)
	if err != nil {
		return nil, err
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.", "path", cfg.DatabasePath)

	repo := repository.NewSQLiteRepository(db)
	chartService := service.NewChartService(generator, validator, repo, cfg.LLMTimeout)
	chartHandler := api.NewChartHandler(chartService)
	router := api.NewRouter(chartHandler, cfg.LLMTimeout+routeSlack)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      cfg.LLMTimeout + 2*routeSlack,
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

// BuildGenerator loads the configured schema and picks the transport named
// by LLM_TRANSPORT. The CLI uses it without the rest of the server.
func BuildGenerator(cfg *config.Config) (*chart.Generator, *schema.Validator, error) {
	validator, err := schema.Load(cfg.SchemaPath)
	if err != nil {
		return nil, nil, err
	}

	// The service applies LLM_TIMEOUT per call; the client itself has none.
	httpClient := &http.Client{}

	var transport llm.Transport
	switch cfg.LLMTransport {
	case config.TransportOpenAI:
		transport = llm.NewOpenAITransport(cfg.LLMBaseURL, cfg.LLMAPIKey, httpClient)
	case config.TransportHTTP, "":
		transport = llm.NewHTTPTransport(cfg.LLMBaseURL, llm.WithHTTPClient(httpClient), llm.WithAPIKey(cfg.LLMAPIKey))
	default:
		return nil, nil, fmt.Errorf("unknown LLM transport %q", cfg.LLMTransport)
	}

	return chart.NewGenerator(transport, validator, cfg.LLMModel), validator, nil
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

// SetupLogger installs the default slog logger on stdout.
func SetupLogger(logLevel, format string) {
	slog.SetDefault(NewLogger(logLevel, format, os.Stdout))
}

// NewLogger returns a JSON logger, or a coloured console logger when format
// is "text".
func NewLogger(logLevel, format string, w io.Writer) *slog.Logger {
	level := parseLevel(logLevel)
	if strings.EqualFold(format, "text") {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func parseLevel(logLevel string) slog.Level {
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// probeUpstream checks once whether the model endpoint answers. The server
// starts either way; generation requests fail with transport errors until
// the endpoint is reachable.
func probeUpstream(baseURL string) {
	client := &http.Client{Timeout: 2 * time.Second}
	url := strings.TrimRight(strings.TrimSpace(baseURL), "/") + "/models"

	resp, err := client.Get(url)
	if err != nil {
		slog.Warn("LLM endpoint is not reachable yet", "url", url, "error", err)
		return
	}
	if bErr := resp.Body.Close(); bErr != nil {
		slog.Warn("Failed to close response body in upstream probe", "error", bErr)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		slog.Warn("LLM endpoint answered with a server error", "url", url, "status", resp.StatusCode)
		return
	}
	slog.Info("LLM endpoint is reachable.", "url", url, "status", resp.StatusCode)
}
