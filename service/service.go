package service

import (
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/gemini"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/generator"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/handlers"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/history"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/prefs"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/progress"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/storage"
)

type Service struct {
	storage *storage.Storage
	config  *Config

	orchestrator *generator.Orchestrator

	generateHandler    *handlers.GenerateHandler
	historyHandler     *handlers.HistoryHandler
	preferencesHandler *handlers.PreferencesHandler
	previewHandler     *handlers.PreviewHandler
}

func New(store *storage.Storage, config *Config) *Service {
	prefStore := prefs.NewStore(store.Queries)
	historyLog := history.NewLog(store.DB(), store.Queries)
	simulator := progress.NewSimulator()

	// A missing key is a first-run state, not a startup failure: the
	// orchestrator reports it as a configuration error on every attempt.
	var content generator.ContentSynthesizer
	var images generator.ImageSynthesizer
	client, err := gemini.NewClient(config.Gemini.APIKey)
	switch {
	case err == nil:
		content = client
		images = client
	case errors.Is(err, gemini.ErrMissingAPIKey):
		slog.Warn("GEMINI_API_KEY not configured, generation disabled until it is set")
	default:
		slog.Error("failed to initialize gemini client", "error", err)
	}

	orchestrator := generator.New(content, images, historyLog, simulator)

	return &Service{
		storage:            store,
		config:             config,
		orchestrator:       orchestrator,
		generateHandler:    handlers.NewGenerateHandler(orchestrator, prefStore, config.BaseURL),
		historyHandler:     handlers.NewHistoryHandler(historyLog),
		preferencesHandler: handlers.NewPreferencesHandler(prefStore),
		previewHandler:     handlers.NewPreviewHandler(prefStore),
	}
}

func (s *Service) RegisterRoutes(e *echo.Echo) {
	// Static files - the single-page UI
	e.Static("/public", "public")
	e.File("/", "public/index.html")

	api := e.Group("/api")
	api.POST("/generate", s.generateHandler.HandleGenerate)
	api.GET("/progress", s.generateHandler.HandleProgress)
	api.GET("/history", s.historyHandler.HandleList)
	api.GET("/history/:id/pdf", s.historyHandler.HandleExportPDF)
	api.GET("/preferences", s.preferencesHandler.HandleGet)
	api.PUT("/preferences", s.preferencesHandler.HandleUpdate)
	api.POST("/preview", s.previewHandler.HandlePreview)
}
