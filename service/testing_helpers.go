package service

import (
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/storage"
)

// setupTestEcho creates a fully routed echo instance backed by an in-memory
// database. No API key is configured, so generation fails as unconfigured.
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment: "test",
		Port:        "8000",
		BaseURL:     "http://localhost:8000",
	}

	svc := New(store, config)

	e := echo.New()
	svc.RegisterRoutes(e)

	return e, svc
}
