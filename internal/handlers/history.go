package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/export"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/history"
)

type HistoryHandler struct {
	log *history.Log
}

func NewHistoryHandler(log *history.Log) *HistoryHandler {
	return &HistoryHandler{log: log}
}

type historyListResponse struct {
	Items []ads.HistoryItem `json:"items"`
}

func (h *HistoryHandler) HandleList(c echo.Context) error {
	items, err := h.log.LoadAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load history")
	}
	if items == nil {
		items = []ads.HistoryItem{}
	}
	return c.JSON(http.StatusOK, historyListResponse{Items: items})
}

// HandleExportPDF streams one history item as an A4 flyer.
func (h *HistoryHandler) HandleExportPDF(c echo.Context) error {
	id := c.Param("id")

	item, err := h.log.Get(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "history item not found")
	}

	data, err := export.FlyerPDF(item)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to render flyer")
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="ad-%s.pdf"`, id))
	return c.Blob(http.StatusOK, "application/pdf", data)
}
