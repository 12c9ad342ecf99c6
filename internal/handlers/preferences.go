package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/prefs"
)

type PreferencesHandler struct {
	prefs *prefs.Store
}

func NewPreferencesHandler(store *prefs.Store) *PreferencesHandler {
	return &PreferencesHandler{prefs: store}
}

func (h *PreferencesHandler) HandleGet(c echo.Context) error {
	return c.JSON(http.StatusOK, h.prefs.Load(c.Request().Context()))
}

// HandleUpdate applies a partial update and echoes back the merged record.
func (h *PreferencesHandler) HandleUpdate(c echo.Context) error {
	var update prefs.Update
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid preferences payload")
	}

	ctx := c.Request().Context()
	h.prefs.Save(ctx, update)
	return c.JSON(http.StatusOK, h.prefs.Load(ctx))
}
