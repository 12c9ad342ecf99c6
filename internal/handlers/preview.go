package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/prefs"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/preview"
)

type PreviewHandler struct {
	prefs *prefs.Store
}

func NewPreviewHandler(store *prefs.Store) *PreviewHandler {
	return &PreviewHandler{prefs: store}
}

type previewRequest struct {
	ProductImage string `json:"product_image"`
}

// HandlePreview composes the branded preview (logo overlay + banner strip)
// for the supplied product image and returns it as PNG.
func (h *PreviewHandler) HandlePreview(c echo.Context) error {
	var req previewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid preview payload")
	}
	if req.ProductImage == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_image is required")
	}

	preferences := h.prefs.Load(c.Request().Context())

	data, err := preview.Render(preview.Options{
		ProductImage: req.ProductImage,
		Logo:         preferences.Media.Logo,
		LogoOpacity:  preferences.Media.LogoOpacity,
		Brand:        preferences.Brand,
	})
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "failed to compose preview")
	}

	return c.Blob(http.StatusOK, "image/png", data)
}
