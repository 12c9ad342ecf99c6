package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/generator"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/prefs"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/share"
)

type GenerateHandler struct {
	orchestrator *generator.Orchestrator
	prefs        *prefs.Store
	baseURL      string
}

func NewGenerateHandler(orchestrator *generator.Orchestrator, store *prefs.Store, baseURL string) *GenerateHandler {
	return &GenerateHandler{
		orchestrator: orchestrator,
		prefs:        store,
		baseURL:      baseURL,
	}
}

type generateRequest struct {
	ProductImage string `json:"product_image"`
	Prompt       string `json:"prompt"`
	Style        string `json:"style"`
}

type generateResponse struct {
	Content       ads.AdContent         `json:"content"`
	ClipboardText string                `json:"clipboard_text"`
	ShareLinks    []share.GeneratedShare `json:"share_links"`
}

type errorResponse struct {
	ErrorKind string `json:"error_kind"`
	Message   string `json:"message"`
}

func (h *GenerateHandler) HandleGenerate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{
			ErrorKind: string(generator.KindValidation),
			Message:   "Yêu cầu không hợp lệ.",
		})
	}

	ctx := c.Request().Context()
	preferences := h.prefs.Load(ctx)

	content, err := h.orchestrator.Generate(ctx, generator.Request{
		ProductImage: req.ProductImage,
		Prompt:       req.Prompt,
		Style:        req.Style,
		Brand:        preferences.Brand,
	})
	if err != nil {
		kind := generator.KindOf(err)
		return c.JSON(statusFor(kind), errorResponse{
			ErrorKind: string(kind),
			Message:   messageFor(kind),
		})
	}

	return c.JSON(http.StatusOK, generateResponse{
		Content:       content,
		ClipboardText: share.ClipboardText(content),
		ShareLinks:    share.ShareLinks(content, h.baseURL, ""),
	})
}

type progressResponse struct {
	State    generator.State `json:"state"`
	Percent  float64         `json:"percent"`
	Stage    string          `json:"stage"`
	LogLines []string        `json:"log_lines"`
}

// HandleProgress is polled by the overlay while a generation runs.
func (h *GenerateHandler) HandleProgress(c echo.Context) error {
	snapshot := h.orchestrator.Progress()
	return c.JSON(http.StatusOK, progressResponse{
		State:    h.orchestrator.State(),
		Percent:  snapshot.Percent,
		Stage:    snapshot.Stage,
		LogLines: snapshot.LogLines,
	})
}

func statusFor(kind generator.Kind) int {
	switch kind {
	case generator.KindValidation:
		return http.StatusBadRequest
	case generator.KindBusy:
		return http.StatusConflict
	case generator.KindConfig:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// messageFor keeps user-facing wording in one place: validation blocks the
// submit, config points at the missing key, everything else is retry-by-hand.
func messageFor(kind generator.Kind) string {
	switch kind {
	case generator.KindValidation:
		return "Vui lòng tải ảnh sản phẩm hoặc nhập mô tả!"
	case generator.KindBusy:
		return "Đang có một bài viết được tạo, vui lòng chờ."
	case generator.KindConfig:
		return "Chưa cấu hình GEMINI_API_KEY. Thêm API key vào môi trường rồi khởi động lại ứng dụng."
	default:
		return "Có lỗi xảy ra khi tạo nội dung. Vui lòng thử lại!"
	}
}
