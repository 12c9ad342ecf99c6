package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/history"
)

func newHistoryHandler(t *testing.T) (*HistoryHandler, *history.Log) {
	t.Helper()

	database, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)

	log := history.NewLog(database, queries)
	return NewHistoryHandler(log), log
}

func TestHandleListEmptyHistory(t *testing.T) {
	handler, _ := newHistoryHandler(t)

	c, rec := NewTestContext(http.MethodGet, "/api/history", nil)

	require.NoError(t, handler.HandleList(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)

	items, ok := body["items"].([]interface{})
	require.True(t, ok, "items must be a JSON array, not null")
	assert.Empty(t, items)
}

func TestHandleListReturnsNewestFirst(t *testing.T) {
	handler, log := newHistoryHandler(t)
	ctx := context.Background()

	require.NoError(t, log.Append(ctx, ads.HistoryItem{
		ID:           "01AAAAAAAAAAAAAAAAAAAAAAAA",
		CreatedAtMs:  1000,
		ProductImage: "data:image/jpeg;base64,AAAA",
		CompanyName:  "Tiệm Bánh",
		Content:      ads.AdContent{Headline: "Cũ", Body: "b", Hashtags: []string{"x"}},
	}))
	require.NoError(t, log.Append(ctx, ads.HistoryItem{
		ID:           "01BBBBBBBBBBBBBBBBBBBBBBBB",
		CreatedAtMs:  2000,
		ProductImage: "data:image/jpeg;base64,BBBB",
		CompanyName:  "Tiệm Bánh",
		Content:      ads.AdContent{Headline: "Mới", Body: "b", Hashtags: []string{"y"}},
	}))

	c, rec := NewTestContext(http.MethodGet, "/api/history", nil)
	require.NoError(t, handler.HandleList(c))

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)

	items := body["items"].([]interface{})
	require.Len(t, items, 2)

	first := items[0].(map[string]interface{})
	content := first["content"].(map[string]interface{})
	assert.Equal(t, "Mới", content["headline"])
}

func TestHandleExportPDFUnknownID(t *testing.T) {
	handler, _ := newHistoryHandler(t)

	c, _ := NewTestContext(http.MethodGet, "/api/history/:id/pdf", nil)
	c.SetParamNames("id")
	c.SetParamValues("does-not-exist")

	err := handler.HandleExportPDF(c)
	require.Error(t, err)

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestHandleExportPDFStreamsDocument(t *testing.T) {
	handler, log := newHistoryHandler(t)
	ctx := context.Background()

	item := ads.HistoryItem{
		ID:           "01CCCCCCCCCCCCCCCCCCCCCCCC",
		CreatedAtMs:  3000,
		ProductImage: "https://example.com/product.jpg",
		CompanyName:  "Quán Cà Phê",
		Content:      ads.AdContent{Headline: "Ưu đãi", Body: "Giảm giá hôm nay", Hashtags: []string{"sale"}},
	}
	require.NoError(t, log.Append(ctx, item))

	c, rec := NewTestContext(http.MethodGet, "/api/history/:id/pdf", nil)
	c.SetParamNames("id")
	c.SetParamValues(item.ID)

	require.NoError(t, handler.HandleExportPDF(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), item.ID)
	assert.True(t, len(rec.Body.Bytes()) > 1000)
	assert.Equal(t, "%PDF-", string(rec.Body.Bytes()[:5]))
}
