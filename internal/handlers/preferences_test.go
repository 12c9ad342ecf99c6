package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/prefs"
)

func newPreferencesHandler(t *testing.T) *PreferencesHandler {
	t.Helper()

	_, queries, cleanup := NewTestDB()
	t.Cleanup(cleanup)

	return NewPreferencesHandler(prefs.NewStore(queries))
}

func TestHandleGetReturnsDefaultsOnFreshInstall(t *testing.T) {
	handler := newPreferencesHandler(t)

	c, rec := NewTestContext(http.MethodGet, "/api/preferences", nil)

	require.NoError(t, handler.HandleGet(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)

	brand := body["brand"].(map[string]interface{})
	assert.Equal(t, "Thương hiệu của bạn", brand["name"])
	assert.Equal(t, "light", body["theme"])
}

func TestHandleUpdateMergesPartialPayload(t *testing.T) {
	handler := newPreferencesHandler(t)

	c, rec := NewTestContext(http.MethodPut, "/api/preferences", map[string]interface{}{
		"brand_name": "Cà Phê Sáng",
		"theme":      "dark",
	})

	require.NoError(t, handler.HandleUpdate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)

	brand := body["brand"].(map[string]interface{})
	assert.Equal(t, "Cà Phê Sáng", brand["name"])
	assert.Equal(t, "0900.000.000", brand["hotline"])
	assert.Equal(t, "dark", body["theme"])
}

func TestHandleUpdatePersistsAcrossReads(t *testing.T) {
	handler := newPreferencesHandler(t)

	c, _ := NewTestContext(http.MethodPut, "/api/preferences", map[string]interface{}{
		"brand_hotline": "0912.345.678",
		"logo_opacity":  0.5,
	})
	require.NoError(t, handler.HandleUpdate(c))

	c, rec := NewTestContext(http.MethodGet, "/api/preferences", nil)
	require.NoError(t, handler.HandleGet(c))

	body, err := AssertJSONResponse(rec)
	require.NoError(t, err)

	brand := body["brand"].(map[string]interface{})
	assert.Equal(t, "0912.345.678", brand["hotline"])

	media := body["media"].(map[string]interface{})
	assert.Equal(t, 0.5, media["logo_opacity"])
}
