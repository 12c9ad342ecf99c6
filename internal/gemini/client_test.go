package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/ads"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key")
	require.NoError(t, err)
	client.SetBaseURL(server.URL)

	return client, server
}

// textResponse wraps a payload the way the API returns model text.
func textResponse(payload string) string {
	resp := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": payload}}}},
		},
	}
	out, _ := json.Marshal(resp)
	return string(out)
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateAdContent(t *testing.T) {
	var calls atomic.Int32
	var receivedBody []byte

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Contains(t, r.URL.Path, ":generateContent")

		body, _ := io.ReadAll(r.Body)
		receivedBody = body

		w.Write([]byte(textResponse(`{"headline":"H","body":"B","hashtags":["a","b"]}`)))
	})

	brand := ads.BrandProfile{Name: "Shop Luxury", Hotline: "0900.123.456", Address: "Quận 1"}
	image := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString([]byte("img"))

	content, err := client.GenerateAdContent(context.Background(), image, brand, "Mặn mòi & Lầy lội", "bộ lẩu cuối tuần")
	require.NoError(t, err)

	assert.Equal(t, ads.AdContent{Headline: "H", Body: "B", Hashtags: []string{"a", "b"}}, content)
	assert.Equal(t, int32(1), calls.Load())

	// The wire request carries the inline image, the brand fields and the
	// strict response schema.
	var req map[string]any
	require.NoError(t, json.Unmarshal(receivedBody, &req))
	assert.Contains(t, string(receivedBody), base64.StdEncoding.EncodeToString([]byte("img")))
	assert.Contains(t, string(receivedBody), "Shop Luxury")
	assert.Contains(t, string(receivedBody), `"required":["headline","body","hashtags"]`)
	assert.NotNil(t, req["systemInstruction"])
}

func TestGenerateAdContentMissingFieldIsContractViolation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`{"headline":"H","body":"B"}`)))
	})

	_, err := client.GenerateAdContent(context.Background(), "", ads.BrandProfile{}, "Chuyên nghiệp", "áo thun")
	assert.ErrorIs(t, err, ErrMalformedContent)
}

func TestGenerateAdContentUndecodableBodyIsContractViolation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse(`not json at all`)))
	})

	_, err := client.GenerateAdContent(context.Background(), "", ads.BrandProfile{}, "Chuyên nghiệp", "áo thun")
	assert.ErrorIs(t, err, ErrMalformedContent)
}

func TestGenerateAdContentServiceError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := client.GenerateAdContent(context.Background(), "", ads.BrandProfile{}, "Chuyên nghiệp", "áo thun")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedContent)
}

func TestGenerateImage(t *testing.T) {
	imageData := base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), "Commercial photography of")
		assert.Contains(t, string(body), `"aspectRatio":"1:1"`)

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"inlineData": map[string]any{"mimeType": "image/png", "data": imageData}},
				}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	})

	uri, err := client.GenerateImage(context.Background(), "ly cà phê sứ trắng")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))
	assert.Contains(t, uri, imageData)
}

func TestGenerateImageNoDataIsContractViolation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(textResponse("sorry, text only")))
	})

	_, err := client.GenerateImage(context.Background(), "ly cà phê")
	assert.ErrorIs(t, err, ErrNoImageData)
}

func TestSystemInstructionSelection(t *testing.T) {
	assert.Equal(t, funnySystemInstruction, systemInstructionFor("Mặn mòi & Lầy lội"))
	assert.Equal(t, professionalSystemInstruction, systemInstructionFor("Chuyên nghiệp & Tin cậy"))
	assert.Equal(t, professionalSystemInstruction, systemInstructionFor(""))
}
