// Package dataurl converts between raw image bytes and the base64 data URIs
// the rest of the app stores and ships around.
package dataurl

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Encode wraps raw bytes into a data URI with the given MIME type.
func Encode(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// Decode splits a data URI into its MIME type and raw bytes.
func Decode(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data URI")
	}

	header, payload, ok := strings.Cut(uri, ",")
	if !ok {
		return "", nil, fmt.Errorf("data URI missing payload")
	}

	meta := strings.TrimPrefix(header, "data:")
	mimeType := meta
	if idx := strings.Index(meta, ";"); idx != -1 {
		mimeType = meta[:idx]
	}
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode data URI payload: %w", err)
	}

	return mimeType, data, nil
}

// RawBase64 returns the base64 payload after the comma, the form the
// generation API wants for inline image data. Non-data-URI input is
// returned unchanged so already-raw payloads pass through.
func RawBase64(uri string) string {
	if _, payload, ok := strings.Cut(uri, ","); ok && strings.HasPrefix(uri, "data:") {
		return payload
	}
	return uri
}
