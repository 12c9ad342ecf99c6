package dataurl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw := []byte{0x01, 0x02, 0xFF, 0x00, 0x7F}

	uri := Encode("image/png", raw)
	assert.Contains(t, uri, "data:image/png;base64,")

	mimeType, decoded, err := Decode(uri)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.Equal(t, raw, decoded)
}

func TestDecodeRejectsNonDataURI(t *testing.T) {
	_, _, err := Decode("https://example.com/image.png")
	assert.Error(t, err)
}

func TestDecodeRejectsMissingPayload(t *testing.T) {
	_, _, err := Decode("data:image/png;base64")
	assert.Error(t, err)
}

func TestDecodeRejectsBadBase64(t *testing.T) {
	_, _, err := Decode("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}

func TestRawBase64StripsHeader(t *testing.T) {
	uri := Encode("image/jpeg", []byte("hello"))
	assert.Equal(t, "aGVsbG8=", RawBase64(uri))
}

func TestRawBase64PassesThroughRawPayload(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", RawBase64("aGVsbG8="))
}
