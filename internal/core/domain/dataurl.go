package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	dataURLScheme    = "data:"
	dataURLB64Suffix = ";base64"
)

// EncodeDataURL builds a data:<mediaType>;base64,<payload> URL from raw bytes.
func EncodeDataURL(mediaType string, data []byte) string {
	return dataURLScheme + mediaType + dataURLB64Suffix + "," + base64.StdEncoding.EncodeToString(data)
}

// ParseDataURL splits a base64 data URL into its media type and payload.
func ParseDataURL(url string) (mediaType, payload string, err error) {
	header, payload, found := strings.Cut(url, ",")
	if !found || payload == "" {
		return "", "", fmt.Errorf("%w: missing payload segment", ErrMalformedDataURL)
	}

	if !strings.HasPrefix(header, dataURLScheme) || !strings.HasSuffix(header, dataURLB64Suffix) {
		return "", "", fmt.Errorf("%w: unexpected header %q", ErrMalformedDataURL, header)
	}

	mediaType = strings.TrimSuffix(strings.TrimPrefix(header, dataURLScheme), dataURLB64Suffix)
	if mediaType == "" {
		return "", "", fmt.Errorf("%w: no media type", ErrMalformedDataURL)
	}

	return mediaType, payload, nil
}

// DecodePayload decodes the base64 payload of a data URL back into raw bytes.
func DecodePayload(payload string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("error decoding image payload: %w", err)
	}
	return data, nil
}
