package file

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"retouch/internal/core/domain"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Local reads source images from and writes results to the local filesystem.
type Local struct{}

func NewLocal() *Local {
	return &Local{}
}

// ReadDataURL reads the file at path fully into memory and returns it as a
// base64 data URL. The media type is detected from the leading bytes.
func (l *Local) ReadDataURL(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("error reading image file: %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return "", err
	}

	mediaType := http.DetectContentType(buf)

	log.Debug().Str("path", path).Str("mediaType", mediaType).Int("bytes", len(buf)).Msg("read image file")

	return domain.EncodeDataURL(mediaType, buf), nil
}

// WriteImage decodes a data URL and writes the bytes to path. An empty path
// gets a generated name in the working directory.
func (l *Local) WriteImage(dataURL, path string) (string, error) {
	_, payload, err := domain.ParseDataURL(dataURL)
	if err != nil {
		return "", err
	}

	data, err := domain.DecodePayload(payload)
	if err != nil {
		return "", err
	}

	if path == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return "", err
		}
		path = fmt.Sprintf("retouch-%s.png", id.String())
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		err = fmt.Errorf("error writing image file: %w", err)
		log.Error().Err(err).Str("path", path).Send()
		return "", err
	}

	log.Debug().Str("path", path).Int("bytes", len(data)).Msg("wrote image file")

	return path, nil
}
