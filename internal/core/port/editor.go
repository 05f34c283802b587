package port

import (
	"context"
	"retouch/internal/core/domain"
)

type ImageEditor interface {
	// EditImage submits the encoded source image and the prompt to the remote
	// model and returns the raw bytes of the first generated image.
	EditImage(ctx context.Context, request domain.EditRequest) ([]byte, error)
}
