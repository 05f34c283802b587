package port

import "context"

type FileStore interface {
	// ReadDataURL reads an image file fully into memory and returns it as a
	// base64 data URL with a detected media type.
	ReadDataURL(ctx context.Context, path string) (string, error)
	// WriteImage decodes a data URL and writes its bytes to path, generating a
	// file name when path is empty. Returns the path written to.
	WriteImage(dataURL, path string) (string, error)
}
