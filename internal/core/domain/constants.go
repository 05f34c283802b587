package domain

import "errors"

// ResultMediaType is the media type of every generated result, regardless of
// the media type of the source image.
const ResultMediaType = "image/png"

// Fixed user-facing messages. Every failure inside a session operation ends up
// in State.LastError as one of these, or as a GenerationError.
const (
	MsgMissingInput = "Please load an image and enter a prompt first."
	MsgFileFailed   = "Could not process the image file."
)

const generationFailedPrefix = "Generation failed: "

var (
	ErrMalformedDataURL = errors.New("malformed data URL")
	ErrNoImageData      = errors.New("no image data in model response")
	ErrNoResult         = errors.New("no result image to save")
)

// GenerationError formats a service failure for display, using the underlying
// error text when available.
func GenerationError(err error) string {
	if err == nil || err.Error() == "" {
		return generationFailedPrefix + "unknown error"
	}
	return generationFailedPrefix + err.Error()
}
