package domain

// SourceImage is a loaded image held by a session, ready to be sent to the
// image editor. Payload is the base64 text of the raw bytes, identical to the
// payload segment of DisplayURL.
type SourceImage struct {
	DisplayURL string
	Payload    string
	MediaType  string
}

// State is the complete session state. The zero value is the empty session.
type State struct {
	Source    *SourceImage
	ResultURL string
	Prompt    string
	Pending   bool
	LastError string
}

// EditRequest carries one image edit to the remote editor.
type EditRequest struct {
	Prompt    string
	Payload   string
	MediaType string
}
