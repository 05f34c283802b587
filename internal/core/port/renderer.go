package port

import "retouch/internal/core/domain"

type Renderer interface {
	// RenderState prints a summary of the session state, including any error
	// the last operation left behind.
	RenderState(state domain.State)
	// RenderMessage prints a plain informational line.
	RenderMessage(text string)
}
