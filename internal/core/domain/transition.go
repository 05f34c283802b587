package domain

// Transitions are pure: each returns the next state and leaves the receiver
// untouched, so they can be tested without a session, a terminal or a network.

// WithSource replaces the loaded image and discards any previous result or
// error. The prompt survives a new upload. A generation still in flight loses
// its pending mark here; its outcome is stale and will be discarded on
// settlement.
func (s State) WithSource(img SourceImage) State {
	s.Source = &img
	s.ResultURL = ""
	s.LastError = ""
	s.Pending = false
	return s
}

// WithPrompt replaces the prompt text.
func (s State) WithPrompt(text string) State {
	s.Prompt = text
	return s
}

// BeginGenerate marks a generation in flight. Result and error are cleared up
// front so a settling request sets exactly one of them.
func (s State) BeginGenerate() State {
	s.Pending = true
	s.ResultURL = ""
	s.LastError = ""
	return s
}

// SettleResult records a successful generation.
func (s State) SettleResult(resultURL string) State {
	s.Pending = false
	s.ResultURL = resultURL
	s.LastError = ""
	return s
}

// SettleError records a failed generation.
func (s State) SettleError(message string) State {
	s.Pending = false
	s.ResultURL = ""
	s.LastError = message
	return s
}

// Fail records a failure outside a generation, e.g. a bad upload. The rest of
// the state is preserved.
func (s State) Fail(message string) State {
	s.LastError = message
	return s
}
