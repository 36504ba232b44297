package handler

// errorResponse mirrors the envelope produced by the central error handler;
// declared here so handler docs can reference the error shape.
type errorResponse struct {
	Error struct {
		Name    string `json:"name"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}
