package models

// Response is the uniform envelope every API handler produces. Data is nil
// on failure; Message is nil on success.
type Response struct {
	Success bool    `json:"success"`
	Data    any     `json:"data"`
	Message *string `json:"message"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps a human-readable message in a failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: &message}
}

// FileResponse is the marker payload that tells the routing layer to bypass
// JSON serialization and stream raw bytes with attachment headers instead.
type FileResponse struct {
	FileName string
	Content  []byte
}

// StringResponse carries a single string result, echoed both as the
// formatted message and as the machine-readable raw value.
type StringResponse struct {
	Object  string `json:"object"`
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`
	Raw     string `json:"raw,omitempty"`
}

// StatusResponse is the payload of GET /status.
type StatusResponse struct {
	ServerURL string `json:"serverUrl"`
	UserEmail string `json:"userEmail"`
	LastSync  string `json:"lastSync,omitempty"`
	// Status is "locked" or "unlocked".
	Status string `json:"status"`
}

// SavedFileResponse reports where an attachment was persisted on disk.
type SavedFileResponse struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// ListResponse wraps a bulk listing. Length duplicates len(Data) for
// client convenience.
type ListResponse struct {
	Data   any `json:"data"`
	Length int `json:"length"`
}
