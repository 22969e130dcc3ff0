package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

// UploadedImage describes a file persisted by the image store. It is
// computed per request; the on-disk directory listing remains the only
// record of which images exist.
type UploadedImage struct {
	Filename string
	URL      string
	Size     int64
}
