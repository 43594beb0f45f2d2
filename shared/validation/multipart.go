package validation

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidateAndParseMultipart caps the request body at maxSize and parses
// the multipart form. Once the limit is hit the server stops reading and
// the browser sees a reset connection; the form's accept/size hints catch
// ordinary users before that.
func ValidateAndParseMultipart(r *http.Request, w http.ResponseWriter, maxSize int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return fmt.Errorf("%w: expected multipart form", ErrInvalidSubmission)
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("%w: request body exceeds %.0f MB", ErrPayloadTooLarge, FormatSizeMB(maxSize))
		}
		return fmt.Errorf("%w: malformed multipart form", ErrInvalidSubmission)
	}

	return nil
}

// CalculateMaxRequestSize returns the maximum request size including overhead buffer.
// It adds a buffer (typically 1 MiB) for form fields and multipart overhead.
func CalculateMaxRequestSize(maxAttachmentSize int64, bufferSize int64) int64 {
	return maxAttachmentSize + bufferSize
}

// FormatSizeMB converts bytes to megabytes for user-friendly error messages.
func FormatSizeMB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024)
}
