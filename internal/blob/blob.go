package blob

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Uploader stores an object under key and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// UpstreamError is a failure reported by the storage provider. Status is the
// provider's HTTP status, or 0 when it did not send one.
type UpstreamError struct {
	Provider string
	Status   int
	Message  string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s upload failed (%d): %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s upload failed: %s", e.Provider, e.Message)
}

// HTTPStatus is the status to relay to the caller.
func (e *UpstreamError) HTTPStatus() int {
	if e.Status >= 400 && e.Status <= 599 {
		return e.Status
	}
	return http.StatusBadGateway
}
