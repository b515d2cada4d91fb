package domain

import "fmt"

// UpstreamError is the single normalized error shape produced by the
// ClickUp client. Status carries the upstream HTTP status code unchanged;
// transport and serialization failures are normalized to 500.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream: %d %s", e.Status, e.Message)
}
