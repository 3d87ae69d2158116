// Package scoring wraps the external snippet-scoring endpoint behind a small
// client interface. The production implementation invokes a SageMaker
// inference endpoint; tests inject fakes.
package scoring

import "context"

// Client sends a serialized request payload to the scoring endpoint and
// returns the raw response body. The recommendation service owns payload
// encoding and response decoding; the client is pure transport.
type Client interface {
	Invoke(ctx context.Context, payload []byte) ([]byte, error)
}
