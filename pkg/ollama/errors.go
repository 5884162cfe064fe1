package ollama

import (
	"errors"
	"fmt"
)

var (
	// ErrNoResponse means the server produced no usable record: the
	// connection failed, the body was empty, or the call timed out.
	ErrNoResponse = errors.New("ollama: no response")

	// ErrTimeout is the timeout flavour of ErrNoResponse.
	ErrTimeout = fmt.Errorf("%w: read timeout", ErrNoResponse)

	// ErrMalformedRecord means a non-empty line was not valid JSON or did
	// not match the expected record shape.
	ErrMalformedRecord = errors.New("ollama: malformed record")

	// ErrMissingEmbeddings means the first embed record had no embeddings.
	ErrMissingEmbeddings = errors.New("ollama: record has no embeddings")
)

// outcomeOf maps a call error to an Observer outcome label.
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrTimeout):
		return OutcomeTimeout
	case errors.Is(err, ErrMalformedRecord):
		return OutcomeMalformed
	case errors.Is(err, ErrMissingEmbeddings):
		return OutcomeMissingField
	default:
		return OutcomeNoResponse
	}
}
