package completion

import "errors"

var (
	ErrNoCompletion        = errors.New("the model returned no completion")
	ErrMalformedCompletion = errors.New("the model returned a malformed completion")
)
