package similarity

import "errors"

var (
	ErrMissingInput   = errors.New("query and at least one comparison text are required")
	ErrQueryEmbedding = errors.New("failed to embed the query")
)
