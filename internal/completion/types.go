package completion

import "encoding/json"

// --- UseCase Inputs ---

type CompleteInput struct {
	Prompt string
	Stream bool
	// JSON requests structured output; nil keeps the configured default.
	JSON *bool
}

// --- UseCase Outputs ---

// CompleteOutput is either the first server record verbatim (Stream false)
// or the concatenated streamed content (Stream true).
type CompleteOutput struct {
	Stream  bool
	Record  json.RawMessage
	Content string
}
