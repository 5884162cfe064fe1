package ollama

import "time"

const (
	// DefaultBaseURL is the local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultEmbedModel is the model used for /api/embed
	DefaultEmbedModel = "snowflake-arctic-embed2:latest"

	// DefaultPromptModel is the model used for /api/chat
	DefaultPromptModel = "granite3.3:2b"

	// DefaultTimeout bounds a whole call, from dial to the last streamed line
	DefaultTimeout = 70 * time.Second

	// maxRecordSize caps a single NDJSON line
	maxRecordSize = 16 * 1024 * 1024
)

const (
	EmbedPath = "/api/embed"
	ChatPath  = "/api/chat"
)

// Endpoint labels reported to the Observer.
const (
	EndpointEmbed = "embed"
	EndpointChat  = "chat"
)

// Outcome labels reported to the Observer.
const (
	OutcomeOK           = "ok"
	OutcomeNoResponse   = "no_response"
	OutcomeTimeout      = "timeout"
	OutcomeMalformed    = "malformed"
	OutcomeMissingField = "missing_field"
)

const roleUser = "user"
