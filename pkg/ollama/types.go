package ollama

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"alpaca-ollama/pkg/log"
)

// Config holds Ollama client configuration
type Config struct {
	BaseURL     string
	EmbedModel  string
	PromptModel string
	Timeout     time.Duration

	// JSONOutput is the default for ChatInput.JSON. Nil means true.
	JSONOutput *bool

	HTTPClient *http.Client
	Observer   Observer
}

// Validate fills in defaults and rejects unusable values
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("ollama: BaseURL must be an http(s) URL, got %q", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.EmbedModel == "" {
		c.EmbedModel = DefaultEmbedModel
	}
	if c.PromptModel == "" {
		c.PromptModel = DefaultPromptModel
	}
	if c.Timeout < 0 {
		return fmt.Errorf("ollama: Timeout must not be negative, got %s", c.Timeout)
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.JSONOutput == nil {
		on := true
		c.JSONOutput = &on
	}
	if c.HTTPClient == nil {
		// the per-call context carries the deadline, so no client timeout here
		c.HTTPClient = &http.Client{}
	}
	if c.Observer == nil {
		c.Observer = NopObserver{}
	}
	return nil
}

// Observer receives one notification per finished call.
type Observer interface {
	ObserveRequest(endpoint, outcome string, elapsed time.Duration)
}

// NopObserver discards observations.
type NopObserver struct{}

func (NopObserver) ObserveRequest(string, string, time.Duration) {}

type ollamaImpl struct {
	l           log.Logger
	baseURL     string
	embedModel  string
	promptModel string
	timeout     time.Duration
	jsonOutput  bool
	httpClient  *http.Client
	observer    Observer
}

// EmbedRequest is the /api/embed request body.
type EmbedRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// EmbedRecord is the part of an /api/embed record the client reads. Error is
// kept raw because its shape is not fixed by the server.
type EmbedRecord struct {
	Embeddings Embedding       `json:"embeddings,omitempty"`
	Error      json.RawMessage `json:"error,omitempty"`
}

// ChatMessage is a single chat turn.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the /api/chat request body.
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Raw      bool          `json:"raw"`
	JSON     bool          `json:"json"`
}

// ChatRecord is the part of an /api/chat record the client reads. Both fields
// stay raw so that a record with unexpected shapes is still usable.
type ChatRecord struct {
	Message json.RawMessage `json:"message,omitempty"`
	Error   json.RawMessage `json:"error,omitempty"`
}

// parseChatRecord reads what it can from a record and ignores the rest. A
// record that is not an object yields the zero ChatRecord.
func parseChatRecord(record json.RawMessage) ChatRecord {
	var rec ChatRecord
	_ = json.Unmarshal(record, &rec)
	return rec
}

// Content returns message.content, or "" when it is missing or not a string.
func (r ChatRecord) Content() string {
	var msg struct {
		Content string `json:"content"`
	}
	if len(r.Message) == 0 || json.Unmarshal(r.Message, &msg) != nil {
		return ""
	}
	return msg.Content
}

// errorText renders a server "error" value for logs and error messages.
// Strings are unquoted; any other JSON value is returned as written.
func errorText(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}

// ChatInput is the input to Chat.
type ChatInput struct {
	Prompt string
	Stream bool
	// JSON requests structured output. Nil uses the client default.
	JSON *bool
}

// ChatResult is the assembled result of one Chat call.
//
// Non-streaming: Record holds the first record byte-for-byte and Content
// its message.content. Streaming: Record is nil and Content is the
// concatenation of every record's message.content, in arrival order.
type ChatResult struct {
	Stream  bool
	Record  json.RawMessage
	Content string
	Records int
}

// Embedding is a flat vector. Nested JSON arrays are flattened row-major on
// decode, so [[1,2],[3]] becomes [1,2,3].
type Embedding []float64

// UnmarshalJSON implements json.Unmarshaler for Embedding.
func (e *Embedding) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*e = nil
		return nil
	}
	out := make([]float64, 0)
	if err := flatten(raw, &out); err != nil {
		return err
	}
	*e = out
	return nil
}

func flatten(v any, out *[]float64) error {
	switch t := v.(type) {
	case float64:
		*out = append(*out, t)
	case []any:
		for _, item := range t {
			if err := flatten(item, out); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("ollama: embedding value must be a number or array, got %T", v)
	}
	return nil
}
