package ollama

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"alpaca-ollama/pkg/log"
)

// Stream is a lazy, non-restartable sequence of NDJSON records read from one
// HTTP response. Use it like bufio.Scanner:
//
//	s := o.openStream(ctx, EmbedPath, body)
//	defer s.Close()
//	for s.Next() {
//		s.Decode(&rec)
//	}
//	if err := s.Err(); err != nil { ... }
//
// A failed request yields an already-finished Stream whose Err reports
// ErrNoResponse or ErrTimeout.
type Stream struct {
	ctx     context.Context
	cancel  context.CancelFunc
	l       log.Logger
	path    string
	timeout time.Duration

	body    io.Closer
	scanner *bufio.Scanner
	record  json.RawMessage
	count   int
	err     error
	closed  bool
}

// openStream POSTs body as JSON to path and returns the response as a Stream.
// The timeout spans the whole call, including reading the body.
func (o *ollamaImpl) openStream(ctx context.Context, path string, body any) *Stream {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	s := &Stream{ctx: ctx, cancel: cancel, l: o.l, path: path, timeout: o.timeout}

	payload, err := json.Marshal(body)
	if err != nil {
		s.err = fmt.Errorf("ollama: failed to marshal request: %w", err)
		return s
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		s.err = fmt.Errorf("ollama: failed to create request: %w", err)
		return s
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/x-ndjson")

	resp, err := o.httpClient.Do(req)
	if err != nil {
		s.fail(err)
		return s
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Ollama reports failures as {"error": "..."} records, so keep reading.
		o.l.Warnf(ctx, "ollama: POST %s returned status %d", path, resp.StatusCode)
	}

	s.body = resp.Body
	s.scanner = bufio.NewScanner(resp.Body)
	s.scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	return s
}

// Next advances to the next non-empty line. It returns false at the end of
// the body or on the first error.
func (s *Stream) Next() bool {
	if s.err != nil || s.scanner == nil || s.closed {
		return false
	}

	for s.scanner.Scan() {
		line := bytes.TrimSpace(s.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if !json.Valid(line) {
			s.err = fmt.Errorf("%w: line %d of %s is not valid JSON", ErrMalformedRecord, s.count+1, s.path)
			s.l.Errorf(s.ctx, "ollama: %v", s.err)
			return false
		}
		// the scanner reuses its buffer
		s.record = append(json.RawMessage(nil), line...)
		s.count++
		return true
	}

	if err := s.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			s.err = fmt.Errorf("%w: line exceeds %d bytes", ErrMalformedRecord, maxRecordSize)
			s.l.Errorf(s.ctx, "ollama: %v", s.err)
			return false
		}
		s.fail(err)
	}
	return false
}

// Record returns the current record. It is valid until the next call to Next.
func (s *Stream) Record() json.RawMessage {
	return s.record
}

// Decode unmarshals the current record into v.
func (s *Stream) Decode(v any) error {
	if s.record == nil {
		return fmt.Errorf("%w: no current record", ErrNoResponse)
	}
	if err := json.Unmarshal(s.record, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return nil
}

// Count returns the number of records produced so far.
func (s *Stream) Count() int {
	return s.count
}

// Err returns the error that ended the stream, or nil on a clean end.
func (s *Stream) Err() error {
	return s.err
}

// Close releases the response body and the call deadline. Safe to call twice.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	defer s.cancel()
	if s.body != nil {
		return s.body.Close()
	}
	return nil
}

// fail records a transport-level error. Timeouts are expected (the model may
// still be generating) and logged as warnings; everything else as errors.
func (s *Stream) fail(err error) {
	if isTimeout(s.ctx, err) {
		s.err = fmt.Errorf("%w: %s after %s", ErrTimeout, s.path, s.timeout)
		s.l.Warnf(s.ctx, "ollama: POST %s timed out after %s, server may still be generating", s.path, s.timeout)
		return
	}
	s.err = fmt.Errorf("%w: %v", ErrNoResponse, err)
	s.l.Errorf(s.ctx, "ollama: POST %s failed: %v", s.path, err)
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
