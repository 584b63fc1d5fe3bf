package presto

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// NoSuchTableError reports that an introspected table does not exist.
type NoSuchTableError struct {
	Table string
}

func (e *NoSuchTableError) Error() string {
	return fmt.Sprintf("no such table: %s", e.Table)
}

// Message is the payload attached to a backend failure. The wire client
// reports it either as plain text or as a structured object carrying a
// "message" key; both shapes funnel through one Text extraction.
type Message interface {
	// Text returns the human-readable message, and false when the payload
	// carries none.
	Text() (string, bool)
}

// PlainMessage is a backend message reported as bare text.
type PlainMessage string

// Text returns the message text.
func (m PlainMessage) Text() (string, bool) {
	return string(m), true
}

// StructuredMessage is a backend message reported as a structured object.
type StructuredMessage map[string]any

// Text returns the "message" field, if present and a string.
func (m StructuredMessage) Text() (string, bool) {
	s, ok := m["message"].(string)
	return s, ok
}

// extractMessage recovers the backend message payload from a client error.
func extractMessage(err error) Message {
	text := err.Error()
	if i := strings.IndexByte(text, '{'); i >= 0 {
		var payload map[string]any
		if json.Unmarshal([]byte(text[i:]), &payload) == nil {
			if _, ok := payload["message"]; ok {
				return StructuredMessage(payload)
			}
		}
	}
	return PlainMessage(text)
}

// notFoundPattern matches the engine's full "table does not exist" message
// for the given table, with the name escaped for literal matching. The
// pattern is anchored: a prefix or suffix around the message is not a match.
func notFoundPattern(table string) *regexp.Regexp {
	return regexp.MustCompile(`^Table '.*` + regexp.QuoteMeta(table) + `' does not exist$`)
}

// classifyTableError translates the engine's free-text "table not found"
// report into a typed NoSuchTableError. Any other failure passes through
// opaque, uninterpreted.
func classifyTableError(err error, table string) error {
	if msg, ok := extractMessage(err).Text(); ok && notFoundPattern(table).MatchString(msg) {
		return &NoSuchTableError{Table: table}
	}
	return err
}
