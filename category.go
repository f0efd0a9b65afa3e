package errdomain

import "maps"

// Category supplies the human-readable text of an error domain.
//
// Implementations are registered once per domain (see Registry.Register) and
// must stay valid for the rest of the process. The registry keeps a reference,
// never a copy. Message must be safe for concurrent use.
type Category interface {
	// Name returns the short name of the domain, e.g. "system".
	Name() string

	// Message returns the human-readable text for code.
	Message(code int32) string
}

// tableCategory is a Category backed by a fixed message table.
type tableCategory struct {
	name     string
	messages map[int32]string
}

// NewCategory returns a Category with the given name and message table.
// Codes missing from the table render as FormatCode(code).
// The table is copied.
//
// Example:
//
//	var category = errdomain.NewCategory("core", map[int32]string{
//	    0: "failure",
//	    1: "unknown",
//	})
func NewCategory(name string, messages map[int32]string) Category {
	return &tableCategory{name: name, messages: maps.Clone(messages)}
}

func (c *tableCategory) Name() string {
	return c.name
}

func (c *tableCategory) Message(code int32) string {
	if msg, ok := c.messages[code]; ok {
		return msg
	}
	return FormatCode(code)
}

// successCategory describes the TagSuccess domain.
type successCategory struct{}

func (successCategory) Name() string              { return "success" }
func (successCategory) Message(code int32) string { return FormatCode(code) }

// systemCategory describes the TagSystem domain using the platform's errno text.
type systemCategory struct{}

func (systemCategory) Name() string              { return "system" }
func (systemCategory) Message(code int32) string { return systemMessage(code) }
