package errdomain

import (
	"github.com/jmgilman/go/errors"
)

// ErrorResponse is a flat, serializable description of an Error, resolved
// against the default registry at the time Describe is called.
type ErrorResponse struct {
	// Type is the domain tag as 8 uppercase hex digits.
	Type string `json:"type" yaml:"type"`

	// Code is the signed domain-specific code.
	Code int32 `json:"code" yaml:"code"`

	// Name is the registered domain name, or Type when unregistered.
	Name string `json:"name" yaml:"name"`

	// Message is the registered message, or FormatCode(Code) when unregistered.
	Message string `json:"message" yaml:"message"`
}

// Describe returns the ErrorResponse for e.
//
// Example:
//
//	w.Header().Set("Content-Type", "application/json")
//	json.NewEncoder(w).Encode(errdomain.Describe(e))
func Describe(e Error) *ErrorResponse {
	return &ErrorResponse{
		Type:    e.tag.Hex(),
		Code:    e.code,
		Name:    e.Name(),
		Message: e.Message(),
	}
}

// MarshalText implements encoding.TextMarshaler using the packed form, so
// encoding/json and gopkg.in/yaml.v3 encode an Error as "TTTTTTTT: CCCCCCCC".
func (e Error) MarshalText() ([]byte, error) {
	return []byte(Pack(e)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts exactly the
// packed form (see Unpack) and fails with CodeInvalidInput otherwise.
func (e *Error) UnmarshalText(text []byte) error {
	v, ok := Unpack(string(text))
	if !ok {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "invalid packed error %q", text),
			"expected", "TTTTTTTT: CCCCCCCC",
		)
	}
	*e = v
	return nil
}
