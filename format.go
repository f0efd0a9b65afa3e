package errdomain

import (
	"fmt"
	"strconv"
	"strings"
)

// PackedLen is the length of the packed text form "TTTTTTTT: CCCCCCCC".
const PackedLen = 18

const (
	packedSep   = ": "
	hexDigits   = "0123456789ABCDEF"
	leadingTrim = " \f\n\r\t\v"
	controlCut  = "\f\n\r\t\v"
)

// FormatCode renders code as 8 uppercase hex digits of its two's-complement
// representation followed by the signed decimal value, e.g. "00000010 (16)"
// or "FFFFFFFF (-1)".
func FormatCode(code int32) string {
	return fmt.Sprintf("%08X (%d)", uint32(code), code)
}

// FormatTag returns the registered name of tag's domain or, when the domain is
// not registered, tag as 8 uppercase hex digits.
func FormatTag(tag Tag) string {
	return defaultRegistry.FormatTag(tag)
}

// Format returns the human-readable "name: message" form of e using the
// default registry.
//
// Example:
//
//	errdomain.Format(errdomain.FromTag(0xDEADBEEF, 16)) // "DEADBEEF: 00000010 (16)"
func Format(e Error) string {
	return defaultRegistry.Format(e)
}

// Pack returns the fixed 18-character "TTTTTTTT: CCCCCCCC" form of e: the
// domain tag and the two's-complement code, each as 8 uppercase hex digits.
//
// Packed text does not depend on any registry. Parse re-resolves it later,
// possibly in another process that has the relevant categories registered.
func Pack(e Error) string {
	return fmt.Sprintf("%08X: %08X", uint32(e.tag), uint32(e.code))
}

// Unpack is the strict inverse of Pack. Surrounding whitespace is ignored;
// anything else that is not exactly a packed error is rejected.
func Unpack(text string) (Error, bool) {
	text = strings.TrimSpace(text)
	if len(text) != PackedLen || text[8:10] != packedSep {
		return Error{}, false
	}
	tag, ok := parseHex(text[:8])
	if !ok {
		return Error{}, false
	}
	code, ok := parseHex(text[10:])
	if !ok {
		return Error{}, false
	}
	return Error{tag: Tag(tag), code: int32(code)}, true
}

// Parse re-resolves packed text found at the start of text using the default
// registry. See Registry.Parse.
func Parse(text string) string {
	return defaultRegistry.Parse(text)
}

// ParseFields re-resolves a packed error split into its two fields using the
// default registry. See Registry.ParseFields.
func ParseFields(typeText, codeText string) string {
	return defaultRegistry.ParseFields(typeText, codeText)
}

// Name returns the name of e's domain as known to r.
func (r *Registry) Name(e Error) string {
	return r.FormatTag(e.tag)
}

// Message returns the message for e's code as known to r.
func (r *Registry) Message(e Error) string {
	if c, ok := r.Lookup(e.tag); ok {
		return c.Message(e.code)
	}
	return FormatCode(e.code)
}

// FormatTag returns the name of tag's domain as known to r, or its hex form.
func (r *Registry) FormatTag(tag Tag) string {
	if c, ok := r.Lookup(tag); ok {
		return c.Name()
	}
	return tag.Hex()
}

// Format returns "name: message" for e as known to r.
func (r *Registry) Format(e Error) string {
	return r.Name(e) + packedSep + r.Message(e)
}

// Parse interprets text as a packed error and re-renders it as "name: message".
//
// Leading whitespace is skipped, the text is cut at the first control
// character, and trailing spaces are dropped. Then:
//
//   - fewer than 18 characters remain, or the first 8 are not uppercase hex,
//     or they are not followed by ": ": the trimmed text is returned as is;
//   - the code field is not 8 uppercase hex digits: "{domain name}: {rest}";
//   - otherwise: Format of the decoded error.
//
// Characters after the 18th are ignored, so the human-readable form of an
// unregistered error ("DEADBEEF: 00000010 (16)") also parses. Parse never
// fails; text that is not a packed error comes back unchanged.
func (r *Registry) Parse(text string) string {
	text = strings.TrimLeft(text, leadingTrim)
	if len(text) < PackedLen {
		return text
	}
	if i := strings.IndexAny(text, controlCut); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimRight(text, " ")
	if len(text) < PackedLen {
		return text
	}

	tag, ok := parseHex(text[:8])
	if !ok || text[8:10] != packedSep {
		return text
	}
	code, ok := parseHex(text[10:])
	if !ok {
		return r.FormatTag(Tag(tag)) + packedSep + text[10:]
	}
	return r.Format(Error{tag: Tag(tag), code: int32(code)})
}

// ParseFields is Parse for a packed error whose domain and code arrive as
// separate fields, e.g. two log columns. Each field must start with 8
// uppercase hex digits; anything after them is ignored.
//
//   - both fields parse: Format of the decoded error;
//   - only typeText parses: "{domain name}: {codeText}";
//   - typeText does not parse: "{typeText}: {codeText}".
func (r *Registry) ParseFields(typeText, codeText string) string {
	tag, ok := parseHex(typeText)
	if !ok {
		return typeText + packedSep + codeText
	}
	code, ok := parseHex(codeText)
	if !ok {
		return r.FormatTag(Tag(tag)) + packedSep + codeText
	}
	return r.Format(Error{tag: Tag(tag), code: int32(code)})
}

// parseHex decodes the first 8 characters of s, which must be uppercase hex.
func parseHex(s string) (uint32, bool) {
	if len(s) < 8 {
		return 0, false
	}
	s = s[:8]
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(hexDigits, s[i]) < 0 {
			return 0, false
		}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
