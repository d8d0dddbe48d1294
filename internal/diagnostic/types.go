package diagnostic

import (
	"fmt"
	"strings"
)

// Diagnostic codes.
const (
	CodePatternUnsupported = "pattern_unsupported"
	CodeDocsUnavailable    = "docs_unavailable"
)

// Diagnostics holds the info notes of one schema request. Nothing recorded
// here fails the request.
type Diagnostics struct {
	Infos []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Code is a unique identifier for this type of diagnostic.
	Code    string
	Message string
	// Type names the item class this relates to (if any).
	Type string
	// Field names the field this relates to (if any).
	Field string
}

func (d *Diagnostics) AddInfo(code, message, typeName, field string) {
	d.Infos = append(d.Infos, Diagnostic{Code: code, Message: message, Type: typeName, Field: field})
}

func (d *Diagnostics) Len() int { return len(d.Infos) }

// WithCode returns the diagnostics carrying code.
func (d *Diagnostics) WithCode(code string) []Diagnostic {
	var out []Diagnostic
	for _, diag := range d.Infos {
		if diag.Code == code {
			out = append(out, diag)
		}
	}

	return out
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Type != "" {
		prefix = append(prefix, "["+d.Type+"]")
	}

	if d.Field != "" {
		prefix = append(prefix, d.Field)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
