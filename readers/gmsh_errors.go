package readers

import "fmt"

// FormatErrorKind enumerates the fatal failure modes of the MSH decoder.
type FormatErrorKind int

const (
	MissingSection FormatErrorKind = iota
	UnsupportedVersion
	UnsupportedEncoding
	MalformedNodeSection
	MalformedElementSection
	UnknownElementType
)

func (k FormatErrorKind) String() string {
	return [...]string{
		"missing section",
		"unsupported version",
		"unsupported encoding",
		"malformed node section",
		"malformed element section",
		"unknown element type",
	}[k]
}

// FormatError is a fatal decoding error. When the failure is detected at a
// known stream position, Line holds the 1-based line number; for
// UnknownElementType, Code holds the offending Gmsh element type number.
type FormatError struct {
	Kind FormatErrorKind
	Line int
	Code int
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	s := e.Kind.String()
	if e.Kind == UnknownElementType {
		s = fmt.Sprintf("%s %d", s, e.Code)
	}
	if e.Msg != "" {
		s = fmt.Sprintf("%s: %s", s, e.Msg)
	}
	if e.Line > 0 {
		s = fmt.Sprintf("%s (line %d)", s, e.Line)
	}
	if e.Err != nil {
		s = fmt.Sprintf("%s: %v", s, e.Err)
	}
	return s
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// WarningKind enumerates the non-fatal advisories the decoder can emit.
type WarningKind int

const (
	NodeTagRangeMismatch WarningKind = iota
	ElementTagRangeMismatch
)

func (k WarningKind) String() string {
	return [...]string{
		"node tag range mismatch",
		"element tag range mismatch",
	}[k]
}

// TagRange is a closed [Min, Max] tag interval.
type TagRange struct {
	Min, Max int
}

// Warning records a section header whose declared tag range disagrees with
// the tags actually decoded. Parsing continues; the header values are
// advisory and some producers emit them incorrectly.
type Warning struct {
	Kind     WarningKind
	Declared TagRange
	Observed TagRange
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: header declares (%d/%d), decoded (%d/%d)",
		w.Kind, w.Declared.Min, w.Declared.Max, w.Observed.Min, w.Observed.Max)
}
