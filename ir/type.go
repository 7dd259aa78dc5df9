package ir

import "fmt"

type Type int

const (
	RootType Type = iota
	CodeCellType
	MarkdownCellType
	RawCellType
	SourceType
	MarkdownType
	ParsedMarkdownType
	ParsedHTMLType
	RawTextType
	StreamType
	DisplayDataType
	ExecuteResultType
	ErrorType
	OpaqueType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		RootType:           "Root",
		CodeCellType:       "CodeCell",
		MarkdownCellType:   "MarkdownCell",
		RawCellType:        "RawCell",
		SourceType:         "Source",
		MarkdownType:       "Markdown",
		ParsedMarkdownType: "ParsedMarkdown",
		ParsedHTMLType:     "ParsedHTML",
		RawTextType:        "RawText",
		StreamType:         "Stream",
		DisplayDataType:    "DisplayData",
		ExecuteResultType:  "ExecuteResult",
		ErrorType:          "Error",
		OpaqueType:         "Opaque",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Root":           RootType,
		"CodeCell":       CodeCellType,
		"MarkdownCell":   MarkdownCellType,
		"RawCell":        RawCellType,
		"Source":         SourceType,
		"Markdown":       MarkdownType,
		"ParsedMarkdown": ParsedMarkdownType,
		"ParsedHTML":     ParsedHTMLType,
		"RawText":        RawTextType,
		"Stream":         StreamType,
		"DisplayData":    DisplayDataType,
		"ExecuteResult":  ExecuteResultType,
		"Error":          ErrorType,
		"Opaque":         OpaqueType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		RootType,
		CodeCellType,
		MarkdownCellType,
		RawCellType,
		SourceType,
		MarkdownType,
		ParsedMarkdownType,
		ParsedHTMLType,
		RawTextType,
		StreamType,
		DisplayDataType,
		ExecuteResultType,
		ErrorType,
		OpaqueType,
	}
}

func (t Type) IsCell() bool {
	switch t {
	case CodeCellType, MarkdownCellType, RawCellType:
		return true
	default:
		return false
	}
}

func (t Type) IsOutput() bool {
	switch t {
	case StreamType, DisplayDataType, ExecuteResultType, ErrorType:
		return true
	default:
		return false
	}
}
