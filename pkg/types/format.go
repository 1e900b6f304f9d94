package types

// Format classifies content for chunking dispatch
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatCode     Format = "code"
	FormatJSON     Format = "json"
	FormatText     Format = "text"
)

// Valid reports whether the format is one of the known classifications
func (f Format) Valid() bool {
	switch f {
	case FormatMarkdown, FormatCode, FormatJSON, FormatText:
		return true
	default:
		return false
	}
}
