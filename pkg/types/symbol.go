package types

// Symbol is a named code construct reported by a boundary provider.
// Kind is an open vocabulary: the native Go provider emits "function",
// "method", "struct", "interface", "type", "const", and "var"; external
// providers report tree-sitter kinds such as "class" and "impl".
type Symbol struct {
	Name      string
	Kind      string
	Signature string
	StartLine int // 1-indexed, inclusive
	EndLine   int // 1-indexed, inclusive
	Exported  bool
}

// Validate checks basic symbol integrity
func (s *Symbol) Validate() error {
	if s.Name == "" {
		return ErrEmptySymbolName
	}
	if s.StartLine < 1 || s.EndLine < s.StartLine {
		return ErrInvalidSymbolRange
	}
	return nil
}
