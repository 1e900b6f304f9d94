package types

import "fmt"

// Default chunk size bounds in characters. The defaults are tuned for
// feeding chunks to large-context consumers, not for embedding windows.
const (
	DefaultTargetSize = 100000
	DefaultMinSize    = 20000
	DefaultMaxSize    = 200000
)

// SizeBudget bounds chunk sizes in characters.
// TargetSize is the preferred size, MinSize the threshold below which a
// trailing chunk is merged back, MaxSize the hard upper limit.
type SizeBudget struct {
	TargetSize int
	MinSize    int
	MaxSize    int
}

// DefaultSizeBudget returns the standard chunk size bounds
func DefaultSizeBudget() SizeBudget {
	return SizeBudget{
		TargetSize: DefaultTargetSize,
		MinSize:    DefaultMinSize,
		MaxSize:    DefaultMaxSize,
	}
}

// Validate checks that the budget is internally consistent.
// All values must be positive and MinSize <= TargetSize <= MaxSize.
func (b SizeBudget) Validate() error {
	if b.TargetSize <= 0 || b.MinSize <= 0 || b.MaxSize <= 0 {
		return fmt.Errorf("size budget values must be positive (target=%d, min=%d, max=%d)",
			b.TargetSize, b.MinSize, b.MaxSize)
	}
	if b.MinSize > b.TargetSize {
		return fmt.Errorf("min size %d exceeds target size %d", b.MinSize, b.TargetSize)
	}
	if b.TargetSize > b.MaxSize {
		return fmt.Errorf("target size %d exceeds max size %d", b.TargetSize, b.MaxSize)
	}
	return nil
}
