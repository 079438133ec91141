package selection

import (
	"fmt"

	"github.com/kbukum/kthmin/errors"
)

// Config configures a Selector.
type Config struct {
	Pivot string `yaml:"pivot" mapstructure:"pivot"`
}

// ApplyDefaults sets the default pivot policy.
func (c *Config) ApplyDefaults() {
	if c.Pivot == "" {
		c.Pivot = string(PivotLast)
	}
}

// Validate checks the pivot policy name.
func (c *Config) Validate() error {
	if _, err := ParsePivot(c.Pivot); err != nil {
		return fmt.Errorf("selection.pivot: %w", err)
	}
	return nil
}

// Selector runs quickselect with a fixed pivot policy. It holds no per-call
// state and is safe for concurrent use on distinct sequences.
type Selector struct {
	pivot Pivot
}

// New creates a Selector from config.
func New(cfg Config) (*Selector, error) {
	p, err := ParsePivot(cfg.Pivot)
	if err != nil {
		return nil, errors.InvalidInput("selection.pivot", err.Error())
	}
	return &Selector{pivot: p}, nil
}

// WithPivot creates a Selector using p.
func WithPivot(p Pivot) *Selector {
	return &Selector{pivot: p}
}

// Pivot returns the configured policy.
func (s *Selector) Pivot() Pivot { return s.pivot }

var defaultSelector = &Selector{pivot: PivotLast}

// Select returns the k-th smallest element of seq using the last-element
// pivot. See (*Selector).Select.
func Select(seq []int64, k int) (int64, error) {
	return defaultSelector.Select(seq, k)
}

// Select returns the k-th smallest (1-based) element of seq, reordering seq
// in place. It fails with EMPTY_INPUT for an empty sequence and with
// RANK_OUT_OF_RANGE when k is outside [1, len(seq)].
func (s *Selector) Select(seq []int64, k int) (int64, error) {
	if len(seq) == 0 {
		return 0, errors.EmptyInput()
	}
	if k < 1 || k > len(seq) {
		return 0, errors.RankOutOfRange(k, len(seq))
	}

	target := k - 1
	left, right := 0, len(seq)-1
	for left < right {
		if pi := s.pivot.choose(seq, left, right); pi != right {
			seq[pi], seq[right] = seq[right], seq[pi]
		}
		i := partition(seq, left, right)
		switch {
		case target == i:
			return seq[i], nil
		case target < i:
			right = i - 1
		default:
			left = i + 1
		}
	}
	return seq[target], nil
}

// partition moves every element <= seq[right] in front of it and returns
// the pivot's final index. Elements after the pivot are > pivot.
func partition(seq []int64, left, right int) int {
	pivot := seq[right]
	i := left
	for j := left; j < right; j++ {
		if seq[j] <= pivot {
			seq[i], seq[j] = seq[j], seq[i]
			i++
		}
	}
	seq[i], seq[right] = seq[right], seq[i]
	return i
}
