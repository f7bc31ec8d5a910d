// Package prize picks the revealed prize from a weighted table.
// Draws are local and carry no fairness guarantee.
package prize

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyTable    = errors.New("prize table is empty")
	ErrInvalidWeight = errors.New("prize weight must be a positive finite number")
	ErrMissingName   = errors.New("prize name is required")
)

// Prize is one entry of the table
type Prize struct {
	Rank   int     `yaml:"rank"`
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
}

// Label returns the display text, e.g. "1st: Hot spring trip"
func (p Prize) Label() string {
	return fmt.Sprintf("%s: %s", Ordinal(p.Rank), p.Name)
}

// Table is a validated weighted prize list
type Table struct {
	prizes []Prize
	total  float64
}

// DefaultPrizes is the table used when the config has none
func DefaultPrizes() []Prize {
	return []Prize{
		{Rank: 1, Name: "Hot spring trip", Weight: 1},
		{Rank: 2, Name: "Premium beef", Weight: 4},
		{Rank: 3, Name: "Rice cooker", Weight: 10},
		{Rank: 4, Name: "Gift card", Weight: 25},
		{Rank: 5, Name: "Tissue box", Weight: 60},
	}
}

// NewTable validates prizes and builds a table
func NewTable(prizes []Prize) (*Table, error) {
	if len(prizes) == 0 {
		return nil, ErrEmptyTable
	}

	t := &Table{prizes: make([]Prize, len(prizes))}
	for i, p := range prizes {
		if p.Name == "" {
			return nil, fmt.Errorf("prize %d: %w", i, ErrMissingName)
		}
		if math.IsNaN(p.Weight) || math.IsInf(p.Weight, 0) || p.Weight <= 0 {
			return nil, fmt.Errorf("prize %q: %w", p.Name, ErrInvalidWeight)
		}
		t.prizes[i] = p
		t.total += p.Weight
	}
	return t, nil
}

// Draw picks one prize with probability proportional to its weight
func (t *Table) Draw(rng RandomSource) Prize {
	if rng == nil {
		rng = DefaultRNG()
	}

	target := rng.Float64() * t.total
	acc := 0.0
	for _, p := range t.prizes {
		acc += p.Weight
		if target < acc {
			return p
		}
	}
	// Float rounding can leave target == total
	return t.prizes[len(t.prizes)-1]
}

// Prizes returns a copy of the entries
func (t *Table) Prizes() []Prize {
	out := make([]Prize, len(t.prizes))
	copy(out, t.prizes)
	return out
}

// Probability returns the chance of drawing the entry at index i
func (t *Table) Probability(i int) float64 {
	if i < 0 || i >= len(t.prizes) {
		return 0
	}
	return t.prizes[i].Weight / t.total
}

// Ordinal formats a rank as 1st, 2nd, 3rd, 4th, ...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
