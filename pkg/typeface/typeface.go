// Package typeface describes the editor font and measures it with the Go
// font family so the ruler can place columns the way the text area does.
package typeface

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Weight is a font weight offered by the font dialog.
type Weight int

const (
	Regular Weight = iota
	Medium
	Bold
)

var weightNames = map[Weight]string{Regular: "Regular", Medium: "Medium", Bold: "Bold"}

func (w Weight) String() string {
	if n, ok := weightNames[w]; ok {
		return n
	}
	return fmt.Sprintf("Weight(%d)", int(w))
}

// ParseWeight accepts a weight name in any case.
func ParseWeight(s string) (Weight, error) {
	for w, n := range weightNames {
		if strings.EqualFold(n, strings.TrimSpace(s)) {
			return w, nil
		}
	}
	return Regular, fmt.Errorf("unknown font weight %q", s)
}

// Size limits accepted by the font dialog.
const (
	MinSize = 6
	MaxSize = 72
)

// Font is the (family, size, weight) setting applied to the text area.
type Font struct {
	Family string
	Size   int
	Weight Weight
}

// Default is the font used when no configuration overrides it.
func Default() Font {
	return Font{Family: "Go Mono", Size: 12, Weight: Regular}
}

func (f Font) String() string {
	if f.Weight == Regular {
		return fmt.Sprintf("%s %d", f.Family, f.Size)
	}
	return fmt.Sprintf("%s %d %s", f.Family, f.Size, f.Weight)
}

// ErrUnknownFamily is returned for families without a bundled face.
var ErrUnknownFamily = errors.New("unknown font family")

// Validate reports whether the family ships the requested weight and the
// size is in range.
func (f Font) Validate() error {
	weights, ok := families[f.Family]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownFamily, f.Family)
	}
	if _, ok := weights[f.Weight]; !ok {
		return fmt.Errorf("font family %q has no %s weight", f.Family, f.Weight)
	}
	if f.Size < MinSize || f.Size > MaxSize {
		return fmt.Errorf("font size %d out of range [%d,%d]", f.Size, MinSize, MaxSize)
	}
	return nil
}

// Families lists the available family names in display order.
func Families() []string {
	out := make([]string, 0, len(families))
	for name := range families {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Weights lists the weights a family ships, lightest first.
func Weights(family string) []Weight {
	var out []Weight
	for w := range families[family] {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
