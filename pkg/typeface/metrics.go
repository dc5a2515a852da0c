package typeface

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// families maps family name to the TTF data of each weight.
var families = map[string]map[Weight][]byte{
	"Go Mono": {
		Regular: gomono.TTF,
		Bold:    gomonobold.TTF,
	},
	"Go": {
		Regular: goregular.TTF,
		Medium:  gomedium.TTF,
		Bold:    gobold.TTF,
	},
	"Go Smallcaps": {
		Regular: gosmallcaps.TTF,
	},
}

// DPI at which sizes are interpreted; one point is one pixel.
const DPI = 72

// measureRune is the glyph whose advance defines a column.
const measureRune = '0'

type faceKey struct {
	family string
	weight Weight
}

// Metrics parses fonts lazily and caches character widths.
type Metrics struct {
	mu     sync.Mutex
	parsed map[faceKey]*opentype.Font
	widths map[Font]fixed.Int26_6
}

// NewMetrics returns an empty cache.
func NewMetrics() *Metrics {
	return &Metrics{
		parsed: map[faceKey]*opentype.Font{},
		widths: map[Font]fixed.Int26_6{},
	}
}

// CharWidth returns the unhinted advance of '0' in f, in pixels.
func (m *Metrics) CharWidth(f Font) (fixed.Int26_6, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if w, ok := m.widths[f]; ok {
		return w, nil
	}
	key := faceKey{family: f.Family, weight: f.Weight}
	otf, ok := m.parsed[key]
	if !ok {
		var err error
		otf, err = opentype.Parse(families[f.Family][f.Weight])
		if err != nil {
			return 0, fmt.Errorf("parse %s: %w", f, err)
		}
		m.parsed[key] = otf
	}
	face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: float64(f.Size), DPI: DPI, Hinting: font.HintingNone})
	if err != nil {
		return 0, fmt.Errorf("face %s: %w", f, err)
	}
	defer face.Close()
	adv, ok := face.GlyphAdvance(measureRune)
	if !ok || adv <= 0 {
		return 0, fmt.Errorf("font %s has no glyph for %q", f, measureRune)
	}
	m.widths[f] = adv
	return adv, nil
}

// Span returns how many terminal cells one column of f occupies when a cell
// holds exactly one column of base. It is at least 1.
func (m *Metrics) Span(f, base Font) (int, error) {
	w, err := m.CharWidth(f)
	if err != nil {
		return 1, err
	}
	bw, err := m.CharWidth(base)
	if err != nil {
		return 1, err
	}
	span := int((w + bw/2) / bw)
	if span < 1 {
		span = 1
	}
	return span, nil
}
