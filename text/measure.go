// Package text implements the taffy.MeasureFunc boundary for text leaves.
//
// The layout algorithm treats content measurement as an external
// collaborator; this package supplies a production implementation backed by
// HarfBuzz shaping (go-text/typesetting), reporting min-content and
// max-content widths and wrapping-aware heights. Measurements are memoized
// in a sharded cache so repeated layout passes over a persistent tree do
// not re-shape unchanged text.
package text

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/mwr0707/taffy"
	"github.com/mwr0707/taffy/internal/cache"
)

// DefaultLineHeight is the line height factor applied when none is
// configured, as a multiple of the font size.
const DefaultLineHeight = 1.2

// Measurer measures text content for layout. It is safe for concurrent
// use: the parsed font.Font is read-only, per-call font.Face instances are
// cheap wrappers, and HarfbuzzShaper instances (which carry mutable
// buffers) are pooled.
type Measurer struct {
	// font is the parsed font, read-only and safe to share.
	font *font.Font

	// shaperPool pools HarfbuzzShaper instances; they are not safe for
	// concurrent use but are efficient to reuse across sequential calls.
	shaperPool sync.Pool

	// measurements memoizes shaped widths keyed by content and font size.
	measurements *cache.Cache[measureKey, measurement]

	lineHeight float32
}

type measureKey struct {
	content  string
	fontSize float32
}

// measurement holds the content-intrinsic widths of a piece of text.
type measurement struct {
	// minContent is the width of the widest unbreakable word.
	minContent float32
	// maxContent is the advance of the whole text laid out on one line.
	maxContent float32
}

// Option configures a Measurer during creation.
type Option func(*options)

type options struct {
	lineHeight    float32
	cacheCapacity int
}

// WithLineHeight sets the line height as a multiple of the font size.
// The default is DefaultLineHeight.
func WithLineHeight(factor float32) Option {
	return func(o *options) {
		o.lineHeight = factor
	}
}

// WithCacheCapacity sets the measurement cache capacity per shard.
// Zero or negative keeps the default.
func WithCacheCapacity(capacity int) Option {
	return func(o *options) {
		o.cacheCapacity = capacity
	}
}

// NewMeasurer parses TTF/OTF font data and returns a Measurer using it.
func NewMeasurer(fontData []byte, opts ...Option) (*Measurer, error) {
	o := options{lineHeight: DefaultLineHeight}
	for _, opt := range opts {
		opt(&o)
	}

	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		taffy.Logger().Warn("rejecting unparseable font data", "err", err)
		return nil, fmt.Errorf("text: parse font: %w", err)
	}

	return &Measurer{
		font: face.Font,
		shaperPool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
		measurements: cache.New[measureKey, measurement](o.cacheCapacity, hashMeasureKey),
		lineHeight:   o.lineHeight,
	}, nil
}

func hashMeasureKey(k measureKey) uint64 {
	return cache.StringHasher(k.content) ^ uint64(math.Float32bits(k.fontSize))
}

// Measure returns the min-content width (widest unbreakable word) and
// max-content width (single-line advance) of the content at the given
// font size.
func (m *Measurer) Measure(content string, fontSize float32) (minContent, maxContent float32) {
	key := measureKey{content: content, fontSize: fontSize}
	if cached, ok := m.measurements.Get(key); ok {
		return cached.minContent, cached.maxContent
	}

	var result measurement
	result.maxContent = m.advance(content, fontSize)
	for _, word := range strings.Fields(content) {
		result.minContent = max(result.minContent, m.advance(word, fontSize))
	}

	m.measurements.Set(key, result)
	return result.minContent, result.maxContent
}

// MeasureFunc returns a taffy.MeasureFunc measuring the given content.
// Known dimensions are honored verbatim; otherwise the width is the
// max-content width clamped into the available space (never below the
// min-content width), and the height follows from the number of wrapped
// lines at that width.
func (m *Measurer) MeasureFunc(content string, fontSize float32) taffy.MeasureFunc {
	return func(known, available taffy.Size[taffy.OptionFloat]) taffy.Size[float32] {
		minContent, maxContent := m.Measure(content, fontSize)

		width, hasKnownWidth := known.Width.Get()
		if !hasKnownWidth {
			width = maxContent
			if avail, ok := available.Width.Get(); ok {
				width = max(min(width, avail), minContent)
			}
		}

		height, hasKnownHeight := known.Height.Get()
		if !hasKnownHeight {
			lines := float32(1)
			if width > 0 && maxContent > width {
				lines = float32(math.Ceil(float64(maxContent / width)))
			}
			height = lines * m.lineHeight * fontSize
		}

		return taffy.Size[float32]{Width: width, Height: height}
	}
}

// advance shapes the text and returns its total advance width.
func (m *Measurer) advance(content string, fontSize float32) float32 {
	if content == "" {
		return 0
	}
	runes := []rune(content)

	// font.Face is not safe for concurrent use; font.NewFace is a cheap
	// wrapper around the shared read-only *Font.
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.font),
		Size:      floatToFixed(fontSize),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	shaper := m.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.shaperPool.Put(shaper)

	var total fixed.Int26_6
	for _, g := range output.Glyphs {
		total += g.XAdvance
	}
	return fixedToFloat(total)
}

// detectScript inspects the runes and returns the script of the first
// non-space character. For mixed-script text, callers should split runs
// by script before measuring.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a font size to 26.6 fixed point.
func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a 26.6 fixed point value to float32.
func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64.0
}
