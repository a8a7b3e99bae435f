package taffy

// CalcResolver resolves an opaque calc() expression to a concrete value.
// The id identifies the expression in caller-owned storage; basis is the
// reference size that percentages inside the expression resolve against.
//
// Resolvers must be synchronous and side-effect-free: the layout
// computations may invoke them multiple times with the same arguments and
// perform no memoization of their own.
type CalcResolver func(id uint64, basis float32) float32

type lengthPercentageKind uint8

const (
	lpLength lengthPercentageKind = iota
	lpPercent
	lpCalc
)

// LengthPercentage is a style value that is either an absolute length,
// a percentage of some reference size, or an opaque calc() expression.
// The zero value is a length of zero.
type LengthPercentage struct {
	kind   lengthPercentageKind
	value  float32
	calcID uint64
}

// Length returns an absolute LengthPercentage value.
func Length(value float32) LengthPercentage {
	return LengthPercentage{kind: lpLength, value: value}
}

// Percent returns a percentage LengthPercentage value.
// The factor is a fraction (0.5 means 50%), not a 0-100 percentage.
func Percent(factor float32) LengthPercentage {
	return LengthPercentage{kind: lpPercent, value: factor}
}

// Calc returns a LengthPercentage referencing the calc() expression with the
// given id. Resolving it requires a CalcResolver that knows the id.
func Calc(id uint64) LengthPercentage {
	return LengthPercentage{kind: lpCalc, calcID: id}
}

// MaybeResolve resolves the value against an optional reference size.
// Absolute lengths always resolve. Percentages and calc() expressions
// resolve only when the reference size is definite.
func (lp LengthPercentage) MaybeResolve(basis OptionFloat, calc CalcResolver) OptionFloat {
	switch lp.kind {
	case lpLength:
		return Some(lp.value)
	case lpPercent:
		if b, ok := basis.Get(); ok {
			return Some(lp.value * b)
		}
		return None()
	case lpCalc:
		if b, ok := basis.Get(); ok && calc != nil {
			return Some(calc(lp.calcID, b))
		}
		return None()
	default:
		return None()
	}
}

// ResolveOrZero resolves the value against an optional reference size,
// treating an unresolvable value as zero.
func (lp LengthPercentage) ResolveOrZero(basis OptionFloat, calc CalcResolver) float32 {
	return lp.MaybeResolve(basis, calc).ValueOr(0)
}

type dimensionKind uint8

const (
	dimAuto dimensionKind = iota
	dimLength
	dimPercent
	dimCalc
)

// Dimension is a style size value: an absolute length, a percentage,
// auto, or a calc() expression. The zero value is auto, matching the
// CSS initial value for size properties.
type Dimension struct {
	kind   dimensionKind
	value  float32
	calcID uint64
}

// DimAuto returns the auto Dimension.
func DimAuto() Dimension { return Dimension{} }

// DimLength returns an absolute length Dimension.
func DimLength(value float32) Dimension {
	return Dimension{kind: dimLength, value: value}
}

// DimPercent returns a percentage Dimension. The factor is a fraction.
func DimPercent(factor float32) Dimension {
	return Dimension{kind: dimPercent, value: factor}
}

// DimCalc returns a Dimension referencing a calc() expression.
func DimCalc(id uint64) Dimension {
	return Dimension{kind: dimCalc, calcID: id}
}

// IsAuto reports whether the dimension is auto.
func (d Dimension) IsAuto() bool { return d.kind == dimAuto }

// MaybeResolve resolves the dimension against an optional reference size.
// Auto never resolves; percentages and calc() expressions resolve only when
// the reference size is definite.
func (d Dimension) MaybeResolve(basis OptionFloat, calc CalcResolver) OptionFloat {
	switch d.kind {
	case dimLength:
		return Some(d.value)
	case dimPercent:
		if b, ok := basis.Get(); ok {
			return Some(d.value * b)
		}
		return None()
	case dimCalc:
		if b, ok := basis.Get(); ok && calc != nil {
			return Some(calc(d.calcID, b))
		}
		return None()
	default:
		return None()
	}
}

// MinSizingKind discriminates MinTrackSizingFunction variants.
type MinSizingKind uint8

const (
	// MinSizingAuto sizes the track by the automatic minimum.
	MinSizingAuto MinSizingKind = iota
	// MinSizingFixed sizes the track by a length, percentage or calc() value.
	MinSizingFixed
	// MinSizingMinContent sizes the track by its items' min-content size.
	MinSizingMinContent
	// MinSizingMaxContent sizes the track by its items' max-content size.
	MinSizingMaxContent
)

// MinTrackSizingFunction is the minimum component of a track sizing
// function. The zero value is auto.
type MinTrackSizingFunction struct {
	kind   MinSizingKind
	length LengthPercentage
}

// MinAuto returns the auto minimum sizing function.
func MinAuto() MinTrackSizingFunction { return MinTrackSizingFunction{} }

// MinFixed returns a fixed minimum sizing function.
func MinFixed(lp LengthPercentage) MinTrackSizingFunction {
	return MinTrackSizingFunction{kind: MinSizingFixed, length: lp}
}

// MinMinContent returns the min-content minimum sizing function.
func MinMinContent() MinTrackSizingFunction {
	return MinTrackSizingFunction{kind: MinSizingMinContent}
}

// MinMaxContent returns the max-content minimum sizing function.
func MinMaxContent() MinTrackSizingFunction {
	return MinTrackSizingFunction{kind: MinSizingMaxContent}
}

// Kind returns the variant of the sizing function.
func (f MinTrackSizingFunction) Kind() MinSizingKind { return f.kind }

// Value returns the fixed value of the sizing function.
// Only meaningful when Kind is MinSizingFixed.
func (f MinTrackSizingFunction) Value() LengthPercentage { return f.length }

// HasFixedComponent reports whether the function is a length, percentage or
// calc() value (as opposed to auto or an intrinsic keyword).
func (f MinTrackSizingFunction) HasFixedComponent() bool {
	return f.kind == MinSizingFixed
}

// DefiniteValue resolves the function to a concrete value where possible,
// given an optional reference size. Intrinsic keywords and auto are never
// definite; percentages are definite only against a definite reference.
func (f MinTrackSizingFunction) DefiniteValue(basis OptionFloat, calc CalcResolver) OptionFloat {
	if f.kind == MinSizingFixed {
		return f.length.MaybeResolve(basis, calc)
	}
	return None()
}

// MaxSizingKind discriminates MaxTrackSizingFunction variants.
type MaxSizingKind uint8

const (
	// MaxSizingAuto sizes the track automatically.
	MaxSizingAuto MaxSizingKind = iota
	// MaxSizingFixed sizes the track by a length, percentage or calc() value.
	MaxSizingFixed
	// MaxSizingMinContent sizes the track by its items' min-content size.
	MaxSizingMinContent
	// MaxSizingMaxContent sizes the track by its items' max-content size.
	MaxSizingMaxContent
	// MaxSizingFitContent clamps the track to a fit-content limit.
	MaxSizingFitContent
	// MaxSizingFraction sizes the track by a share of leftover space (fr).
	MaxSizingFraction
)

// MaxTrackSizingFunction is the maximum component of a track sizing
// function. The zero value is auto.
type MaxTrackSizingFunction struct {
	kind     MaxSizingKind
	length   LengthPercentage
	fraction float32
}

// MaxAuto returns the auto maximum sizing function.
func MaxAuto() MaxTrackSizingFunction { return MaxTrackSizingFunction{} }

// MaxFixed returns a fixed maximum sizing function.
func MaxFixed(lp LengthPercentage) MaxTrackSizingFunction {
	return MaxTrackSizingFunction{kind: MaxSizingFixed, length: lp}
}

// MaxMinContent returns the min-content maximum sizing function.
func MaxMinContent() MaxTrackSizingFunction {
	return MaxTrackSizingFunction{kind: MaxSizingMinContent}
}

// MaxMaxContent returns the max-content maximum sizing function.
func MaxMaxContent() MaxTrackSizingFunction {
	return MaxTrackSizingFunction{kind: MaxSizingMaxContent}
}

// MaxFitContent returns a fit-content maximum sizing function with the
// given limit.
func MaxFitContent(limit LengthPercentage) MaxTrackSizingFunction {
	return MaxTrackSizingFunction{kind: MaxSizingFitContent, length: limit}
}

// MaxFr returns a flexible (fr) maximum sizing function.
func MaxFr(fraction float32) MaxTrackSizingFunction {
	return MaxTrackSizingFunction{kind: MaxSizingFraction, fraction: fraction}
}

// Kind returns the variant of the sizing function.
func (f MaxTrackSizingFunction) Kind() MaxSizingKind { return f.kind }

// Value returns the fixed value or fit-content limit of the sizing function.
// Only meaningful when Kind is MaxSizingFixed or MaxSizingFitContent.
func (f MaxTrackSizingFunction) Value() LengthPercentage { return f.length }

// FractionValue returns the fr factor of the sizing function.
// Only meaningful when Kind is MaxSizingFraction.
func (f MaxTrackSizingFunction) FractionValue() float32 { return f.fraction }

// HasFixedComponent reports whether the function is a length, percentage or
// calc() value. Fit-content limits and fr factors do not count: they depend
// on content or leftover space.
func (f MaxTrackSizingFunction) HasFixedComponent() bool {
	return f.kind == MaxSizingFixed
}

// DefiniteValue resolves the function to a concrete value where possible,
// given an optional reference size.
func (f MaxTrackSizingFunction) DefiniteValue(basis OptionFloat, calc CalcResolver) OptionFloat {
	if f.kind == MaxSizingFixed {
		return f.length.MaybeResolve(basis, calc)
	}
	return None()
}

// TrackSizing is the sizing function of a single (non-repeated) grid track:
// a minimum and a maximum component, as produced by the CSS minmax()
// notation. Single-value track sizes use the same value for both.
// The zero value is auto, the sizing of implicitly created tracks.
type TrackSizing struct {
	Min MinTrackSizingFunction
	Max MaxTrackSizingFunction
}

// HasFixedComponent reports whether either component is a length,
// percentage, or calc() value. Track templates combining an auto-repetition
// with tracks that have no fixed component are invalid.
func (ts TrackSizing) HasFixedComponent() bool {
	return ts.Min.HasFixedComponent() || ts.Max.HasFixedComponent()
}

// RepetitionKind discriminates track template repetition variants.
type RepetitionKind uint8

const (
	// RepetitionCount repeats the track list a fixed number of times.
	RepetitionCount RepetitionKind = iota
	// RepetitionAutoFill repeats as many times as fit the container.
	RepetitionAutoFill
	// RepetitionAutoFit is auto-fill with unoccupied tracks collapsed.
	RepetitionAutoFit
)

// Repetition describes how a repeat() template entry repeats its track
// list: a fixed count, auto-fill, or auto-fit.
type Repetition struct {
	Kind  RepetitionKind
	Count int // repetition count when Kind is RepetitionCount
}

// RepeatCount returns a fixed-count repetition.
func RepeatCount(n int) Repetition {
	return Repetition{Kind: RepetitionCount, Count: n}
}

// AutoFill and AutoFit are the auto-repetition variants. The number of
// repetitions is computed from available space rather than stated directly.
var (
	AutoFill = Repetition{Kind: RepetitionAutoFill}
	AutoFit  = Repetition{Kind: RepetitionAutoFit}
)

// IsAuto reports whether the repetition count is computed from available
// space (auto-fill or auto-fit).
func (r Repetition) IsAuto() bool {
	return r.Kind == RepetitionAutoFill || r.Kind == RepetitionAutoFit
}

// TemplateEntry is one component of a grid-template-rows/columns track
// list: either a single track sizing function or a repeat() of a list of
// them. Construct entries with Single and Repeat.
type TemplateEntry struct {
	isRepeat   bool
	single     TrackSizing
	repetition Repetition
	tracks     []TrackSizing
}

// Single returns a template entry declaring exactly one track.
func Single(track TrackSizing) TemplateEntry {
	return TemplateEntry{single: track}
}

// Repeat returns a repeat() template entry repeating the given track list.
// A repetition with an empty track list renders the whole template invalid.
func Repeat(rep Repetition, tracks ...TrackSizing) TemplateEntry {
	return TemplateEntry{isRepeat: true, repetition: rep, tracks: tracks}
}

// IsRepeat reports whether the entry is a repeat().
func (e TemplateEntry) IsRepeat() bool { return e.isRepeat }

// IsAutoRepetition reports whether the entry is an auto-fill or auto-fit
// repeat().
func (e TemplateEntry) IsAutoRepetition() bool {
	return e.isRepeat && e.repetition.IsAuto()
}

// SingleTrack returns the track declared by a non-repeat entry.
func (e TemplateEntry) SingleTrack() TrackSizing { return e.single }

// Repetition returns the repetition of a repeat entry.
func (e TemplateEntry) Repetition() Repetition { return e.repetition }

// RepeatTracks returns the repeated track list of a repeat entry.
func (e TemplateEntry) RepeatTracks() []TrackSizing { return e.tracks }

// GridContainerStyle is the style-reading capability a grid container
// exposes to the track generation functions. All values are raw style
// values; resolving them to concrete numbers requires a reference size and,
// for calc() values, a CalcResolver.
type GridContainerStyle interface {
	// GridSize is the preferred size of the container.
	GridSize() Size[Dimension]
	// GridMinSize is the minimum size of the container.
	GridMinSize() Size[Dimension]
	// GridMaxSize is the maximum size of the container.
	GridMaxSize() Size[Dimension]
	// GridGap is the inter-track spacing per axis.
	GridGap() Size[LengthPercentage]
	// GridTemplate is the explicit track template for the given axis
	// (grid-template-columns for Horizontal, grid-template-rows for
	// Vertical).
	GridTemplate(axis AbsoluteAxis) []TemplateEntry
	// GridAutoTracks is the implicit track definition cycle for the given
	// axis (grid-auto-columns / grid-auto-rows).
	GridAutoTracks(axis AbsoluteAxis) []TrackSizing
}

// Style is a concrete GridContainerStyle with exported fields.
// The zero value has auto sizes, zero gaps, and empty track templates.
type Style struct {
	Size    Size[Dimension]
	MinSize Size[Dimension]
	MaxSize Size[Dimension]
	Gap     Size[LengthPercentage]

	TemplateRows    []TemplateEntry
	TemplateColumns []TemplateEntry
	AutoRows        []TrackSizing
	AutoColumns     []TrackSizing
}

// GridSize implements GridContainerStyle.
func (s *Style) GridSize() Size[Dimension] { return s.Size }

// GridMinSize implements GridContainerStyle.
func (s *Style) GridMinSize() Size[Dimension] { return s.MinSize }

// GridMaxSize implements GridContainerStyle.
func (s *Style) GridMaxSize() Size[Dimension] { return s.MaxSize }

// GridGap implements GridContainerStyle.
func (s *Style) GridGap() Size[LengthPercentage] { return s.Gap }

// GridTemplate implements GridContainerStyle.
func (s *Style) GridTemplate(axis AbsoluteAxis) []TemplateEntry {
	if axis == Horizontal {
		return s.TemplateColumns
	}
	return s.TemplateRows
}

// GridAutoTracks implements GridContainerStyle.
func (s *Style) GridAutoTracks(axis AbsoluteAxis) []TrackSizing {
	if axis == Horizontal {
		return s.AutoColumns
	}
	return s.AutoRows
}
