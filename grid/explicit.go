package grid

import (
	"math"

	"github.com/mwr0707/taffy"
)

// ExplicitTrackCount computes the number of explicit tracks the given track
// template generates in one axis, resolving at most one auto-fill/auto-fit
// repetition against the container's available space.
//
// template is the explicit track template for the axis (the same slice the
// style's GridTemplate reports); innerContainerSize is the container's
// content-box size per axis where definite. The style is consulted to
// decide the repetition rounding policy: when the governing size is a
// preferred or maximum size the repetition count is the largest that does
// not overflow (floor), when only a minimum size is definite it is the
// smallest that covers it (ceil). resolveCalc resolves calc() style values
// and may be nil when the style contains none.
//
// Invalid templates — a repetition with an empty track list, more than one
// auto-repetition, or an auto-repetition combined with tracks that have no
// fixed sizing component — are not rejected but degraded: the axis is
// treated as having zero explicit tracks, matching the CSS policy of
// ignoring invalid declarations.
func ExplicitTrackCount(
	style taffy.GridContainerStyle,
	template []taffy.TemplateEntry,
	innerContainerSize taffy.Size[taffy.OptionFloat],
	resolveCalc taffy.CalcResolver,
	axis taffy.AbsoluteAxis,
) int {
	// A template with no entries trivially generates zero explicit tracks.
	if len(template) == 0 {
		return 0
	}

	// A repetition with no tracks renders the whole template invalid.
	for _, entry := range template {
		if entry.IsRepeat() && len(entry.RepeatTracks()) == 0 {
			taffy.Logger().Debug("ignoring track template with empty repetition",
				"axis", axis)
			return 0
		}
	}

	// Count the tracks generated by single definitions and fixed-count
	// repetitions, find the (at most one) auto-repetition, and check
	// whether every sizing function in the template has a fixed component.
	var (
		fixedCount            int
		autoRepetitions       int
		autoRepeatTracks      []taffy.TrackSizing
		allHaveFixedComponent = true
	)
	for _, entry := range template {
		switch {
		case !entry.IsRepeat():
			fixedCount++
			if !entry.SingleTrack().HasFixedComponent() {
				allHaveFixedComponent = false
			}
		case entry.Repetition().Kind == taffy.RepetitionCount:
			fixedCount += entry.Repetition().Count * len(entry.RepeatTracks())
			for _, ts := range entry.RepeatTracks() {
				if !ts.HasFixedComponent() {
					allHaveFixedComponent = false
				}
			}
		default:
			autoRepetitions++
			autoRepeatTracks = entry.RepeatTracks()
			for _, ts := range entry.RepeatTracks() {
				if !ts.HasFixedComponent() {
					allHaveFixedComponent = false
				}
			}
		}
	}

	if autoRepetitions == 0 {
		return fixedCount
	}

	// With an auto-repetition present the template is only valid if it is
	// unique and every track in the axis has a fixed sizing component.
	if autoRepetitions > 1 || !allHaveFixedComponent {
		taffy.Logger().Debug("ignoring invalid track template",
			"axis", axis, "autoRepetitions", autoRepetitions)
		return 0
	}

	repLen := len(autoRepeatTracks)
	innerSize := innerContainerSize.Axis(axis)

	// Whether the governing size is a preferred/maximum size (floor policy)
	// or only a minimum (ceil policy) is read from the container's style.
	sizeIsMaximum := style.GridSize().Axis(axis).MaybeResolve(innerSize, resolveCalc).IsSome() ||
		style.GridMaxSize().Axis(axis).MaybeResolve(innerSize, resolveCalc).IsSome()

	// With an indefinite container size the track list repeats exactly once.
	repetitions := 1
	if available, ok := innerSize.Get(); ok {
		basis := taffy.Some(available)

		nonRepeatingSpace := float32(0)
		for _, entry := range template {
			switch {
			case !entry.IsRepeat():
				nonRepeatingSpace += trackDefiniteValue(entry.SingleTrack(), basis, resolveCalc)
			case entry.Repetition().Kind == taffy.RepetitionCount:
				sum := float32(0)
				for _, ts := range entry.RepeatTracks() {
					sum += trackDefiniteValue(ts, basis, resolveCalc)
				}
				nonRepeatingSpace += sum * float32(entry.Repetition().Count)
			}
		}
		gapSize := style.GridGap().Axis(axis).ResolveOrZero(basis, resolveCalc)

		perRepetitionSpace := float32(0)
		for _, ts := range autoRepeatTracks {
			perRepetitionSpace += trackDefiniteValue(ts, basis, resolveCalc)
		}

		// The first repetition is special-cased because the number of gaps
		// it introduces depends on the non-repeating tracks in the template.
		firstRepetitionSpace := nonRepeatingSpace + perRepetitionSpace +
			float32(max(0, fixedCount+repLen-1))*gapSize

		// Space each additional repetition occupies, trailing gap included.
		perRepetitionUsed := perRepetitionSpace + float32(repLen)*gapSize

		switch {
		case firstRepetitionSpace > available:
			// A single repetition already overflows the container; the
			// repetition count is floored at 1.
			repetitions = 1
		case perRepetitionUsed <= 0:
			// Degenerate: every repeated track resolves to zero and the gap
			// is zero, so the repetition count is unconstrained. Clamp to 1.
			taffy.Logger().Debug("degenerate zero-size auto-repetition",
				"axis", axis)
			repetitions = 1
		default:
			extra := (available - firstRepetitionSpace) / perRepetitionUsed
			if sizeIsMaximum {
				repetitions = int(math.Floor(float64(extra))) + 1
			} else {
				repetitions = int(math.Ceil(float64(extra))) + 1
			}
		}
	}

	return fixedCount + repLen*repetitions
}

// trackDefiniteValue treats a track as its max sizing function if that is
// definite or its min sizing function otherwise, flooring the max by the
// min when both are definite. The template validity check guarantees one of
// the two resolves here; a track where neither does contributes zero.
func trackDefiniteValue(ts taffy.TrackSizing, basis taffy.OptionFloat, calc taffy.CalcResolver) float32 {
	maxValue, okMax := ts.Max.DefiniteValue(basis, calc).Get()
	minValue, okMin := ts.Min.DefiniteValue(basis, calc).Get()
	switch {
	case okMax && okMin:
		return max(maxValue, minValue)
	case okMax:
		return maxValue
	default:
		return minValue
	}
}
