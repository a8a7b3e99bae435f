// Package grid implements grid track generation: resolving the number of
// explicit tracks a grid container's template declares and materializing
// the ordered, gutter-interleaved track list consumed by the grid sizing
// algorithm.
//
// Both entry points are pure with respect to shared state. ExplicitTrackCount
// takes no mutable state at all; InitializeTracks mutates exactly one
// caller-supplied buffer. Distinct nodes and axes use distinct buffers and
// may be computed in parallel with no additional synchronization.
package grid

import (
	"slices"

	"github.com/mwr0707/taffy"
)

// TrackKind discriminates the cells of a materialized track list.
type TrackKind uint8

const (
	// KindTrack is a real grid track.
	KindTrack TrackKind = iota
	// KindGutter is a synthetic track representing inter-track spacing.
	KindGutter
)

// String returns the string representation of the track kind.
func (k TrackKind) String() string {
	switch k {
	case KindTrack:
		return "Track"
	case KindGutter:
		return "Gutter"
	default:
		return "Unknown"
	}
}

// GridTrack is one cell of the per-axis track list produced by
// InitializeTracks: either a real track or a gutter, with the sizing
// functions the track sizing algorithm will size it by.
type GridTrack struct {
	Kind TrackKind

	MinSizingFunction taffy.MinTrackSizingFunction
	MaxSizingFunction taffy.MaxTrackSizingFunction

	// Collapsed tracks and gutters contribute zero size and are excluded
	// from alignment and justification spacing by later sizing phases.
	Collapsed bool
}

// newTrack returns a real track with the given sizing function.
func newTrack(ts taffy.TrackSizing) GridTrack {
	return GridTrack{Kind: KindTrack, MinSizingFunction: ts.Min, MaxSizingFunction: ts.Max}
}

// newGutter returns a gutter track sized to the given gap.
func newGutter(gap taffy.LengthPercentage) GridTrack {
	return GridTrack{
		Kind:              KindGutter,
		MinSizingFunction: taffy.MinFixed(gap),
		MaxSizingFunction: taffy.MaxFixed(gap),
	}
}

// Collapse marks the track as collapsed and resets its sizing functions to
// a fixed zero length, so it contributes nothing downstream.
func (t *GridTrack) Collapse() {
	t.Collapsed = true
	t.MinSizingFunction = taffy.MinFixed(taffy.Length(0))
	t.MaxSizingFunction = taffy.MaxFixed(taffy.Length(0))
}

// TrackCounts holds the number of tracks a grid container has in one axis.
// Implicit counts come from item placement: NegativeImplicit tracks sit
// before the explicit grid, PositiveImplicit tracks after it.
type TrackCounts struct {
	NegativeImplicit int
	Explicit         int
	PositiveImplicit int
}

// Len returns the total number of tracks.
func (c TrackCounts) Len() int {
	return c.NegativeImplicit + c.Explicit + c.PositiveImplicit
}

// InitializeTracks materializes the full ordered track list for one axis
// into the caller-owned buffer, which is cleared and refilled in place.
// Reusing the same buffer across layout passes amortizes allocation.
//
// counts.Explicit must be the count previously produced by
// ExplicitTrackCount for the same template and container context; the
// template itself is not re-validated here. An invalid template has already
// been degraded to an explicit count of zero, in which case the template is
// ignored entirely.
//
// autoTracks is the implicit track definition cycle (grid-auto-rows/columns
// for the axis); when empty, implicit tracks are auto-sized. trackHasItems
// reports whether at least one item is placed in the explicit track at the
// given index; it is only consulted for auto-fit repetitions and may be nil,
// in which case auto-fit tracks are treated as empty and collapse.
//
// The produced list always has length 2*counts.Len()+1: a gutter before and
// after every track, with the outermost two entries collapsed since they
// represent the grid boundary rather than real gutters.
func InitializeTracks(
	tracks *[]GridTrack,
	counts TrackCounts,
	template []taffy.TemplateEntry,
	autoTracks []taffy.TrackSizing,
	gap taffy.LengthPercentage,
	trackHasItems func(index int) bool,
) {
	// Clear the buffer (keeping capacity from previous passes), reserve
	// space for all tracks ahead of time, and push the initial gutter.
	*tracks = slices.Grow((*tracks)[:0], counts.Len()*2+1)
	*tracks = append(*tracks, newGutter(gap))

	// Negative implicit tracks cycle the auto track definitions starting at
	// an offset chosen so the track nearest the explicit grid is the last
	// entry of the cycle, as if the pattern extended backward from the
	// explicit grid's start.
	if counts.NegativeImplicit > 0 {
		offset := 0
		if len(autoTracks) > 0 {
			offset = len(autoTracks) - counts.NegativeImplicit%len(autoTracks)
		}
		appendImplicitTracks(tracks, counts.NegativeImplicit, autoTracks, offset, gap)
	}

	currentTrackIndex := counts.NegativeImplicit

	// An explicit check against the count (rather than the template being
	// non-empty) is required here because a count of zero can result from
	// the template being invalid, in which case it must be ignored.
	if counts.Explicit > 0 {
		for _, entry := range template {
			switch {
			case !entry.IsRepeat():
				*tracks = append(*tracks, newTrack(entry.SingleTrack()), newGutter(gap))
				currentTrackIndex++

			case entry.Repetition().Kind == taffy.RepetitionCount:
				list := entry.RepeatTracks()
				if len(list) == 0 {
					continue
				}
				for i := 0; i < entry.Repetition().Count*len(list); i++ {
					*tracks = append(*tracks, newTrack(list[i%len(list)]), newGutter(gap))
					currentTrackIndex++
				}

			default: // auto-fill / auto-fit
				list := entry.RepeatTracks()
				if len(list) == 0 {
					continue
				}
				// The explicit count minus one slot per other template entry
				// is the number of tracks the auto-repetition generated (only
				// one auto-repetition per axis is ever valid).
				occurrences := counts.Explicit - (len(template) - 1)
				collapsible := entry.Repetition().Kind == taffy.RepetitionAutoFit
				for i := 0; i < occurrences; i++ {
					track := newTrack(list[i%len(list)])
					gutter := newGutter(gap)

					// Auto-fit tracks that contain no items are collapsed.
					if collapsible && (trackHasItems == nil || !trackHasItems(currentTrackIndex)) {
						track.Collapse()
						gutter.Collapse()
					}

					*tracks = append(*tracks, track, gutter)
					currentTrackIndex++
				}
			}
		}
	}

	// Positive implicit tracks cycle the auto track definitions from the
	// start of the cycle.
	appendImplicitTracks(tracks, counts.PositiveImplicit, autoTracks, 0, gap)

	// The outermost entries represent the grid boundary, not real gutters.
	(*tracks)[0].Collapse()
	(*tracks)[len(*tracks)-1].Collapse()
}

// appendImplicitTracks emits count implicit tracks, each followed by a
// gutter, cycling the auto track definitions by index arithmetic from the
// given offset. With no definitions, implicit tracks are auto-sized.
func appendImplicitTracks(
	tracks *[]GridTrack,
	count int,
	autoTracks []taffy.TrackSizing,
	offset int,
	gap taffy.LengthPercentage,
) {
	for i := 0; i < count; i++ {
		def := taffy.Auto()
		if len(autoTracks) > 0 {
			def = autoTracks[(offset+i)%len(autoTracks)]
		}
		*tracks = append(*tracks, newTrack(def), newGutter(gap))
	}
}
