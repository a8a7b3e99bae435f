// Package taffy provides CSS-like layout geometry primitives for Go.
//
// # Overview
//
// taffy computes concrete sizes and positions for trees of styled boxes
// following the CSS flexbox and grid layout models. This module focuses on
// the grid track generation subsystem: resolving how many explicit tracks a
// grid container's template declares (including auto-fill/auto-fit
// repetitions) and materializing the ordered, gutter-interleaved track list
// consumed by the rest of the grid sizing algorithm.
//
// # Quick Start
//
//	import (
//	    "github.com/mwr0707/taffy"
//	    "github.com/mwr0707/taffy/grid"
//	)
//
//	style := taffy.Style{
//	    Size:            taffy.Size[taffy.Dimension]{Width: taffy.DimLength(140), Height: taffy.DimAuto()},
//	    TemplateColumns: []taffy.TemplateEntry{taffy.Repeat(taffy.AutoFill, taffy.Fixed(40))},
//	}
//
//	count := grid.ExplicitTrackCount(&style, style.TemplateColumns,
//	    taffy.SomeSize(140, 0), nil, taffy.Horizontal)
//
//	var tracks []grid.GridTrack
//	grid.InitializeTracks(&tracks,
//	    grid.TrackCounts{Explicit: count},
//	    style.TemplateColumns, nil, taffy.Length(0),
//	    func(int) bool { return true })
//
// # Architecture
//
// The module is organized into:
//   - Root package: style values (sizing functions, track templates),
//     geometry primitives, and the boundary types connecting to a
//     surrounding layout engine (CalcResolver, MeasureFunc).
//   - grid: explicit track count resolution and track list materialization.
//   - text: a text measurer implementing the MeasureFunc boundary via
//     HarfBuzz shaping (go-text/typesetting).
//
// # Purity and Concurrency
//
// The grid computations are pure: they hold no state across calls, perform
// no I/O, and are safe to run concurrently for independent axes and nodes.
// The only mutable state is the caller-owned track buffer that
// grid.InitializeTracks clears and refills in place, so repeated layout
// passes over a long-lived tree amortize allocations to zero.
package taffy

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
