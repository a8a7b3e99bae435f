package taffy

// Shorthand constructors for track sizing functions, mirroring the CSS
// track-size grammar. These are the intended way to build track templates:
//
//	style := taffy.Style{
//	    TemplateColumns: []taffy.TemplateEntry{
//	        taffy.Single(taffy.Fixed(20)),
//	        taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
//	    },
//	}

// Fixed returns a track sized to exactly the given length.
func Fixed(length float32) TrackSizing {
	lp := Length(length)
	return TrackSizing{Min: MinFixed(lp), Max: MaxFixed(lp)}
}

// Pct returns a track sized to a fraction of the container's size.
// The factor is a fraction (0.5 means 50%).
func Pct(factor float32) TrackSizing {
	lp := Percent(factor)
	return TrackSizing{Min: MinFixed(lp), Max: MaxFixed(lp)}
}

// Auto returns an auto-sized track. This is also the sizing of implicitly
// created tracks when no grid-auto-rows/columns definition is given.
func Auto() TrackSizing {
	return TrackSizing{}
}

// Fr returns a flexible track with the given fr factor.
// Flexible tracks have an automatic minimum.
func Fr(fraction float32) TrackSizing {
	return TrackSizing{Min: MinAuto(), Max: MaxFr(fraction)}
}

// MinContent returns a track sized to its items' min-content size.
func MinContent() TrackSizing {
	return TrackSizing{Min: MinMinContent(), Max: MaxMinContent()}
}

// MaxContent returns a track sized to its items' max-content size.
func MaxContent() TrackSizing {
	return TrackSizing{Min: MinMaxContent(), Max: MaxMaxContent()}
}

// FitContent returns a track sized by fit-content() with the given limit.
func FitContent(limit LengthPercentage) TrackSizing {
	return TrackSizing{Min: MinAuto(), Max: MaxFitContent(limit)}
}

// MinMax returns a track sized by minmax() with explicit minimum and
// maximum components.
func MinMax(min MinTrackSizingFunction, max MaxTrackSizingFunction) TrackSizing {
	return TrackSizing{Min: min, Max: max}
}
