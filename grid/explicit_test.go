package grid

import (
	"testing"

	"github.com/mwr0707/taffy"
)

// stubCalc is a calc resolver for templates that contain no calc() values.
// The constant result makes accidental calc resolution visible in tests.
func stubCalc(uint64, float32) float32 { return 42.42 }

func TestExplicitTrackCount_NoRepeats(t *testing.T) {
	style := taffy.Style{
		Size: taffy.Size[taffy.Dimension]{
			Width:  taffy.DimLength(600),
			Height: taffy.DimLength(600),
		},
		TemplateColumns: []taffy.TemplateEntry{
			taffy.Single(taffy.Fr(1)),
			taffy.Single(taffy.Fr(1)),
		},
		TemplateRows: []taffy.TemplateEntry{
			taffy.Single(taffy.Fr(1)),
			taffy.Single(taffy.Fr(1)),
			taffy.Single(taffy.Fr(1)),
			taffy.Single(taffy.Fr(1)),
		},
	}
	inner := taffy.SomeSize(600, 600)

	if got := ExplicitTrackCount(&style, style.TemplateColumns, inner, stubCalc, taffy.Horizontal); got != 2 {
		t.Errorf("horizontal count = %d, want 2", got)
	}
	if got := ExplicitTrackCount(&style, style.TemplateRows, inner, stubCalc, taffy.Vertical); got != 4 {
		t.Errorf("vertical count = %d, want 4", got)
	}
}

func TestExplicitTrackCount(t *testing.T) {
	length := taffy.DimLength

	tests := []struct {
		name  string
		style taffy.Style
		inner taffy.Size[taffy.OptionFloat]
		axis  taffy.AbsoluteAxis
		want  int
	}{
		{
			name: "empty template",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(100)},
			},
			inner: taffy.SomeSize(100, 100),
			axis:  taffy.Horizontal,
			want:  0,
		},
		{
			name: "single track indefinite size",
			style: taffy.Style{
				TemplateColumns: []taffy.TemplateEntry{taffy.Single(taffy.Fixed(100))},
			},
			inner: taffy.NoneSize(),
			axis:  taffy.Horizontal,
			want:  1,
		},
		{
			name: "fixed count repetition",
			style: taffy.Style{
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Single(taffy.Fixed(20)),
					taffy.Repeat(taffy.RepeatCount(3), taffy.Fixed(40), taffy.Fixed(10)),
				},
			},
			inner: taffy.NoneSize(),
			axis:  taffy.Horizontal,
			want:  7,
		},
		{
			name: "repetition with empty track list is invalid",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Single(taffy.Fixed(40)),
					taffy.Repeat(taffy.RepeatCount(2)),
				},
			},
			inner: taffy.SomeSize(120, 120),
			axis:  taffy.Horizontal,
			want:  0,
		},
		{
			name: "two auto-repetitions are invalid",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(20)),
				},
			},
			inner: taffy.SomeSize(120, 120),
			axis:  taffy.Horizontal,
			want:  0,
		},
		{
			name: "auto-repetition mixed with flexible track is invalid",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Single(taffy.Fr(1)),
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(120, 120),
			axis:  taffy.Horizontal,
			want:  0,
		},
		{
			name: "auto-repetition of intrinsic-only tracks is invalid",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Auto()),
				},
			},
			inner: taffy.SomeSize(120, 120),
			axis:  taffy.Horizontal,
			want:  0,
		},
		{
			name: "auto-fill exact fit",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120), Height: length(80)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(120, 80),
			axis:  taffy.Horizontal,
			want:  3,
		},
		{
			name: "auto-fill non-exact fit floors",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(140), Height: length(90)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(140, 90),
			axis:  taffy.Horizontal,
			want:  3,
		},
		{
			name: "auto-fill min size exact fit",
			style: taffy.Style{
				MinSize: taffy.Size[taffy.Dimension]{Width: length(120), Height: length(80)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(120, 80),
			axis:  taffy.Horizontal,
			want:  3,
		},
		{
			name: "auto-fill min size non-exact fit ceils",
			style: taffy.Style{
				MinSize: taffy.Size[taffy.Dimension]{Width: length(140), Height: length(90)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(140, 90),
			axis:  taffy.Horizontal,
			want:  4,
		},
		{
			name: "auto-fill governed by max size floors",
			style: taffy.Style{
				MaxSize: taffy.Size[taffy.Dimension]{Width: length(140)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(140, 140),
			axis:  taffy.Horizontal,
			want:  3,
		},
		{
			name: "auto-fill multiple repeated tracks",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(140), Height: length(100)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40), taffy.Fixed(20)),
				},
			},
			inner: taffy.SomeSize(140, 100),
			axis:  taffy.Horizontal,
			want:  4, // 2 repetitions * 2 repeated tracks
		},
		{
			name: "auto-fill multiple repeated tracks vertical",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(140), Height: length(100)},
				TemplateRows: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(20), taffy.Fixed(10)),
				},
			},
			inner: taffy.SomeSize(140, 100),
			axis:  taffy.Vertical,
			want:  6, // 3 repetitions * 2 repeated tracks
		},
		{
			name: "auto-fill with gap",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(140), Height: length(100)},
				Gap:  taffy.Size[taffy.LengthPercentage]{Width: taffy.Length(20), Height: taffy.Length(20)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(140, 100),
			axis:  taffy.Horizontal,
			want:  2, // 2 tracks + 1 gap
		},
		{
			name: "auto-fill with gap vertical",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(140), Height: length(100)},
				Gap:  taffy.Size[taffy.LengthPercentage]{Width: taffy.Length(20), Height: taffy.Length(20)},
				TemplateRows: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(20)),
				},
			},
			inner: taffy.SomeSize(140, 100),
			axis:  taffy.Vertical,
			want:  3, // 3 tracks + 2 gaps
		},
		{
			name: "auto-fill without defined size repeats once",
			style: taffy.Style{
				Gap: taffy.Size[taffy.LengthPercentage]{Width: taffy.Length(20), Height: taffy.Length(20)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40), taffy.Pct(0.5), taffy.Fixed(20)),
				},
			},
			inner: taffy.NoneSize(),
			axis:  taffy.Horizontal,
			want:  3,
		},
		{
			name: "auto-fill mixed with non-repeated tracks",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(140), Height: length(100)},
				Gap:  taffy.Size[taffy.LengthPercentage]{Width: taffy.Length(20), Height: taffy.Length(20)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Single(taffy.Fixed(20)),
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(140, 100),
			axis:  taffy.Horizontal,
			want:  3, // 3 tracks + 2 gaps
		},
		{
			name: "auto-fill against padded content box",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120), Height: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(20)),
				},
				TemplateRows: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(20)),
				},
			},
			// Inner content-box size already has padding subtracted.
			inner: taffy.SomeSize(100, 80),
			axis:  taffy.Horizontal,
			want:  5,
		},
		{
			name: "auto-fit resolves like auto-fill",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFit, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(120, 120),
			axis:  taffy.Horizontal,
			want:  3,
		},
		{
			name: "auto-fill overflowing repetition floors at one",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(30)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(40)),
				},
			},
			inner: taffy.SomeSize(30, 30),
			axis:  taffy.Horizontal,
			want:  1,
		},
		{
			name: "auto-fill of zero-size tracks with zero gap clamps to one",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Fixed(0)),
				},
			},
			inner: taffy.SomeSize(120, 120),
			axis:  taffy.Horizontal,
			want:  1,
		},
		{
			name: "auto-fill of percent tracks",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(100)},
				TemplateColumns: []taffy.TemplateEntry{
					taffy.Repeat(taffy.AutoFill, taffy.Pct(0.25)),
				},
			},
			inner: taffy.SomeSize(100, 100),
			axis:  taffy.Horizontal,
			want:  4,
		},
		{
			name: "minmax uses the larger of min and max",
			style: taffy.Style{
				Size: taffy.Size[taffy.Dimension]{Width: length(120)},
				TemplateColumns: []taffy.TemplateEntry{
					// max 20 floored by min 40: each repetition occupies 40.
					taffy.Repeat(taffy.AutoFill,
						taffy.MinMax(taffy.MinFixed(taffy.Length(40)), taffy.MaxFixed(taffy.Length(20)))),
				},
			},
			inner: taffy.SomeSize(120, 120),
			axis:  taffy.Horizontal,
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			template := tt.style.GridTemplate(tt.axis)
			got := ExplicitTrackCount(&tt.style, template, tt.inner, stubCalc, tt.axis)
			if got != tt.want {
				t.Errorf("ExplicitTrackCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExplicitTrackCount_Calc(t *testing.T) {
	// calc() values resolve through the caller-supplied resolver; ids map
	// to caller-owned expression storage.
	const trackExpr, gapExpr = 1, 2
	resolver := func(id uint64, basis float32) float32 {
		switch id {
		case trackExpr:
			return 40 // calc(): 40px
		case gapExpr:
			return basis / 7 // calc(): one seventh of the reference size
		default:
			t.Fatalf("unexpected calc id %d", id)
			return 0
		}
	}

	style := taffy.Style{
		Size: taffy.Size[taffy.Dimension]{Width: taffy.DimLength(140)},
		Gap:  taffy.Size[taffy.LengthPercentage]{Width: taffy.Calc(gapExpr)},
		TemplateColumns: []taffy.TemplateEntry{
			taffy.Repeat(taffy.AutoFill,
				taffy.MinMax(taffy.MinFixed(taffy.Calc(trackExpr)), taffy.MaxFixed(taffy.Calc(trackExpr)))),
		},
	}

	// Gap resolves to 20: one repetition uses 40, each further one 60.
	got := ExplicitTrackCount(&style, style.TemplateColumns, taffy.SomeSize(140, 140), resolver, taffy.Horizontal)
	if got != 2 {
		t.Errorf("ExplicitTrackCount() = %d, want 2", got)
	}
}
