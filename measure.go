package taffy

// MeasureFunc measures the content of a leaf node. The layout algorithm
// calls it when a node's size depends on its content rather than its style.
//
// knownDimensions carries any dimensions already fixed by styles or by the
// surrounding algorithm; a measure function must return those values
// unchanged where they are present. availableSpace is the space the content
// may occupy; an indefinite component means the content sizes itself
// (max-content measurement along that axis).
//
// Measure functions must be synchronous and side-effect-free. They may be
// invoked several times per layout pass with identical arguments; any
// caching is the implementation's own concern (see the text package for a
// cached implementation).
type MeasureFunc func(knownDimensions Size[OptionFloat], availableSpace Size[OptionFloat]) Size[float32]
