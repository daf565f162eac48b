package zscroll

// GeometryInput bundles everything needed to lay out one bar.
type GeometryInput struct {
	// BarLength is the natural length of the bar along its axis.
	BarLength float64
	// Overlap is the space reserved for the other axis's bar. It is zero
	// unless that bar is visible and placed inside.
	Overlap float64

	ViewportLength float64
	ContentLength  float64
	MinSize        float64
}

// Geometry is the computed layout of one bar.
type Geometry struct {
	TrackLength   float64
	DraggerLength float64
	// Ratio is dragger travel per unit of content scroll.
	Ratio   float64
	Visible bool
}

// ComputeGeometry lays out a bar. Content that fits the viewport (including a
// zero-sized viewport) yields a hidden bar with ratio 1; the ratio division is
// never reached in that case.
func ComputeGeometry(in GeometryInput) Geometry {
	track := max(in.BarLength-in.Overlap, 0)
	g := Geometry{TrackLength: track, Ratio: 1}

	if in.ViewportLength <= 0 || in.ContentLength <= in.ViewportLength {
		g.DraggerLength = track
		return g
	}

	dragger := max(in.MinSize, track*(in.ViewportLength/in.ContentLength))
	g.DraggerLength = min(dragger, track)
	g.Ratio = (track - g.DraggerLength) / (in.ContentLength - in.ViewportLength)
	g.Visible = true
	return g
}

// maxOffset returns how far content of the given length can scroll.
func maxOffset(contentLength, viewportLength float64) float64 {
	return max(contentLength-viewportLength, 0)
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
