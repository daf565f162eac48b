package zscroll

import "testing"

func TestComputeGeometry(t *testing.T) {
	tests := []struct {
		name string
		in   GeometryInput
		want Geometry
	}{
		{
			name: "min size wins",
			in:   GeometryInput{BarLength: 100, ViewportLength: 100, ContentLength: 500, MinSize: 50},
			want: Geometry{TrackLength: 100, DraggerLength: 50, Ratio: 0.125, Visible: true},
		},
		{
			name: "proportional",
			in:   GeometryInput{BarLength: 200, ViewportLength: 200, ContentLength: 1000, MinSize: 1},
			want: Geometry{TrackLength: 200, DraggerLength: 40, Ratio: 0.2, Visible: true},
		},
		{
			name: "overlap shortens the track",
			in:   GeometryInput{BarLength: 17, Overlap: 1, ViewportLength: 16, ContentLength: 64, MinSize: 1},
			want: Geometry{TrackLength: 16, DraggerLength: 4, Ratio: 0.25, Visible: true},
		},
		{
			name: "content fits",
			in:   GeometryInput{BarLength: 50, ViewportLength: 50, ContentLength: 50, MinSize: 1},
			want: Geometry{TrackLength: 50, DraggerLength: 50, Ratio: 1},
		},
		{
			name: "zero viewport",
			in:   GeometryInput{BarLength: 0, ViewportLength: 0, ContentLength: 50, MinSize: 1},
			want: Geometry{Ratio: 1},
		},
		{
			name: "min size larger than track",
			in:   GeometryInput{BarLength: 10, ViewportLength: 10, ContentLength: 100, MinSize: 30},
			want: Geometry{TrackLength: 10, DraggerLength: 10, Ratio: 0, Visible: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeGeometry(tt.in); got != tt.want {
				t.Errorf("ComputeGeometry = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDraggerPositionFollowsRatio(t *testing.T) {
	container := &fakeContainer{
		overflow:  [2]Overflow{OverflowHidden, OverflowAuto},
		viewport:  [2]float64{10, 100},
		content:   [2]float64{10, 500},
		bar:       [2]float64{10, 100},
		thickness: 1,
	}
	cfg := jumpingConfig()
	cfg.MinSize = 50
	c, rec := newTestController(t, container, cfg, nil)

	if !c.scroll(80, AxisY) {
		t.Fatal("scroll rejected")
	}
	if rec.dragger[AxisY] != 10 {
		t.Errorf("dragger position = %v, want 10", rec.dragger[AxisY])
	}
}
