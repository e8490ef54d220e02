package raster

import (
	"math"
	"testing"
)

const eps = 1e-9

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestArcSweep(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       float64
	}{
		{"zero", 0, 0, 0},
		{"quarter", 0, math.Pi / 2, math.Pi / 2},
		{"full", 0, 2 * math.Pi, 2 * math.Pi},
		{"more than full", 0, 5 * math.Pi, 2 * math.Pi},
		{"negative wraps", math.Pi / 2, 0, 3 * math.Pi / 2},
		{"offset", math.Pi, 3 * math.Pi / 2, math.Pi / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := arcSweep(tt.start, tt.end); math.Abs(got-tt.want) > eps {
				t.Errorf("arcSweep(%v, %v) = %v, want %v", tt.start, tt.end, got, tt.want)
			}
		})
	}
}

func TestPath_LineToWithoutCurrentPointMoves(t *testing.T) {
	var p path
	p.lineTo(3, 4)

	if len(p.segs) != 1 || p.segs[0].op != segMove {
		t.Fatalf("segs = %+v, want a single move", p.segs)
	}
	if p.cur != (point{3, 4}) {
		t.Errorf("cur = %v, want (3, 4)", p.cur)
	}
}

func TestPath_ClosePathReturnsToStart(t *testing.T) {
	var p path
	p.closePath()
	if !p.empty() {
		t.Fatal("closePath without a subpath should record nothing")
	}

	p.moveTo(1, 1)
	p.lineTo(5, 1)
	p.lineTo(5, 5)
	p.closePath()

	if got := p.segs[len(p.segs)-1].op; got != segClose {
		t.Errorf("last op = %v, want segClose", got)
	}
	if p.cur != (point{1, 1}) {
		t.Errorf("cur after close = %v, want (1, 1)", p.cur)
	}
}

func TestPath_Reset(t *testing.T) {
	var p path
	p.moveTo(1, 1)
	p.lineTo(2, 2)
	p.reset()

	if !p.empty() || p.hasCur {
		t.Errorf("reset left segs=%d hasCur=%v", len(p.segs), p.hasCur)
	}
}

func TestPath_HalfCircle(t *testing.T) {
	var p path
	p.ellipse(0, 0, 10, 10, 0, 0, math.Pi)

	if len(p.segs) != 3 {
		t.Fatalf("len(segs) = %d, want move + 2 cubics", len(p.segs))
	}
	if p.segs[0].op != segMove {
		t.Errorf("first op = %v, want segMove", p.segs[0].op)
	}
	first := p.segs[0].pts[0]
	if !closeTo(first.x, 10) || !closeTo(first.y, 0) {
		t.Errorf("start = %v, want (10, 0)", first)
	}
	mid := p.segs[1].pts[2]
	if !closeTo(mid.x, 0) || !closeTo(mid.y, 10) {
		t.Errorf("quarter point = %v, want (0, 10)", mid)
	}
	end := p.segs[2].pts[2]
	if !closeTo(end.x, -10) || !closeTo(end.y, 0) {
		t.Errorf("end = %v, want (-10, 0)", end)
	}
}

func TestPath_FullCircleUsesFourCubics(t *testing.T) {
	var p path
	p.ellipse(5, 5, 3, 3, 0, 0, 2*math.Pi)

	cubics := 0
	for _, s := range p.segs {
		if s.op == segCubic {
			cubics++
		}
	}
	if cubics != 4 {
		t.Errorf("cubics = %d, want 4", cubics)
	}
	end := p.cur
	if !closeTo(end.x, 8) || !closeTo(end.y, 5) {
		t.Errorf("end = %v, want (8, 5)", end)
	}
}

func TestPath_CubicControlPointsOnCircle(t *testing.T) {
	var p path
	p.ellipse(0, 0, 1, 1, 0, 0, math.Pi/2)

	k := 4.0 / 3.0 * math.Tan(math.Pi/8)
	c := p.segs[1]
	if !closeTo(c.pts[0].x, 1) || !closeTo(c.pts[0].y, k) {
		t.Errorf("c1 = %v, want (1, %v)", c.pts[0], k)
	}
	if !closeTo(c.pts[1].x, k) || !closeTo(c.pts[1].y, 1) {
		t.Errorf("c2 = %v, want (%v, 1)", c.pts[1], k)
	}
}

func TestPath_RotatedEllipse(t *testing.T) {
	var p path
	p.ellipse(0, 0, 10, 5, math.Pi/2, 0, 0)

	if len(p.segs) != 1 {
		t.Fatalf("zero sweep should only place the start point, got %d segs", len(p.segs))
	}
	got := p.segs[0].pts[0]
	if !closeTo(got.x, 0) || !closeTo(got.y, 10) {
		t.Errorf("rotated start = %v, want (0, 10)", got)
	}
}

func TestPath_ArcConnectsToCurrentPoint(t *testing.T) {
	var p path
	p.moveTo(0, 0)
	p.ellipse(10, 10, 2, 2, 0, 0, math.Pi/2)

	if p.segs[1].op != segLine {
		t.Fatalf("second op = %v, want segLine", p.segs[1].op)
	}
	if got := p.segs[1].pts[0]; !closeTo(got.x, 12) || !closeTo(got.y, 10) {
		t.Errorf("connecting line ends at %v, want (12, 10)", got)
	}
}
