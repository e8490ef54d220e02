package raster

import (
	"math"

	"github.com/gogpu/gg"
)

type segOp uint8

const (
	segMove segOp = iota
	segLine
	segCubic
	segClose
)

type point struct {
	x, y float64
}

// segment is one path verb. Cubic uses all three points, move and line
// only the first.
type segment struct {
	op  segOp
	pts [3]point
}

// path is the canvas-style current path. It is kept outside gg because
// gg clears its own path on every Fill and Stroke.
type path struct {
	segs   []segment
	cur    point
	start  point
	hasCur bool
}

func (p *path) reset() {
	p.segs = p.segs[:0]
	p.hasCur = false
}

func (p *path) empty() bool {
	return len(p.segs) == 0
}

func (p *path) moveTo(x, y float64) {
	p.segs = append(p.segs, segment{op: segMove, pts: [3]point{{x, y}}})
	p.cur = point{x, y}
	p.start = p.cur
	p.hasCur = true
}

// lineTo starts a subpath when there is no current point.
func (p *path) lineTo(x, y float64) {
	if !p.hasCur {
		p.moveTo(x, y)
		return
	}
	p.segs = append(p.segs, segment{op: segLine, pts: [3]point{{x, y}}})
	p.cur = point{x, y}
}

func (p *path) cubicTo(c1, c2, end point) {
	p.segs = append(p.segs, segment{op: segCubic, pts: [3]point{c1, c2, end}})
	p.cur = end
}

func (p *path) closePath() {
	if !p.hasCur {
		return
	}
	p.segs = append(p.segs, segment{op: segClose})
	p.cur = p.start
}

// maxArcStep is the largest angle covered by one cubic segment.
const maxArcStep = math.Pi / 2

// ellipse appends a clockwise elliptical arc from start to end, in
// radians, rotated by rot around (cx, cy). The start point is joined to
// the current point with a straight line, or begins a new subpath.
func (p *path) ellipse(cx, cy, rx, ry, rot, start, end float64) {
	sweep := arcSweep(start, end)
	sinR, cosR := math.Sincos(rot)

	at := func(ux, uy float64) point {
		x := rx * ux
		y := ry * uy
		return point{cx + x*cosR - y*sinR, cy + x*sinR + y*cosR}
	}

	s0, c0 := math.Sincos(start)
	first := at(c0, s0)
	if p.hasCur {
		p.lineTo(first.x, first.y)
	} else {
		p.moveTo(first.x, first.y)
	}
	if sweep == 0 {
		return
	}

	n := int(math.Ceil(sweep/maxArcStep - 1e-9))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	a1 := start
	for i := 0; i < n; i++ {
		a2 := a1 + step
		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)
		p.cubicTo(
			at(cos1-k*sin1, sin1+k*cos1),
			at(cos2+k*sin2, sin2-k*cos2),
			at(cos2, sin2),
		)
		a1 = a2
	}
}

// arcSweep returns the clockwise angle swept from start to end, capped
// at a full turn.
func arcSweep(start, end float64) float64 {
	sweep := end - start
	if sweep >= 2*math.Pi {
		return 2 * math.Pi
	}
	sweep = math.Mod(sweep, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return sweep
}

// replay traces the recorded path into dc, replacing whatever path dc
// currently holds.
func (p *path) replay(dc *gg.Context) {
	dc.ClearPath()
	for _, s := range p.segs {
		switch s.op {
		case segMove:
			dc.MoveTo(s.pts[0].x, s.pts[0].y)
		case segLine:
			dc.LineTo(s.pts[0].x, s.pts[0].y)
		case segCubic:
			dc.CubicTo(s.pts[0].x, s.pts[0].y, s.pts[1].x, s.pts[1].y, s.pts[2].x, s.pts[2].y)
		case segClose:
			dc.ClosePath()
		}
	}
}
