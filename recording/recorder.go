package recording

import (
	"io"
	"strings"

	"github.com/antixdev/diagram"
)

// DefaultAscentRatio is the ascent reported by MeasureAscent as a fraction
// of the font height, unless overridden with SetAscentRatio.
const DefaultAscentRatio = 0.7

// Recorder is a diagram.Surface that captures every call as a Command
// instead of drawing. The recorded commands can be inspected, printed or
// played back onto another surface.
//
// Example:
//
//	rec := recording.NewRecorder()
//	d := diagram.New(rec, 0, 0, 100, 100)
//	d.FillRect(10, 10, 20, 20, "")
//	fmt.Println(rec)
//	// fillStyle = #563
//	// fillRect(10, 10, 20, 20)
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands    []Command
	font        diagram.Font
	ascentRatio float64
}

var _ Backend = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands:    make([]Command, 0, 64),
		ascentRatio: DefaultAscentRatio,
	}
}

// SetAscentRatio changes the value MeasureAscent reports, as a fraction
// of the current font height.
func (r *Recorder) SetAscentRatio(ratio float64) {
	r.ascentRatio = ratio
}

// Commands returns the recorded commands in call order.
// The slice is owned by the Recorder until the next Reset.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands. The current font is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recorded commands onto dst in order.
func (r *Recorder) Playback(dst diagram.Surface) {
	diagram.Logger().Debug("recording: playback", "commands", len(r.commands))
	for _, c := range r.commands {
		c.apply(dst)
	}
}

// String returns the recorded commands one per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for i, c := range r.commands {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// WriteTo writes the listing followed by a newline.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, r.String()+"\n")
	return int64(n), err
}

// Close drops the recorded commands.
func (r *Recorder) Close() error {
	r.Reset()
	return nil
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// SetFillStyle implements diagram.Surface.
func (r *Recorder) SetFillStyle(c diagram.Color) {
	r.record(SetFillStyleCommand{Color: c})
}

// SetStrokeStyle implements diagram.Surface.
func (r *Recorder) SetStrokeStyle(c diagram.Color) {
	r.record(SetStrokeStyleCommand{Color: c})
}

// SetLineWidth implements diagram.Surface.
func (r *Recorder) SetLineWidth(width float64) {
	r.record(SetLineWidthCommand{Width: width})
}

// SetLineDash implements diagram.Surface. The pattern is copied.
func (r *Recorder) SetLineDash(pattern []float64) {
	p := make([]float64, len(pattern))
	copy(p, pattern)
	r.record(SetLineDashCommand{Pattern: p})
}

// BeginPath implements diagram.Surface.
func (r *Recorder) BeginPath() {
	r.record(BeginPathCommand{})
}

// MoveTo implements diagram.Surface.
func (r *Recorder) MoveTo(x, y float64) {
	r.record(MoveToCommand{X: x, Y: y})
}

// LineTo implements diagram.Surface.
func (r *Recorder) LineTo(x, y float64) {
	r.record(LineToCommand{X: x, Y: y})
}

// Arc implements diagram.Surface.
func (r *Recorder) Arc(x, y, radius, start, end float64) {
	r.record(ArcCommand{X: x, Y: y, Radius: radius, Start: start, End: end})
}

// Ellipse implements diagram.Surface.
func (r *Recorder) Ellipse(x, y, radiusX, radiusY, rotation, start, end float64) {
	r.record(EllipseCommand{
		X: x, Y: y,
		RadiusX: radiusX, RadiusY: radiusY,
		Rotation: rotation,
		Start:    start, End: end,
	})
}

// ClosePath implements diagram.Surface.
func (r *Recorder) ClosePath() {
	r.record(ClosePathCommand{})
}

// Fill implements diagram.Surface.
func (r *Recorder) Fill() {
	r.record(FillCommand{})
}

// Stroke implements diagram.Surface.
func (r *Recorder) Stroke() {
	r.record(StrokeCommand{})
}

// FillRect implements diagram.Surface.
func (r *Recorder) FillRect(x, y, width, height float64) {
	r.record(FillRectCommand{X: x, Y: y, Width: width, Height: height})
}

// StrokeRect implements diagram.Surface.
func (r *Recorder) StrokeRect(x, y, width, height float64) {
	r.record(StrokeRectCommand{X: x, Y: y, Width: width, Height: height})
}

// SetFont implements diagram.Surface.
func (r *Recorder) SetFont(f diagram.Font) {
	r.font = f
	r.record(SetFontCommand{Font: f})
}

// MeasureAscent implements diagram.Surface. It is a query and is not
// recorded.
func (r *Recorder) MeasureAscent(string) float64 {
	return r.font.Height * r.ascentRatio
}

// FillText implements diagram.Surface.
func (r *Recorder) FillText(s string, x, y float64) {
	r.record(FillTextCommand{Text: s, X: x, Y: y})
}

// StrokeText implements diagram.Surface.
func (r *Recorder) StrokeText(s string, x, y float64) {
	r.record(StrokeTextCommand{Text: s, X: x, Y: y})
}
