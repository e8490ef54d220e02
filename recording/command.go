package recording

import (
	"strconv"
	"strings"

	"github.com/antixdev/diagram"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one diagram.Surface method.
type CommandType uint8

const (
	// Style commands
	CmdSetFillStyle   CommandType = iota // Set fill color
	CmdSetStrokeStyle                    // Set stroke color
	CmdSetLineWidth                      // Set stroke line width
	CmdSetLineDash                       // Set dash pattern
	CmdSetFont                           // Set text font

	// Path commands
	CmdBeginPath // Discard the current path
	CmdMoveTo    // Start a subpath
	CmdLineTo    // Straight segment
	CmdArc       // Circular arc
	CmdEllipse   // Elliptical arc
	CmdClosePath // Close the subpath

	// Drawing commands
	CmdFill       // Fill the current path
	CmdStroke     // Stroke the current path
	CmdFillRect   // Fill a rectangle
	CmdStrokeRect // Stroke a rectangle
	CmdFillText   // Fill text
	CmdStrokeText // Stroke text
)

var commandTypeNames = [...]string{
	CmdSetFillStyle:   "SetFillStyle",
	CmdSetStrokeStyle: "SetStrokeStyle",
	CmdSetLineWidth:   "SetLineWidth",
	CmdSetLineDash:    "SetLineDash",
	CmdSetFont:        "SetFont",
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdArc:            "Arc",
	CmdEllipse:        "Ellipse",
	CmdClosePath:      "ClosePath",
	CmdFill:           "Fill",
	CmdStroke:         "Stroke",
	CmdFillRect:       "FillRect",
	CmdStrokeRect:     "StrokeRect",
	CmdFillText:       "FillText",
	CmdStrokeText:     "StrokeText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
// String renders the command in canvas notation, e.g. "fillRect(0, 0, 8, 8)".
type Command interface {
	Type() CommandType
	String() string
	apply(s diagram.Surface)
}

// --------------------------------------------------------------------------
// Style Commands
// --------------------------------------------------------------------------

// SetFillStyleCommand sets the fill color.
type SetFillStyleCommand struct {
	Color diagram.Color
}

// Type implements Command.
func (SetFillStyleCommand) Type() CommandType { return CmdSetFillStyle }

func (c SetFillStyleCommand) String() string {
	return "fillStyle = " + c.Color.CSS()
}

func (c SetFillStyleCommand) apply(s diagram.Surface) {
	s.SetFillStyle(c.Color)
}

// SetStrokeStyleCommand sets the stroke color.
type SetStrokeStyleCommand struct {
	Color diagram.Color
}

// Type implements Command.
func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }

func (c SetStrokeStyleCommand) String() string {
	return "strokeStyle = " + c.Color.CSS()
}

func (c SetStrokeStyleCommand) apply(s diagram.Surface) {
	s.SetStrokeStyle(c.Color)
}

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct {
	Width float64
}

// Type implements Command.
func (SetLineWidthCommand) Type() CommandType { return CmdSetLineWidth }

func (c SetLineWidthCommand) String() string {
	return "lineWidth = " + num(c.Width)
}

func (c SetLineWidthCommand) apply(s diagram.Surface) {
	s.SetLineWidth(c.Width)
}

// SetLineDashCommand sets the dash pattern. An empty Pattern is solid.
type SetLineDashCommand struct {
	Pattern []float64
}

// Type implements Command.
func (SetLineDashCommand) Type() CommandType { return CmdSetLineDash }

func (c SetLineDashCommand) String() string {
	return "setLineDash([" + nums(c.Pattern...) + "])"
}

func (c SetLineDashCommand) apply(s diagram.Surface) {
	s.SetLineDash(c.Pattern)
}

// SetFontCommand sets the text font.
type SetFontCommand struct {
	Font diagram.Font
}

// Type implements Command.
func (SetFontCommand) Type() CommandType { return CmdSetFont }

func (c SetFontCommand) String() string {
	return "font = " + c.Font.CSS()
}

func (c SetFontCommand) apply(s diagram.Surface) {
	s.SetFont(c.Font)
}

// --------------------------------------------------------------------------
// Path Commands
// --------------------------------------------------------------------------

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

func (BeginPathCommand) String() string {
	return "beginPath()"
}

func (BeginPathCommand) apply(s diagram.Surface) {
	s.BeginPath()
}

// MoveToCommand starts a new subpath at (X, Y).
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

func (c MoveToCommand) String() string {
	return call("moveTo", c.X, c.Y)
}

func (c MoveToCommand) apply(s diagram.Surface) {
	s.MoveTo(c.X, c.Y)
}

// LineToCommand adds a straight segment to (X, Y).
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

func (c LineToCommand) String() string {
	return call("lineTo", c.X, c.Y)
}

func (c LineToCommand) apply(s diagram.Surface) {
	s.LineTo(c.X, c.Y)
}

// ArcCommand adds a circular arc.
type ArcCommand struct {
	X, Y, Radius float64
	Start, End   float64
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

func (c ArcCommand) String() string {
	return call("arc", c.X, c.Y, c.Radius, c.Start, c.End)
}

func (c ArcCommand) apply(s diagram.Surface) {
	s.Arc(c.X, c.Y, c.Radius, c.Start, c.End)
}

// EllipseCommand adds an elliptical arc.
type EllipseCommand struct {
	X, Y             float64
	RadiusX, RadiusY float64
	Rotation         float64
	Start, End       float64
}

// Type implements Command.
func (EllipseCommand) Type() CommandType { return CmdEllipse }

func (c EllipseCommand) String() string {
	return call("ellipse", c.X, c.Y, c.RadiusX, c.RadiusY, c.Rotation, c.Start, c.End)
}

func (c EllipseCommand) apply(s diagram.Surface) {
	s.Ellipse(c.X, c.Y, c.RadiusX, c.RadiusY, c.Rotation, c.Start, c.End)
}

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

func (ClosePathCommand) String() string {
	return "closePath()"
}

func (ClosePathCommand) apply(s diagram.Surface) {
	s.ClosePath()
}

// --------------------------------------------------------------------------
// Drawing Commands
// --------------------------------------------------------------------------

// FillCommand fills the current path.
type FillCommand struct{}

// Type implements Command.
func (FillCommand) Type() CommandType { return CmdFill }

func (FillCommand) String() string {
	return "fill()"
}

func (FillCommand) apply(s diagram.Surface) {
	s.Fill()
}

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }

func (StrokeCommand) String() string {
	return "stroke()"
}

func (StrokeCommand) apply(s diagram.Surface) {
	s.Stroke()
}

// FillRectCommand fills a rectangle.
type FillRectCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (FillRectCommand) Type() CommandType { return CmdFillRect }

func (c FillRectCommand) String() string {
	return call("fillRect", c.X, c.Y, c.Width, c.Height)
}

func (c FillRectCommand) apply(s diagram.Surface) {
	s.FillRect(c.X, c.Y, c.Width, c.Height)
}

// StrokeRectCommand strokes a rectangle.
type StrokeRectCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (StrokeRectCommand) Type() CommandType { return CmdStrokeRect }

func (c StrokeRectCommand) String() string {
	return call("strokeRect", c.X, c.Y, c.Width, c.Height)
}

func (c StrokeRectCommand) apply(s diagram.Surface) {
	s.StrokeRect(c.X, c.Y, c.Width, c.Height)
}

// FillTextCommand fills Text with its baseline at Y.
type FillTextCommand struct {
	Text string
	X, Y float64
}

// Type implements Command.
func (FillTextCommand) Type() CommandType { return CmdFillText }

func (c FillTextCommand) String() string {
	return "fillText(" + strconv.Quote(c.Text) + ", " + nums(c.X, c.Y) + ")"
}

func (c FillTextCommand) apply(s diagram.Surface) {
	s.FillText(c.Text, c.X, c.Y)
}

// StrokeTextCommand strokes Text with its baseline at Y.
type StrokeTextCommand struct {
	Text string
	X, Y float64
}

// Type implements Command.
func (StrokeTextCommand) Type() CommandType { return CmdStrokeText }

func (c StrokeTextCommand) String() string {
	return "strokeText(" + strconv.Quote(c.Text) + ", " + nums(c.X, c.Y) + ")"
}

func (c StrokeTextCommand) apply(s diagram.Surface) {
	s.StrokeText(c.Text, c.X, c.Y)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func nums(vs ...float64) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = num(v)
	}
	return strings.Join(parts, ", ")
}

func call(name string, args ...float64) string {
	return name + "(" + nums(args...) + ")"
}
