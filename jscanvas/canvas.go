//go:build js && wasm

package jscanvas

import (
	"strconv"
	"syscall/js"

	"github.com/antixdev/diagram"
	"github.com/antixdev/diagram/input"
)

// zIndex keeps the canvas above the rest of the page.
const zIndex = "1000000000"

// Canvas is a Diagram drawn on a DOM canvas element.
type Canvas struct {
	*diagram.Diagram

	document js.Value
	element  js.Value

	// cleanfuncs run in reverse order on Close.
	cleanfuncs []func()
}

// New creates a width x height canvas at page position (x, y), prepends
// it to the document body and starts forwarding events to its input
// state.
func New(x, y, width, height int, opts ...diagram.Option) *Canvas {
	doc := js.Global().Get("document")
	el := doc.Call("createElement", "canvas")
	el.Set("width", width)
	el.Set("height", height)
	style := el.Get("style")
	style.Set("position", "absolute")
	style.Set("left", strconv.Itoa(x)+"px")
	style.Set("top", strconv.Itoa(y)+"px")
	style.Set("zIndex", zIndex)
	doc.Get("body").Call("prepend", el)

	c := &Canvas{
		document: doc,
		element:  el,
	}
	c.Diagram = diagram.New(NewSurface(el.Call("getContext", "2d")), x, y, width, height, opts...)
	c.addEventListeners()

	diagram.Logger().Debug("jscanvas: canvas attached", "x", x, "y", y, "width", width, "height", height)
	return c
}

// Element returns the canvas element.
func (c *Canvas) Element() js.Value { return c.element }

// Close stops event delivery, releases the callbacks and removes the
// element from the page.
func (c *Canvas) Close() {
	for i := len(c.cleanfuncs) - 1; i >= 0; i-- {
		c.cleanfuncs[i]()
	}
	c.cleanfuncs = nil
	c.element.Call("remove")
}

func (c *Canvas) addEventListeners() {
	// Keys are tracked for the whole document so the canvas does not
	// need focus.
	c.addEventListener(c.document, "keydown", func(this js.Value, args []js.Value) any {
		c.KeyDown(keyEvent(args[0]))
		return nil
	})
	c.addEventListener(c.document, "keyup", func(this js.Value, args []js.Value) any {
		c.KeyUp(keyEvent(args[0]))
		return nil
	})

	// Pointer handlers are set as properties so each event has exactly
	// one canvas handler.
	c.setHandler("onpointermove", c.PointerMove)
	c.setHandler("onpointerdown", c.PointerDown)
	c.setHandler("onpointerup", c.PointerUp)
	c.setHandler("onclick", c.PointerClick)
	c.setHandler("onpointerenter", c.PointerEnter)
	c.setHandler("onpointerleave", c.PointerLeave)
}

func (c *Canvas) addEventListener(this js.Value, event string, f func(this js.Value, args []js.Value) any) {
	jsf := c.funcOf(f)
	this.Call("addEventListener", event, jsf)
	c.cleanfuncs = append(c.cleanfuncs, func() {
		this.Call("removeEventListener", event, jsf)
	})
}

func (c *Canvas) setHandler(prop string, dispatch func(input.PointerEvent)) {
	jsf := c.funcOf(func(this js.Value, args []js.Value) any {
		dispatch(pointerEvent(args[0]))
		return nil
	})
	c.element.Set(prop, jsf)
	c.cleanfuncs = append(c.cleanfuncs, func() {
		c.element.Set(prop, js.Null())
	})
}

// funcOf is like js.FuncOf but releases the function on Close.
func (c *Canvas) funcOf(f func(this js.Value, args []js.Value) any) js.Func {
	jsf := js.FuncOf(f)
	c.cleanfuncs = append(c.cleanfuncs, jsf.Release)
	return jsf
}

func pointerEvent(e js.Value) input.PointerEvent {
	return input.PointerEvent{
		X:      e.Get("offsetX").Float(),
		Y:      e.Get("offsetY").Float(),
		Button: input.Button(e.Get("button").Int()),
	}
}

func keyEvent(e js.Value) input.KeyEvent {
	return input.KeyEvent{
		Key:   e.Get("key").String(),
		Shift: e.Get("shiftKey").Bool(),
		Ctrl:  e.Get("ctrlKey").Bool(),
		Alt:   e.Get("altKey").Bool(),
	}
}
