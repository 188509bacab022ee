package galaxy

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// wheelNotchDelta converts one Ebitengine wheel notch into a DOM-style
// deltaY (positive scrolls down).
const wheelNotchDelta = 100.0

// InputSink receives normalized input. The camera controller implements it,
// so it can be driven by real devices, the router, or synthetic events.
type InputSink interface {
	Scroll(delta float64)
	DragStart(y float64)
	DragMove(y float64)
	DragEnd()
}

// InputEvent is one normalized input event.
type InputEvent struct {
	Type EventType
	// Delta is the wheel delta for EventScroll.
	Delta float64
	// X and Y are the pointer position in screen pixels for drag events.
	X, Y float64
	// Touch reports whether a drag came from a touch screen.
	Touch bool
}

// --- Handler registry ---

type handler[T any] struct {
	id uint32
	fn func(T)
}

// handlerList is an ordered set of callbacks with stable removal ids.
type handlerList[T any] struct {
	items  []handler[T]
	nextID uint32
}

func (l *handlerList[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.items = append(l.items, handler[T]{id: id, fn: fn})
	return CallbackHandle{id: id, remove: l.remove}
}

func (l *handlerList[T]) remove(id uint32) {
	for i := range l.items {
		if l.items[i].id == id {
			copy(l.items[i:], l.items[i+1:])
			l.items[len(l.items)-1] = handler[T]{}
			l.items = l.items[:len(l.items)-1]
			return
		}
	}
}

func (l *handlerList[T]) fire(v T) {
	for _, h := range l.items {
		h.fn(v)
	}
}

func (l *handlerList[T]) len() int {
	return len(l.items)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id     uint32
	remove func(uint32)
}

// Remove unregisters the callback so it no longer fires. Removing twice is
// a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove(h.id)
}

// InputRouter fans normalized input out to registered handlers. It is
// itself an InputSink, so device adapters write to it and views attach to
// it on mount and detach on unmount.
type InputRouter struct {
	scroll    handlerList[InputEvent]
	dragStart handlerList[InputEvent]
	dragMove  handlerList[InputEvent]
	dragEnd   handlerList[InputEvent]
}

// OnScroll registers a callback for wheel events.
func (r *InputRouter) OnScroll(fn func(InputEvent)) CallbackHandle {
	return r.scroll.add(fn)
}

// OnDragStart registers a callback for pointer press events.
func (r *InputRouter) OnDragStart(fn func(InputEvent)) CallbackHandle {
	return r.dragStart.add(fn)
}

// OnDragMove registers a callback for pointer move events while pressed.
func (r *InputRouter) OnDragMove(fn func(InputEvent)) CallbackHandle {
	return r.dragMove.add(fn)
}

// OnDragEnd registers a callback for pointer release events.
func (r *InputRouter) OnDragEnd(fn func(InputEvent)) CallbackHandle {
	return r.dragEnd.add(fn)
}

// Attach wires every event to sink and returns the handles needed to
// detach it again.
func (r *InputRouter) Attach(sink InputSink) []CallbackHandle {
	return []CallbackHandle{
		r.OnScroll(func(e InputEvent) { sink.Scroll(e.Delta) }),
		r.OnDragStart(func(e InputEvent) { sink.DragStart(e.Y) }),
		r.OnDragMove(func(e InputEvent) { sink.DragMove(e.Y) }),
		r.OnDragEnd(func(InputEvent) { sink.DragEnd() }),
	}
}

// HandlerCount returns the number of registered callbacks across all events.
func (r *InputRouter) HandlerCount() int {
	return r.scroll.len() + r.dragStart.len() + r.dragMove.len() + r.dragEnd.len()
}

// Dispatch delivers e to the handlers registered for its type.
func (r *InputRouter) Dispatch(e InputEvent) {
	switch e.Type {
	case EventScroll:
		r.scroll.fire(e)
	case EventDragStart:
		r.dragStart.fire(e)
	case EventDragMove:
		r.dragMove.fire(e)
	case EventDragEnd:
		r.dragEnd.fire(e)
	}
}

// Scroll implements InputSink.
func (r *InputRouter) Scroll(delta float64) {
	r.Dispatch(InputEvent{Type: EventScroll, Delta: delta})
}

// DragStart implements InputSink.
func (r *InputRouter) DragStart(y float64) {
	r.Dispatch(InputEvent{Type: EventDragStart, Y: y})
}

// DragMove implements InputSink.
func (r *InputRouter) DragMove(y float64) {
	r.Dispatch(InputEvent{Type: EventDragMove, Y: y})
}

// DragEnd implements InputSink.
func (r *InputRouter) DragEnd() {
	r.Dispatch(InputEvent{Type: EventDragEnd})
}

// --- Device polling ---

// pointerKind records which device owns the active drag.
type pointerKind uint8

const (
	pointerNone pointerKind = iota
	pointerMouse
	pointerTouch
)

// EbitenInput polls Ebitengine's wheel, mouse and touch state once per
// frame and emits normalized events. Only one pointer drives a drag at a
// time; additional touches are ignored until it is released.
type EbitenInput struct {
	active  pointerKind
	touchID ebiten.TouchID
	lastX   float64
	lastY   float64

	touchBuf []ebiten.TouchID

	// OnTouch is called when a touch starts; used for coarse-pointer detection.
	OnTouch func()
	// OnMouse is called when a mouse drag starts.
	OnMouse func()
}

// Poll reads device state and forwards events to sink.
func (in *EbitenInput) Poll(sink *InputRouter) {
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		sink.Dispatch(InputEvent{Type: EventScroll, Delta: -yoff * wheelNotchDelta})
	}

	switch in.active {
	case pointerNone:
		in.touchBuf = inpututil.AppendJustPressedTouchIDs(in.touchBuf[:0])
		if len(in.touchBuf) > 0 {
			id := in.touchBuf[0]
			x, y := ebiten.TouchPosition(id)
			in.begin(sink, pointerTouch, float64(x), float64(y))
			in.touchID = id
			if in.OnTouch != nil {
				in.OnTouch()
			}
			return
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			in.begin(sink, pointerMouse, float64(x), float64(y))
			if in.OnMouse != nil {
				in.OnMouse()
			}
		}
	case pointerTouch:
		if inpututil.IsTouchJustReleased(in.touchID) {
			in.end(sink)
			return
		}
		x, y := ebiten.TouchPosition(in.touchID)
		in.move(sink, float64(x), float64(y))
	case pointerMouse:
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			in.end(sink)
			return
		}
		x, y := ebiten.CursorPosition()
		in.move(sink, float64(x), float64(y))
	}
}

func (in *EbitenInput) begin(sink *InputRouter, kind pointerKind, x, y float64) {
	in.active = kind
	in.lastX, in.lastY = x, y
	sink.Dispatch(InputEvent{Type: EventDragStart, X: x, Y: y, Touch: kind == pointerTouch})
}

func (in *EbitenInput) move(sink *InputRouter, x, y float64) {
	if x == in.lastX && y == in.lastY {
		return
	}
	in.lastX, in.lastY = x, y
	sink.Dispatch(InputEvent{Type: EventDragMove, X: x, Y: y, Touch: in.active == pointerTouch})
}

func (in *EbitenInput) end(sink *InputRouter) {
	touch := in.active == pointerTouch
	in.active = pointerNone
	sink.Dispatch(InputEvent{Type: EventDragEnd, X: in.lastX, Y: in.lastY, Touch: touch})
}

// Reset forgets the active pointer without emitting a drag end.
func (in *EbitenInput) Reset() {
	in.active = pointerNone
}
