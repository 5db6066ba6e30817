// Package input turns raw pointer presses, moves and releases into
// clicks and drag-and-drop gestures. It knows nothing about ebiten so
// the screen code feeds it cursor positions each frame.
package input

import "image"

// Source says where a dragged thing was picked up.
type Source int

const (
	SourceNone Source = iota
	// тайл ресурса в палитре
	SourcePalette
	// предмет инвентаря
	SourceInventory
)

// Payload is what the pointer holds.
type Payload struct {
	Source Source
	Ref    string // имя ресурса или id предмета
}

// GestureKind is the outcome of a press/release pair.
type GestureKind int

const (
	GestureNone GestureKind = iota
	GestureClick
	GestureDrop
)

// Gesture is reported on release.
type Gesture struct {
	Kind    GestureKind
	Payload Payload
	At      image.Point
}

// Tracker follows one pointer. A press becomes a drag once the pointer
// moves more than Threshold pixels from where it went down; releasing
// before that is a click.
type Tracker struct {
	Threshold int

	pressed  bool
	dragging bool
	origin   image.Point
	pos      image.Point
	payload  Payload
}

// NewTracker creates a tracker with the given drag threshold.
func NewTracker(threshold int) *Tracker {
	return &Tracker{Threshold: threshold}
}

// Press starts tracking at pt. p may be empty for presses on background
// or buttons; those still produce clicks.
func (t *Tracker) Press(pt image.Point, p Payload) {
	t.pressed = true
	t.dragging = false
	t.origin = pt
	t.pos = pt
	t.payload = p
}

// Move updates the pointer position while pressed.
func (t *Tracker) Move(pt image.Point) {
	if !t.pressed {
		return
	}
	t.pos = pt
	if !t.dragging && t.payload.Source != SourceNone && exceeds(pt.Sub(t.origin), t.Threshold) {
		t.dragging = true
	}
}

// Release ends the gesture at pt.
func (t *Tracker) Release(pt image.Point) Gesture {
	if !t.pressed {
		return Gesture{}
	}
	t.Move(pt)
	g := Gesture{Kind: GestureClick, Payload: t.payload, At: pt}
	if t.dragging {
		g.Kind = GestureDrop
	}
	t.Cancel()
	return g
}

// Cancel drops the current gesture without reporting it.
func (t *Tracker) Cancel() {
	t.pressed = false
	t.dragging = false
	t.payload = Payload{}
}

// Dragging returns the dragged payload and pointer position.
func (t *Tracker) Dragging() (Payload, image.Point, bool) {
	if !t.dragging {
		return Payload{}, image.Point{}, false
	}
	return t.payload, t.pos, true
}

// Offset is the pointer displacement since the press.
func (t *Tracker) Offset() image.Point {
	if !t.pressed {
		return image.Point{}
	}
	return t.pos.Sub(t.origin)
}

func exceeds(d image.Point, threshold int) bool {
	return d.X*d.X+d.Y*d.Y > threshold*threshold
}
