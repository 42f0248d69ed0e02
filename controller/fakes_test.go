package controller

import "github.com/go-gl/mathgl/mgl64"

// fakeBody stands on a floor at y=0 and optionally under a ceiling.
type fakeBody struct {
	pos      mgl64.Vec3
	height   float64
	ceiling  float64
	grounded bool
	flags    CollisionFlags
	moves    []mgl64.Vec3
}

func newGroundedBody() *fakeBody {
	return &fakeBody{height: 2, grounded: true}
}

func (b *fakeBody) IsGrounded() bool               { return b.grounded }
func (b *fakeBody) Height() float64                { return b.height }
func (b *fakeBody) SetHeight(h float64)            { b.height = h }
func (b *fakeBody) CollisionFlags() CollisionFlags { return b.flags }

func (b *fakeBody) Move(d mgl64.Vec3) CollisionFlags {
	b.moves = append(b.moves, d)
	b.flags = CollidedNone
	b.pos = b.pos.Add(d)
	if b.pos.Y() <= 0 {
		b.pos[1] = 0
		b.flags |= CollidedBelow
	}
	if b.ceiling > 0 && b.pos.Y()+b.height >= b.ceiling {
		b.pos[1] = b.ceiling - b.height
		b.flags |= CollidedAbove
	}
	b.grounded = b.flags.Has(CollidedBelow)
	return b.flags
}

// fakeInput holds one frame of input. Edges are cleared by nextFrame.
type fakeInput struct {
	axes     map[Axis]float64
	held     map[Action]bool
	pressed  map[Action]bool
	released map[Action]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{
		axes:     map[Axis]float64{},
		held:     map[Action]bool{},
		pressed:  map[Action]bool{},
		released: map[Action]bool{},
	}
}

func (in *fakeInput) Axis(a Axis) float64    { return in.axes[a] }
func (in *fakeInput) AxisRaw(a Axis) float64 { return in.axes[a] }
func (in *fakeInput) Held(a Action) bool     { return in.held[a] }
func (in *fakeInput) Pressed(a Action) bool  { return in.pressed[a] }
func (in *fakeInput) Released(a Action) bool { return in.released[a] }

func (in *fakeInput) press(a Action) {
	in.pressed[a] = true
	in.held[a] = true
}

func (in *fakeInput) release(a Action) {
	in.released[a] = true
	in.held[a] = false
}

func (in *fakeInput) nextFrame() {
	in.pressed = map[Action]bool{}
	in.released = map[Action]bool{}
}

type fakeCursor struct {
	locked bool
	calls  int
}

func (c *fakeCursor) Lock()   { c.locked = true; c.calls++ }
func (c *fakeCursor) Unlock() { c.locked = false; c.calls++ }
