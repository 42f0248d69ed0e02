package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Resolv tags
const (
	TagSolid   = "solid"
	TagCapsule = "capsule"
)

// Box is an axis-aligned solid. Min/Max are world-space corners in metres.
type Box struct {
	Min, Max mgl64.Vec3
}

func (b *Box) Top() float64    { return b.Max.Y() }
func (b *Box) Bottom() float64 { return b.Min.Y() }

// Corners returns the eight corners, bottom face first.
func (b *Box) Corners() [8]mgl64.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl64.Vec3{
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
	}
}

// Options tune the resolv space backing a World.
type Options struct {
	// Scale converts metres to space units. resolv treats one unit as a
	// pixel when computing cell ranges, so metres must be scaled up.
	Scale float64
	// CellSize is the broad-phase cell edge in space units.
	CellSize int
}

func DefaultOptions() Options {
	return Options{Scale: 100, CellSize: 50}
}

// World is the static geometry the capsule collides with. The resolv space
// covers the XZ plane; vertical extents are resolved against each Box.
type World struct {
	Space *resolv.Space
	Width float64
	Depth float64

	scale float64
}

// NewWorld creates a world covering [0, width] x [0, depth] metres.
func NewWorld(width, depth float64, opts Options) *World {
	if opts.Scale <= 0 {
		opts.Scale = DefaultOptions().Scale
	}
	if opts.CellSize <= 0 {
		opts.CellSize = DefaultOptions().CellSize
	}
	w := int(math.Ceil(width * opts.Scale))
	d := int(math.Ceil(depth * opts.Scale))
	return &World{
		Space: resolv.NewSpace(w, d, opts.CellSize, opts.CellSize),
		Width: width,
		Depth: depth,
		scale: opts.Scale,
	}
}

// AddBox registers a solid and returns its broad-phase object.
func (w *World) AddBox(b Box) *resolv.Object {
	box := b
	obj := resolv.NewObject(
		box.Min.X()*w.scale,
		box.Min.Z()*w.scale,
		(box.Max.X()-box.Min.X())*w.scale,
		(box.Max.Z()-box.Min.Z())*w.scale,
		TagSolid,
	)
	obj.Data = &box
	w.Space.Add(obj)
	return obj
}

func (w *World) Scale() float64 {
	return w.scale
}

// boxesOf extracts the solids from a broad-phase result.
func boxesOf(check *resolv.Collision) []*Box {
	if check == nil {
		return nil
	}
	out := make([]*Box, 0, len(check.Objects))
	for _, o := range check.Objects {
		if b, ok := o.Data.(*Box); ok {
			out = append(out, b)
		}
	}
	return out
}

// Bounds returns the world extent on the XZ plane in metres.
func (w *World) Bounds() (width, depth float64) {
	return w.Width, w.Depth
}
