package physics

import (
	"math"

	"github.com/automoto/firstperson/controller"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// CapsuleOptions tune collide-and-slide.
type CapsuleOptions struct {
	// StepOffset is the tallest ledge a grounded capsule walks onto.
	StepOffset float64
	// Skin is the contact tolerance in metres.
	Skin float64
}

func DefaultCapsuleOptions() CapsuleOptions {
	return CapsuleOptions{StepOffset: 0.3, Skin: 1e-4}
}

// Capsule is an upright character volume. Its footprint on the XZ plane is
// the square bounding the capsule radius; Position is the centre of the feet.
type Capsule struct {
	world  *World
	obj    *resolv.Object
	pos    mgl64.Vec3
	radius float64
	height float64
	opts   CapsuleOptions

	grounded bool
	flags    controller.CollisionFlags
}

var _ controller.CollisionBody = (*Capsule)(nil)

// NewCapsule places a capsule with its feet at feet and adds its footprint
// to the world's space.
func NewCapsule(world *World, feet mgl64.Vec3, radius, height float64, opts CapsuleOptions) *Capsule {
	s := world.scale
	c := &Capsule{
		world:  world,
		obj:    resolv.NewObject(0, 0, 2*radius*s, 2*radius*s, TagCapsule),
		pos:    feet,
		radius: radius,
		height: height,
		opts:   opts,
	}
	c.obj.Data = c
	world.Space.Add(c.obj)
	c.sync()
	return c
}

func (c *Capsule) IsGrounded() bool                          { return c.grounded }
func (c *Capsule) Height() float64                           { return c.height }
func (c *Capsule) CollisionFlags() controller.CollisionFlags { return c.flags }
func (c *Capsule) Position() mgl64.Vec3                      { return c.pos }
func (c *Capsule) Object() *resolv.Object                    { return c.obj }

// SetHeight resizes the capsule keeping the feet in place.
func (c *Capsule) SetHeight(h float64) {
	c.height = h
}

// EyePosition is the point offset below the top of the capsule.
func (c *Capsule) EyePosition(offset float64) mgl64.Vec3 {
	return c.pos.Add(mgl64.Vec3{0, c.height - offset, 0})
}

// Teleport moves the capsule without collision and clears contact state.
func (c *Capsule) Teleport(feet mgl64.Vec3) {
	c.pos = feet
	c.grounded = false
	c.flags = controller.CollidedNone
	c.sync()
}

// Move resolves X, then Z, then Y against the world's solids.
func (c *Capsule) Move(delta mgl64.Vec3) controller.CollisionFlags {
	wasGrounded := c.grounded
	c.flags = controller.CollidedNone

	if delta.X() != 0 {
		c.pos[0] += c.sweep(delta.X(), 0, wasGrounded)
		c.sync()
	}
	if delta.Z() != 0 {
		c.pos[2] += c.sweep(0, delta.Z(), wasGrounded)
		c.sync()
	}
	c.moveVertical(delta.Y(), wasGrounded)
	c.sync()

	c.grounded = c.flags.Has(controller.CollidedBelow)
	return c.flags
}

// sweep returns how far the capsule may travel along one horizontal axis.
// Exactly one of dx, dz is non-zero.
func (c *Capsule) sweep(dx, dz float64, grounded bool) float64 {
	d := dx + dz
	alongX := dx != 0
	allowed := d

	for _, b := range c.candidates(dx, dz) {
		if !c.blocksBody(b, grounded) {
			continue
		}

		var gap float64
		if alongX {
			if !c.overlapsZ(b) {
				continue
			}
			if d > 0 {
				gap = b.Min.X() - (c.pos.X() + c.radius)
			} else {
				gap = b.Max.X() - (c.pos.X() - c.radius)
			}
		} else {
			if !c.overlapsX(b) {
				continue
			}
			if d > 0 {
				gap = b.Min.Z() - (c.pos.Z() + c.radius)
			} else {
				gap = b.Max.Z() - (c.pos.Z() - c.radius)
			}
		}

		if d > 0 {
			// Behind or deep inside the box; leave it alone.
			if gap < -c.radius {
				continue
			}
			if gap < allowed {
				allowed = math.Max(gap, 0)
				c.flags |= controller.CollidedSides
			}
		} else {
			if gap > c.radius {
				continue
			}
			if gap > allowed {
				allowed = math.Min(gap, 0)
				c.flags |= controller.CollidedSides
			}
		}
	}
	return allowed
}

func (c *Capsule) moveVertical(dy float64, grounded bool) {
	boxes := c.candidates(0, 0)
	feet := c.pos.Y()
	head := feet + c.height

	if dy <= 0 {
		reach := c.opts.Skin
		if grounded {
			reach = math.Max(reach, c.opts.StepOffset)
		}
		floor, found := math.Inf(-1), false
		for _, b := range boxes {
			if !c.overlapsFootprint(b) || b.Top() > feet+reach {
				continue
			}
			if b.Top() > floor {
				floor, found = b.Top(), true
			}
		}
		target := feet + dy
		if found && target <= floor {
			c.pos[1] = floor
			c.flags |= controller.CollidedBelow
			return
		}
		c.pos[1] = target
		return
	}

	ceiling, found := math.Inf(1), false
	for _, b := range boxes {
		if !c.overlapsFootprint(b) || b.Bottom() < head-c.opts.Skin {
			continue
		}
		if b.Bottom() < ceiling {
			ceiling, found = b.Bottom(), true
		}
	}
	if found && head+dy >= ceiling {
		c.pos[1] = ceiling - c.height
		c.flags |= controller.CollidedAbove
		return
	}
	c.pos[1] += dy
}

// candidates runs the broad phase for the footprint displaced by (dx, dz)
// metres, padded so boxes at exact contact are still reported.
func (c *Capsule) candidates(dx, dz float64) []*Box {
	s := c.world.scale
	const pad = 2
	sx, sz := dx*s, dz*s
	switch {
	case sx > 0:
		sx += pad
	case sx < 0:
		sx -= pad
	}
	switch {
	case sz > 0:
		sz += pad
	case sz < 0:
		sz -= pad
	}
	return boxesOf(c.obj.Check(sx, sz, TagSolid))
}

// blocksBody reports whether b overlaps the capsule's vertical span. Boxes
// no taller than the step offset do not block a grounded capsule.
func (c *Capsule) blocksBody(b *Box, grounded bool) bool {
	lift := c.opts.Skin
	if grounded {
		lift = math.Max(lift, c.opts.StepOffset)
	}
	return b.Top() > c.pos.Y()+lift && b.Bottom() < c.pos.Y()+c.height-c.opts.Skin
}

func (c *Capsule) overlapsX(b *Box) bool {
	return b.Min.X() < c.pos.X()+c.radius-c.opts.Skin && b.Max.X() > c.pos.X()-c.radius+c.opts.Skin
}

func (c *Capsule) overlapsZ(b *Box) bool {
	return b.Min.Z() < c.pos.Z()+c.radius-c.opts.Skin && b.Max.Z() > c.pos.Z()-c.radius+c.opts.Skin
}

func (c *Capsule) overlapsFootprint(b *Box) bool {
	return c.overlapsX(b) && c.overlapsZ(b)
}

// sync moves the broad-phase footprint to the current position.
func (c *Capsule) sync() {
	s := c.world.scale
	c.obj.X = (c.pos.X() - c.radius) * s
	c.obj.Y = (c.pos.Z() - c.radius) * s
	c.obj.Update()
}
