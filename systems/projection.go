package systems

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// viewFar bounds the depth range of the projection matrix in metres.
const viewFar = 1000.0

// view projects world points onto the screen for a camera at eye with the
// body's yaw and the camera's pitch (positive looks down), both in degrees.
type view struct {
	eye           mgl64.Vec3
	fwd           mgl64.Vec3
	modelView     mgl64.Mat4
	proj          mgl64.Mat4
	width, height int
	near          float64
}

func newView(eye mgl64.Vec3, yaw, pitch, fovDeg, near float64, width, height int) view {
	sy, cy := math.Sincos(mgl64.DegToRad(yaw))
	sp, cp := math.Sincos(mgl64.DegToRad(pitch))
	fwd := mgl64.Vec3{sy * cp, -sp, cy * cp}
	up := mgl64.Vec3{sy * sp, cp, cy * sp}
	return view{
		eye:       eye,
		fwd:       fwd,
		modelView: mgl64.LookAtV(eye, eye.Add(fwd), up),
		proj:      mgl64.Perspective(mgl64.DegToRad(fovDeg), float64(width)/float64(height), near, viewFar),
		width:     width,
		height:    height,
		near:      near,
	}
}

// depth is the distance of p in front of the eye along the view axis.
func (v view) depth(p mgl64.Vec3) float64 {
	return p.Sub(v.eye).Dot(v.fwd)
}

// project maps p to screen pixels with y down. The world has +X on the right
// when facing +Z, so the right-handed window x is mirrored.
func (v view) project(p mgl64.Vec3) (x, y float64) {
	win := mgl64.Project(p, v.modelView, v.proj, 0, 0, v.width, v.height)
	return float64(v.width) - win.X(), float64(v.height) - win.Y()
}

// segment projects the world segment a-b, clipped to the near plane.
func (v view) segment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	da, db := v.depth(a), v.depth(b)
	if da < v.near && db < v.near {
		return 0, 0, 0, 0, false
	}
	if da < v.near {
		a = clipNear(a, b, da, db, v.near)
	} else if db < v.near {
		b = clipNear(b, a, db, da, v.near)
	}
	x0, y0 = v.project(a)
	x1, y1 = v.project(b)
	return x0, y0, x1, y1, true
}

// clipNear moves the behind point toward the visible one until it lies on
// the near plane.
func clipNear(behind, visible mgl64.Vec3, dBehind, dVisible, near float64) mgl64.Vec3 {
	t := (near - dBehind) / (dVisible - dBehind)
	return behind.Add(visible.Sub(behind).Mul(t))
}

// boxEdges indexes the twelve edges of physics.Box.Corners.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}
