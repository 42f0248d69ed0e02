package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	v, vel := 0.0, 0.0
	for i := 0; i < 240; i++ {
		v = SmoothDamp(v, 10, &vel, 0.3, dt)
		assert.LessOrEqual(t, v, 10.0)
	}
	assert.InDelta(t, 10, v, 1e-3)
}

func TestSmoothDampIgnoresNonPositiveStep(t *testing.T) {
	vel := 3.0
	assert.Equal(t, 1.5, SmoothDamp(1.5, 10, &vel, 0.3, 0))
	assert.Equal(t, 3.0, vel)
}

func TestSmoothDampVec2Converges(t *testing.T) {
	cur := dmath.Vec2{}
	var vel dmath.Vec2
	target := dmath.Vec2{X: -1, Y: 0.5}
	for i := 0; i < 600; i++ {
		cur = SmoothDampVec2(cur, target, &vel, 0.03, dt)
	}
	assert.InDelta(t, target.X, cur.X, 1e-6)
	assert.InDelta(t, target.Y, cur.Y, 1e-6)
}

func TestSmoothDampVec2Snaps(t *testing.T) {
	var vel dmath.Vec2
	target := dmath.Vec2{X: 1}
	out := SmoothDampVec2(dmath.Vec2{}, target, &vel, 0, dt)
	assert.LessOrEqual(t, out.X, 1.0)
	assert.Greater(t, out.X, 0.99)
}

func TestLerpClampsFactor(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(5, 10, -1))
	assert.Equal(t, 10.0, Lerp(5, 10, 2))
	assert.Equal(t, 7.5, Lerp(5, 10, 0.5))
}

func TestNormalizedZeroVector(t *testing.T) {
	assert.Equal(t, dmath.Vec2{}, normalized(dmath.Vec2{X: 1e-7}))
	n := normalized(dmath.Vec2{X: 3, Y: 4})
	assert.InDelta(t, 0.6, n.X, 1e-12)
	assert.InDelta(t, 0.8, n.Y, 1e-12)
}
