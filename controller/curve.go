package controller

import (
	"fmt"
	"sort"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Curve maps elapsed air time in seconds to a jump force.
type Curve interface {
	Evaluate(t float64) float64
}

// Keyframe is a single sample of a KeyframeCurve.
type Keyframe struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// KeyframeCurve interpolates linearly between keys and holds the first and
// last values outside the key range.
type KeyframeCurve struct {
	keys []Keyframe
}

func NewKeyframeCurve(keys ...Keyframe) *KeyframeCurve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return &KeyframeCurve{keys: sorted}
}

func (c *KeyframeCurve) Evaluate(t float64) float64 {
	n := len(c.keys)
	switch {
	case n == 0:
		return 0
	case t <= c.keys[0].Time:
		return c.keys[0].Value
	case t >= c.keys[n-1].Time:
		return c.keys[n-1].Value
	}

	i := sort.Search(n, func(i int) bool { return c.keys[i].Time > t })
	a, b := c.keys[i-1], c.keys[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.Value
	}
	return a.Value + (b.Value-a.Value)*(t-a.Time)/span
}

// Keys returns a copy of the sorted keyframes.
func (c *KeyframeCurve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// TweenCurve falls from Peak to zero over Duration following an easing
// function, and stays at zero afterwards.
type TweenCurve struct {
	Peak     float64
	Duration float64
	tween    *gween.Tween
}

func NewTweenCurve(peak, duration float64, fn ease.TweenFunc) *TweenCurve {
	return &TweenCurve{
		Peak:     peak,
		Duration: duration,
		tween:    gween.New(float32(peak), 0, float32(duration), fn),
	}
}

func (c *TweenCurve) Evaluate(t float64) float64 {
	if t >= c.Duration {
		return 0
	}
	v, _ := c.tween.Set(float32(t))
	return float64(v)
}

var easeFuncs = map[string]ease.TweenFunc{
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inSine":    ease.InSine,
	"outSine":   ease.OutSine,
	"inExpo":    ease.InExpo,
	"outExpo":   ease.OutExpo,
	"inCirc":    ease.InCirc,
	"outCirc":   ease.OutCirc,
}

// EaseFunc resolves an easing function by name.
func EaseFunc(name string) (ease.TweenFunc, error) {
	fn, ok := easeFuncs[name]
	if !ok {
		return nil, fmt.Errorf("unknown ease %q", name)
	}
	return fn, nil
}

// DefaultJumpFalloff is a short out-quad burst used when nothing else is configured.
func DefaultJumpFalloff() Curve {
	return NewTweenCurve(1, 0.35, ease.OutQuad)
}
