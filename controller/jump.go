package controller

// AirborneState is the jump sequence in flight. It replaces a per-frame
// coroutine: Step performs one frame of upward displacement and Continue
// decides, on the next frame, whether another step follows.
type AirborneState struct {
	Elapsed   float64
	LastForce float64
	LastFlags CollisionFlags
	Steps     int
}

// Step samples the falloff curve at the elapsed air time, lifts the body by
// the resulting force and advances the air time by dt.
func (a *AirborneState) Step(body CollisionBody, curve Curve, multiplier, dt float64) {
	a.LastForce = curve.Evaluate(a.Elapsed)
	a.LastFlags = body.Move(Up.Mul(a.LastForce * multiplier * dt))
	a.Elapsed += dt
	a.Steps++
}

// Continue reports whether the sequence is still rising: the last sampled
// force was positive, the body left the ground and neither the jump step nor
// the body's latest move hit a ceiling.
func (a *AirborneState) Continue(body CollisionBody) bool {
	return a.LastForce > 0 &&
		!body.IsGrounded() &&
		!a.LastFlags.Has(CollidedAbove) &&
		!body.CollisionFlags().Has(CollidedAbove)
}

// Advance runs one frame of the sequence after the starting frame. It
// returns true once the sequence has finished; no step is taken then.
func (a *AirborneState) Advance(body CollisionBody, curve Curve, multiplier, dt float64) (done bool) {
	if !a.Continue(body) {
		return true
	}
	a.Step(body, curve, multiplier, dt)
	return false
}
