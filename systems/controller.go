package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/logger"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateController ticks every player controller by one fixed step and
// returns players that fell below the kill plane to the level spawn.
func UpdateController(ecs *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)

	levelEntry, hasLevel := components.Level.First(ecs.World)

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		c.Last = c.Update(dt)
		logFrame(c.Last)

		if !hasLevel {
			return
		}
		capsule := components.Capsule.Get(e)
		if !belowKillPlane(capsule.Position(), cfg.Physics.KillPlaneY) {
			return
		}
		level := components.Level.Get(levelEntry)
		capsule.Teleport(level.Spawn.Position)
		components.Body.Get(e).Yaw = level.Spawn.Yaw
		c.Respawn++
		logger.Named("controller").Info("player respawned",
			zap.String("spawn", level.Spawn.Name),
			zap.Int("count", c.Respawn))
	})
}

func belowKillPlane(feet mgl64.Vec3, killPlaneY float64) bool {
	return feet.Y() < killPlaneY
}

func logFrame(f controller.Frame) {
	if !f.CrouchEntered && !f.CrouchExited && !f.JumpStarted && !f.JumpFinished {
		return
	}
	logger.Named("controller").Debug("locomotion",
		zap.Bool("crouchEntered", f.CrouchEntered),
		zap.Bool("crouchExited", f.CrouchExited),
		zap.Bool("jumpStarted", f.JumpStarted),
		zap.Bool("jumpFinished", f.JumpFinished),
		zap.Float64("speed", f.MovementSpeed))
}
