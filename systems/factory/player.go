package factory

import (
	"fmt"

	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// PlayerDevices are the input collaborators the scene hands to a player.
type PlayerDevices struct {
	Input  controller.InputSource
	Cursor controller.CursorLock
}

// CreatePlayer places a capsule at spawn and attaches a started controller.
func CreatePlayer(ecs *ecs.ECS, world *physics.World, spawn assets.Spawn, settings controller.Settings, dev PlayerDevices, log *zap.Logger) (*donburi.Entry, error) {
	capsule := physics.NewCapsule(world, spawn.Position, cfg.Physics.CapsuleRadius, settings.StandingHeight, physics.CapsuleOptions{
		StepOffset: cfg.Physics.StepOffset,
		Skin:       cfg.Physics.Skin,
	})
	body := &controller.YawBody{Yaw: spawn.Yaw}
	camera := &controller.PitchCamera{}

	ctrl, err := controller.New(settings, controller.Host{
		Body:      capsule,
		Transform: body,
		Camera:    camera,
		Input:     dev.Input,
		Cursor:    dev.Cursor,
	}, controller.WithLogger(log))
	if err != nil {
		world.Space.Remove(capsule.Object())
		return nil, fmt.Errorf("create player: %w", err)
	}

	player := archetypes.Player.Spawn(ecs)

	components.Capsule.SetValue(player, components.CapsuleData{Capsule: capsule})
	components.Body.SetValue(player, components.BodyData{YawBody: body})
	components.Camera.SetValue(player, components.CameraData{
		PitchCamera: camera,
		EyeOffset:   cfg.Camera.EyeOffset,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})

	ctrl.Start()
	components.Controller.SetValue(player, components.ControllerData{Controller: ctrl})

	log.Info("player spawned",
		zap.String("spawn", spawn.Name),
		zap.Float64("x", spawn.Position.X()),
		zap.Float64("y", spawn.Position.Y()),
		zap.Float64("z", spawn.Position.Z()),
		zap.Float64("yaw", spawn.Yaw))
	return player, nil
}
