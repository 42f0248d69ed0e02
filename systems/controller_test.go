package systems

import (
	"strings"
	"testing"

	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

type fakeCursorMode struct {
	modes []ebiten.CursorModeType
}

func (m *fakeCursorMode) SetCursorMode(mode ebiten.CursorModeType) {
	m.modes = append(m.modes, mode)
}

type scene struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	level  *components.LevelData
	cursor *fakeCursorMode
}

func newScene(t *testing.T) *scene {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())

	arena := assets.MustLoadArena(assets.DefaultArena)
	levelEntry := factory.CreateLevel(e, arena, physics.Options{Scale: cfg.Physics.Scale, CellSize: cfg.Physics.CellSize})
	level := components.Level.Get(levelEntry)
	factory.CreateSpace(e, level.World)

	settings, err := cfg.Controller.Settings()
	require.NoError(t, err)

	mode := &fakeCursorMode{}
	player, err := factory.CreatePlayer(e, level.World, level.Spawn, settings, factory.PlayerDevices{
		Input:  NewInputSource(e),
		Cursor: &Cursor{ecs: e, mode: mode},
	}, zap.NewNop())
	require.NoError(t, err)

	return &scene{ecs: e, player: player, level: level, cursor: mode}
}

func (s *scene) input() *components.InputData {
	return getOrCreateInput(s.ecs)
}

// tick mimics the frame order without polling devices.
func (s *scene) tick(held ...cfg.ActionID) {
	in := s.input()
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
	for _, id := range held {
		in.Current[id] = true
	}
	in.Move = moveAxes(&in.Current, dmath.Vec2{})
	UpdateController(s.ecs)
	UpdateStates(s.ecs)
}

func TestPlayerStartsLockedAtSpawn(t *testing.T) {
	s := newScene(t)

	c := components.Controller.Get(s.player)
	assert.True(t, c.CursorLocked())
	assert.Equal(t, []ebiten.CursorModeType{ebiten.CursorModeCaptured}, s.cursor.modes)
	assert.True(t, s.input().CursorCaptured)

	assert.Equal(t, s.level.Spawn.Position, components.Capsule.Get(s.player).Position())
	assert.Equal(t, s.level.Spawn.Yaw, components.Body.Get(s.player).Yaw)
}

func TestPlayerWalksForwardOnTheFloor(t *testing.T) {
	s := newScene(t)
	start := components.Capsule.Get(s.player).Position()

	for i := 0; i < 90; i++ {
		s.tick(cfg.ActionMoveForward)
	}

	capsule := components.Capsule.Get(s.player)
	pos := capsule.Position()
	assert.True(t, capsule.IsGrounded())
	assert.InDelta(t, 0.0, pos.Y(), 1e-3)
	// spawn faces 45 degrees: forward is +X +Z
	assert.Greater(t, pos.X(), start.X()+0.5)
	assert.Greater(t, pos.Z(), start.Z()+0.5)

	assert.True(t, s.player.HasComponent(components.Walking))
	assert.Equal(t, cfg.Walk, components.State.Get(s.player).CurrentState)
}

func TestPlayerJumpsAndLands(t *testing.T) {
	s := newScene(t)
	for i := 0; i < 5; i++ {
		s.tick()
	}
	require.True(t, components.Capsule.Get(s.player).IsGrounded())

	s.tick(cfg.ActionJump)
	c := components.Controller.Get(s.player)
	require.True(t, c.Last.JumpStarted)
	assert.Equal(t, cfg.Jump, components.State.Get(s.player).CurrentState)

	peak := 0.0
	landed := false
	for i := 0; i < 240 && !landed; i++ {
		s.tick()
		y := components.Capsule.Get(s.player).Position().Y()
		if y > peak {
			peak = y
		}
		landed = i > 2 && components.Capsule.Get(s.player).IsGrounded()
	}
	assert.True(t, landed)
	assert.Greater(t, peak, 0.3)
	assert.False(t, c.IsJumping())
}

func TestCrouchShrinksCapsule(t *testing.T) {
	s := newScene(t)
	s.tick(cfg.ActionCrouch)

	capsule := components.Capsule.Get(s.player)
	assert.Equal(t, cfg.Controller.CrouchHeight, capsule.Height())
	assert.True(t, s.player.HasComponent(components.Crouching))

	s.tick()
	assert.Equal(t, cfg.Controller.StandingHeight, capsule.Height())
}

func TestFallingBelowKillPlaneRespawns(t *testing.T) {
	s := newScene(t)
	capsule := components.Capsule.Get(s.player)
	body := components.Body.Get(s.player)

	body.Yaw = 200
	capsule.Teleport(mgl64.Vec3{16, cfg.Physics.KillPlaneY - 1, 16})
	s.tick()

	assert.Equal(t, s.level.Spawn.Position, capsule.Position())
	assert.Equal(t, s.level.Spawn.Yaw, body.Yaw)
	assert.Equal(t, 1, components.Controller.Get(s.player).Respawn)
}

func TestReleaseAndRecaptureCursor(t *testing.T) {
	s := newScene(t)
	c := components.Controller.Get(s.player)

	c.SetCursorLocked(false)
	assert.False(t, s.input().CursorCaptured)
	assert.Equal(t, ebiten.CursorModeVisible, s.cursor.modes[len(s.cursor.modes)-1])

	c.SetCursorLocked(true)
	assert.True(t, s.input().CursorCaptured)
	assert.False(t, s.input().CursorKnown)
}

func TestLocomotionState(t *testing.T) {
	walk := 5.0
	cases := []struct {
		name  string
		frame controller.Frame
		want  cfg.StateID
	}{
		{"idle", controller.Frame{Grounded: true, MovementSpeed: 5}, cfg.Idle},
		{"walk", controller.Frame{Grounded: true, MovementSpeed: 5, Velocity: mgl64.Vec3{3, 0, 0}}, cfg.Walk},
		{"run", controller.Frame{Grounded: true, MovementSpeed: 8, Velocity: mgl64.Vec3{0, 0, 8}}, cfg.Running},
		{"jump", controller.Frame{Jumping: true, MovementSpeed: 5}, cfg.Jump},
		{"fall", controller.Frame{MovementSpeed: 5}, cfg.Fall},
		{"crouch wins", controller.Frame{Crouching: true, Jumping: true}, cfg.Crouch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, locomotionState(tc.frame, walk))
		})
	}
}

func TestSettingsToggle(t *testing.T) {
	s := newScene(t)
	settings := GetOrCreateSettings(s.ecs)
	require.False(t, settings.ShowMinimap)

	in := s.input()
	in.Current[cfg.ActionToggleDebug] = true
	UpdateSettings(s.ecs)
	assert.True(t, settings.ShowMinimap)

	// held, not pressed again
	in.Previous = in.Current
	UpdateSettings(s.ecs)
	assert.True(t, settings.ShowMinimap)
}

func TestHUDLines(t *testing.T) {
	s := newScene(t)
	s.tick(cfg.ActionMoveForward)

	c := components.Controller.Get(s.player)
	lines := hudLines(c, cfg.Walk, components.InputXbox)
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "walk")
	assert.True(t, strings.HasPrefix(lines[4], "look "))
	assert.Contains(t, lines[6], "xbox")
}

func TestBelowKillPlane(t *testing.T) {
	assert.True(t, belowKillPlane(mgl64.Vec3{0, -21, 0}, -20))
	assert.False(t, belowKillPlane(mgl64.Vec3{0, -20, 0}, -20))
}
