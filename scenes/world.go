package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"sync"

	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/logger"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/systems"
	factory2 "github.com/automoto/firstperson/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// FirstPersonScene is the playable arena.
type FirstPersonScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewFirstPersonScene(sc SceneChanger) *FirstPersonScene {
	return &FirstPersonScene{sceneChanger: sc}
}

func (s *FirstPersonScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *FirstPersonScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *FirstPersonScene) configure() {
	log := logger.Named("scene")

	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and cursor run before the controller reads them
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateCursor)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateController)
	ecs.AddSystem(systems.UpdateStates)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Overlay, systems.DrawMinimap)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	s.ecs = ecs

	arena, err := loadArena(cfg.Level)
	if err != nil {
		log.Fatal("failed to load level", zap.Error(err))
	}

	// Create the level entity and its collision world FIRST.
	level := factory2.CreateLevel(s.ecs, arena, physics.Options{
		Scale:    cfg.Physics.Scale,
		CellSize: cfg.Physics.CellSize,
	})
	levelData := components.Level.Get(level)
	factory2.CreateSpace(s.ecs, levelData.World)
	factory2.CreateSettings(s.ecs, cfg.Debug.ShowMinimap)

	settings, err := cfg.Controller.Settings()
	if err != nil {
		log.Fatal("invalid controller settings", zap.Error(err))
	}

	_, err = factory2.CreatePlayer(s.ecs, levelData.World, levelData.Spawn, settings, factory2.PlayerDevices{
		Input:  systems.NewInputSource(s.ecs),
		Cursor: systems.NewCursor(s.ecs),
	}, logger.Named("controller"))
	if err != nil {
		log.Fatal("failed to create player", zap.Error(err))
	}

	log.Info("level ready",
		zap.String("level", arena.Name),
		zap.Int("solids", len(arena.Boxes)),
		zap.Int("spawns", len(arena.Spawns)))
}

// loadArena resolves the configured level from the embedded levels or from
// a directory on disk.
func loadArena(lc cfg.LevelConfig) (*assets.Arena, error) {
	var fsys fs.FS = assets.FS()
	dir := "levels"
	if lc.Dir != "" {
		fsys = os.DirFS(lc.Dir)
		dir = "."
	}

	arenas, names, err := assets.LoadArenas(fsys, dir)
	if err != nil {
		return nil, err
	}
	arena, ok := arenas[lc.Name]
	if !ok {
		return nil, fmt.Errorf("level %q not found, have %v", lc.Name, names)
	}
	return arena, nil
}
