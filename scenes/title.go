package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene shows the bindings until the player starts the arena.
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewFirstPersonScene(ts.sceneChanger)
	}

	ts.ecs.AddSystem(systems.UpdateInput)
	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.sceneChanger, createWorldScene))

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)
}
