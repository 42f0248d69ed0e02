package systems

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

const titlePrompt = "press jump or click to start"

// NewUpdateTitle creates a system that starts the arena on jump or a click.
func NewUpdateTitle(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		if GetAction(input, cfg.ActionJump).JustPressed || inpututil.IsMouseButtonJustPressed(cfg.Input.CaptureButton) {
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// DrawTitle renders the title, the start prompt and the key bindings.
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.UI.Background, false)

	titleFace := fonts.Title.Get()
	w := text.BoundString(titleFace, cfg.C.Title).Dx()
	text.Draw(screen, cfg.C.Title, titleFace, (width-w)/2, height/4, cfg.UI.WallColor)

	face := fonts.HUD.Get()
	w = text.BoundString(face, titlePrompt).Dx()
	text.Draw(screen, titlePrompt, face, (width-w)/2, height/4+48, cfg.Yellow)

	y := height/4 + 96
	for _, line := range controlLines(cfg.Input.Bindings) {
		text.Draw(screen, line, face, width/3, y, cfg.UI.HUDTextColor)
		y += hudLineHeight
	}
}

// controlLines lists every bound action with its keys in action order.
func controlLines(bindings map[cfg.ActionID]cfg.InputBinding) []string {
	var lines []string
	for id := cfg.ActionMoveForward; id < cfg.ActionCount; id++ {
		binding, ok := bindings[id]
		if !ok || len(binding.Keys) == 0 {
			continue
		}
		keys := make([]string, len(binding.Keys))
		for i, k := range binding.Keys {
			keys[i] = k.String()
		}
		lines = append(lines, fmt.Sprintf("%-14s %s", id, strings.Join(keys, " / ")))
	}
	return lines
}
