package systems

import (
	"fmt"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudLineHeight = 18

// DrawHUD renders the controller readout in the top-left corner and a
// capture hint while the cursor is free.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	c := components.Controller.Get(player)
	state := components.State.Get(player)

	face := fonts.HUD.Get()
	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin) + hudLineHeight
	input := getOrCreateInput(ecs)
	for _, line := range hudLines(c, state.CurrentState, input.LastInputMethod) {
		text.Draw(screen, line, face, x, y, cfg.UI.HUDTextColor)
		y += hudLineHeight
	}

	if !c.CursorLocked() && c.Settings().LockCursor {
		hint := "click to capture the mouse"
		w := text.BoundString(face, hint).Dx()
		text.Draw(screen, hint, face, (screen.Bounds().Dx()-w)/2, screen.Bounds().Dy()/2+40, cfg.Yellow)
	}
}

func hudLines(c *components.ControllerData, state cfg.StateID, method components.InputMethod) []string {
	f := c.Last
	look := c.MouseDelta()
	return []string{
		fmt.Sprintf("state   %s", state),
		fmt.Sprintf("speed   %.2f m/s", f.MovementSpeed),
		fmt.Sprintf("vy      %.2f m/s", f.VelocityY),
		fmt.Sprintf("pitch   %.1f", f.Pitch),
		fmt.Sprintf("look    %+.2f %+.2f", look.X, look.Y),
		fmt.Sprintf("ground  %t", f.Grounded),
		fmt.Sprintf("input   %s", method),
	}
}
