package systems

import (
	"image/color"
	"math"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMinimap renders the broad-phase space from above in the top-right
// corner while the minimap toggle is on.
func DrawMinimap(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.ShowMinimap {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	// pixels per space unit
	k := cfg.Camera.MinimapScale / level.World.Scale()
	width, depth := level.World.Bounds()
	mapW := float32(width * cfg.Camera.MinimapScale)
	mapH := float32(depth * cfg.Camera.MinimapScale)
	margin := float32(cfg.UI.HUDMargin)
	ox := float32(screen.Bounds().Dx()) - mapW - margin
	oy := margin

	vector.FillRect(screen, ox, oy, mapW, mapH, cfg.UI.MinimapBackground, false)

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(physics.TagSolid) {
			if box, ok := obj.Data.(*physics.Box); ok && box.Top() <= 0 {
				continue // floor slabs would cover the map
			}
			c = color.RGBA{160, 160, 160, 255}
		} else if obj.HasTags(physics.TagCapsule) {
			c = color.RGBA{0, 100, 255, 255}
		}
		x := ox + float32(obj.X*k)
		y := oy + float32(obj.Y*k)
		vector.StrokeRect(screen, x, y, float32(obj.W*k), float32(obj.H*k), 1, c, false)
	}

	// facing indicator
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	pos := components.Capsule.Get(player).Position()
	yaw := components.Body.Get(player).Yaw * math.Pi / 180
	px := ox + float32(pos.X()*cfg.Camera.MinimapScale)
	py := oy + float32(pos.Z()*cfg.Camera.MinimapScale)
	const length = 10
	vector.StrokeLine(screen, px, py,
		px+float32(math.Sin(yaw))*length, py+float32(math.Cos(yaw))*length,
		1, cfg.Yellow, false)
}
