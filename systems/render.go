package systems

import (
	"image/color"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/physics"
	"github.com/automoto/firstperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// gridStep is the spacing of the floor grid in metres.
const gridStep = 2.0

// DrawWorld renders the level as a wireframe from the player's eye.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.UI.Background)

	v, ok := playerView(ecs, screen)
	if !ok {
		return
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		level := components.Level.Get(levelEntry)
		drawFloorGrid(screen, v, level.World)
	}

	tags.Solid.Each(ecs.World, func(e *donburi.Entry) {
		solid := components.Solid.Get(e)
		c := cfg.UI.WallColor
		if solid.Box.Top() <= 0 {
			c = cfg.UI.FloorColor
		}
		drawBox(screen, v, solid.Box, c)
	})

	drawCrosshair(screen, cfg.UI.CrosshairSize, cfg.UI.HUDTextColor)
}

// playerView builds the view of the first player.
func playerView(ecs *ecs.ECS, screen *ebiten.Image) (view, bool) {
	player, ok := tags.Player.First(ecs.World)
	if !ok {
		return view{}, false
	}
	capsule := components.Capsule.Get(player)
	body := components.Body.Get(player)
	camera := components.Camera.Get(player)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	eye := capsule.EyePosition(camera.EyeOffset)
	return newView(eye, body.Yaw, camera.Pitch, cfg.Camera.FOV, cfg.Camera.Near, w, h), true
}

func drawBox(screen *ebiten.Image, v view, box *physics.Box, c color.Color) {
	corners := box.Corners()
	for _, edge := range boxEdges {
		drawSegment(screen, v, corners[edge[0]], corners[edge[1]], c)
	}
}

func drawFloorGrid(screen *ebiten.Image, v view, world *physics.World) {
	width, depth := world.Bounds()
	c := cfg.UI.FloorColor
	for x := gridStep; x < width; x += gridStep {
		drawSegment(screen, v, mgl64.Vec3{x, 0, 0}, mgl64.Vec3{x, 0, depth}, c)
	}
	for z := gridStep; z < depth; z += gridStep {
		drawSegment(screen, v, mgl64.Vec3{0, 0, z}, mgl64.Vec3{width, 0, z}, c)
	}
}

func drawSegment(screen *ebiten.Image, v view, a, b mgl64.Vec3, c color.Color) {
	x0, y0, x1, y1, ok := v.segment(a, b)
	if !ok {
		return
	}
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, true)
}

func drawCrosshair(screen *ebiten.Image, size float64, c color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	cx, cy := float32(w)/2, float32(h)/2
	s := float32(size)
	vector.StrokeLine(screen, cx-s, cy, cx+s, cy, 1, c, false)
	vector.StrokeLine(screen, cx, cy-s, cx, cy+s, 1, c, false)
}
