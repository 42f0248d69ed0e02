package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/logger"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// UpdateCursor releases the captured cursor on the release action and
// recaptures it on a click when the controller locks the cursor.
func UpdateCursor(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	release := GetAction(input, cfg.ActionReleaseCursor).JustPressed
	capture := inpututil.IsMouseButtonJustPressed(cfg.Input.CaptureButton)

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		next, changed := cursorTransition(c.CursorLocked(), c.Settings().LockCursor, release, capture)
		if !changed {
			return
		}
		c.SetCursorLocked(next)
		logger.Named("cursor").Debug("cursor lock changed", zap.Bool("locked", next))
	})
}

// cursorTransition decides the next lock state. Capture only applies when
// the controller is configured to lock the cursor.
func cursorTransition(locked, lockEnabled, release, capture bool) (next, changed bool) {
	switch {
	case locked && release:
		return false, true
	case !locked && lockEnabled && capture:
		return true, true
	}
	return locked, false
}
