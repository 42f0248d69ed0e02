package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	"github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/fonts"
	"github.com/automoto/firstperson/logger"
	"github.com/automoto/firstperson/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(skipTitle bool) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if skipTitle {
		g.scene = scenes.NewFirstPersonScene(g)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overlaid on the default configuration")
	level := flag.String("level", "", "arena to load (overrides the config file)")
	levelDir := flag.String("levels", "", "directory of .tmx arenas to use instead of the embedded ones")
	debug := flag.Bool("debug", false, "debug logging and the minimap")
	skipTitle := flag.Bool("skip-title", false, "start in the arena")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	// CLI flags take precedence over the config file
	if *level != "" {
		config.Level.Name = *level
	}
	if *levelDir != "" {
		config.Level.Dir = *levelDir
	}
	if *debug {
		config.Log.Level = "debug"
		config.Log.Development = true
		config.Debug.ShowMinimap = true
	}

	log, err := logger.Init(config.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatal("failed to load fonts", zap.Error(err))
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	log.Info("starting",
		zap.String("level", config.Level.Name),
		zap.Int("tps", config.C.TPS))

	if err := ebiten.RunGame(NewGame(*skipTitle)); err != nil {
		log.Fatal("game exited", zap.Error(err))
	}
}
