package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// file is the YAML layout. Blocks left out of a file keep their defaults,
// as do fields left out of a block.
type file struct {
	Window     *Config           `yaml:"window"`
	Controller *ControllerConfig `yaml:"controller"`
	Physics    *PhysicsConfig    `yaml:"physics"`
	Camera     *CameraConfig     `yaml:"camera"`
	Input      *InputConfig      `yaml:"input"`
	Level      *LevelConfig      `yaml:"level"`
	Debug      *DebugConfig      `yaml:"debug"`
	Log        *LogConfig        `yaml:"log"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := Load(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load overlays YAML data onto the current configuration. Nothing is applied
// unless the whole document decodes and validates.
func Load(data []byte) error {
	window := *C
	ctrl := Controller
	phys := Physics
	cam := Camera
	input := Input
	input.Bindings = cloneBindings(Input.Bindings)
	level := Level
	debug := Debug
	log := Log

	f := file{
		Window:     &window,
		Controller: &ctrl,
		Physics:    &phys,
		Camera:     &cam,
		Input:      &input,
		Level:      &level,
		Debug:      &debug,
		Log:        &log,
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}

	if err := validate(&window, &ctrl, &phys, &cam, &level); err != nil {
		return err
	}

	C = &window
	Controller = ctrl
	Physics = phys
	Camera = cam
	Input = input
	Level = level
	Debug = debug
	Log = log
	return nil
}

func validate(window *Config, ctrl *ControllerConfig, phys *PhysicsConfig, cam *CameraConfig, level *LevelConfig) error {
	switch {
	case window.Width <= 0 || window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", window.Width, window.Height)
	case window.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", window.TPS)
	case phys.CapsuleRadius <= 0:
		return fmt.Errorf("capsule radius must be positive, got %v", phys.CapsuleRadius)
	case phys.Scale <= 0 || phys.CellSize <= 0:
		return fmt.Errorf("physics scale and cell size must be positive, got %v and %d", phys.Scale, phys.CellSize)
	case cam.FOV <= 0 || cam.FOV >= 180:
		return fmt.Errorf("camera fov must be in (0, 180), got %v", cam.FOV)
	case cam.Near <= 0:
		return fmt.Errorf("camera near plane must be positive, got %v", cam.Near)
	case level.Name == "":
		return errors.New("level name is required")
	}
	if _, err := ctrl.Settings(); err != nil {
		return err
	}
	return nil
}
