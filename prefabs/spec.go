package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Scale float64 `yaml:"scale"`
}

type BoxSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Scaled multiplies the box by the transform scale, for boxes given in sprite pixels.
	Scaled bool `yaml:"scaled"`
}

type ClipSpec struct {
	Sheet   string  `yaml:"sheet"`
	FrameW  int     `yaml:"frame_w"`
	FrameH  int     `yaml:"frame_h"`
	Columns int     `yaml:"columns"`
	First   int     `yaml:"first"`
	Last    int     `yaml:"last"`
	FPS     float64 `yaml:"fps"`
	Loop    *bool   `yaml:"loop"`
	Policy  string  `yaml:"policy"`
}

type FootstepSpec struct {
	WalkPeriod  float64  `yaml:"walk_period"`
	DelayPeriod float64  `yaml:"delay_period"`
	Volume      float64  `yaml:"volume"`
	Left        []string `yaml:"left"`
	Right       []string `yaml:"right"`
}

type PlayerSpec struct {
	Name       string        `yaml:"name"`
	Speed      float64       `yaml:"speed"`
	Facing     string        `yaml:"facing"`
	Layer      int           `yaml:"layer"`
	Transform  TransformSpec `yaml:"transform"`
	Interactor BoxSpec       `yaml:"interactor"`
	Stand      ClipSpec      `yaml:"stand"`
	Walk       ClipSpec      `yaml:"walk"`
	Act        *ClipSpec     `yaml:"act"`
	Footsteps  *FootstepSpec `yaml:"footsteps"`
}

type LoopAudioSpec struct {
	Clip   string  `yaml:"clip"`
	Volume float64 `yaml:"volume"`
	Range  float64 `yaml:"range"`
}

type FurnishingSpec struct {
	Name         string         `yaml:"name"`
	ID           string         `yaml:"id"`
	Layer        int            `yaml:"layer"`
	StartRunning bool           `yaml:"start_running"`
	Transform    TransformSpec  `yaml:"transform"`
	Box          BoxSpec        `yaml:"box"`
	Off          ClipSpec       `yaml:"off"`
	Running      ClipSpec       `yaml:"running"`
	Audio        *LoopAudioSpec `yaml:"audio"`
}

type BackdropSpec struct {
	Name      string        `yaml:"name"`
	Sheet     string        `yaml:"sheet"`
	Layer     int           `yaml:"layer"`
	Transform TransformSpec `yaml:"transform"`
}

type SceneSpec struct {
	Title       string         `yaml:"title"`
	Help        string         `yaml:"help"`
	Player      string         `yaml:"player"`
	Furnishings []string       `yaml:"furnishings"`
	Backdrops   []BackdropSpec `yaml:"backdrops"`
}

func LoadSceneSpec(name string) (SceneSpec, error) {
	return LoadSpec[SceneSpec](name)
}

func LoadPlayerSpec(name string) (PlayerSpec, error) {
	return LoadSpec[PlayerSpec](name)
}

func LoadFurnishingSpec(name string) (FurnishingSpec, error) {
	return LoadSpec[FurnishingSpec](name)
}
