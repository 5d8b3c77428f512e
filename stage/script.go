package stage

import (
	_ "embed"
	"errors"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/component"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/physics"
	"github.com/lixenwraith/hectic/vmath"
)

//go:embed stages.yaml
var defaultScripts []byte

// ErrUnknownStage is returned when a stage id has no script
var ErrUnknownStage = errors.New("unknown stage")

// Scripts is the parsed stage file: shared enemy archetypes plus ordered stages
type Scripts struct {
	Enemies map[string]EnemySpec `yaml:"enemies"`
	Stages  []Script             `yaml:"stages"`
}

// EnemySpec is an archetype referenced by name from waves, gunners and bosses
type EnemySpec struct {
	Image  string     `yaml:"image"`
	Hitbox [2]float64 `yaml:"hitbox"` // Half extents
	Health uint32     `yaml:"health"`

	image asset.Image
}

// Script is one stage's timeline
type Script struct {
	ID          int              `yaml:"id"`
	Name        string           `yaml:"name"`
	Backgrounds []BackgroundSpec `yaml:"backgrounds"`
	Waves       []WaveSpec       `yaml:"waves"`
	Gunners     []GunnerSpec     `yaml:"gunners"`
	Boss        *BossSpec        `yaml:"boss"`
}

// BackgroundSpec places one layer; every offset adds a copy shifted down by that much
type BackgroundSpec struct {
	Image   string    `yaml:"image"`
	Depth   int       `yaml:"depth"`
	Scroll  float64   `yaml:"scroll"` // Units per tick, downward
	Offsets []float64 `yaml:"offsets"`

	image asset.Image
}

// WaveSpec spawns one enemy per curve (or per homing spawn point) at every
// activation time in [From, To) stepped by Step
type WaveSpec struct {
	Enemy  string      `yaml:"enemy"`
	From   float64     `yaml:"from"`
	To     float64     `yaml:"to"`
	Step   float64     `yaml:"step"`
	Curves []CurveSpec `yaml:"curves"`
	Homing *HomingSpec `yaml:"homing"`
}

// CurveSpec selects a curve constructor. Fields are read per kind:
// horizontal uses start/end as y coordinates, vertical as screen-width fractions,
// arc uses y and height
type CurveSpec struct {
	Kind        string  `yaml:"kind"`
	Start       float64 `yaml:"start"`
	End         float64 `yaml:"end"`
	Y           float64 `yaml:"y"`
	Height      float64 `yaml:"height"`
	LeftToRight bool    `yaml:"leftToRight"`
	Speed       float64 `yaml:"speed"`
}

// HomingSpec spawns enemies that lock onto a player when they activate
type HomingSpec struct {
	Speed  float64      `yaml:"speed"`
	Points [][2]float64 `yaml:"points"`
}

// GunnerSpec places stationary shooters that drop in, fire, then leave
type GunnerSpec struct {
	Enemy       string      `yaml:"enemy"`
	Xs          []float64   `yaml:"xs"` // Screen-width fractions
	Y           float64     `yaml:"y"`
	FrozenUntil float64     `yaml:"frozenUntil"`
	Speed       float64     `yaml:"speed"`
	Stop        float64     `yaml:"stop"`
	Return      float64     `yaml:"return"`
	Fires       PatternSpec `yaml:"fires"`
}

// BossSpec is the stage's final entity
type BossSpec struct {
	Enemy       string     `yaml:"enemy"`
	Spawn       [2]float64 `yaml:"spawn"`
	FrozenUntil float64    `yaml:"frozenUntil"`
	Speed       float64    `yaml:"speed"`
	Moves       []MoveSpec `yaml:"moves"`
}

type MoveSpec struct {
	Target   [2]float64  `yaml:"target"`
	Duration float64     `yaml:"duration"`
	Fires    PatternSpec `yaml:"fires"`
}

// PatternSpec mirrors component.FiresBulletsComponent in YAML form
type PatternSpec struct {
	Kind     string        `yaml:"kind"`
	Count    int           `yaml:"count"`
	Spread   float64       `yaml:"spread"`
	Rotation float64       `yaml:"rotation"`
	Step     float64       `yaml:"step"`
	Total    int           `yaml:"total"`
	Cooldown float64       `yaml:"cooldown"`
	Bullet   BulletSpec    `yaml:"bullet"`
	Patterns []PatternSpec `yaml:"patterns"`
}

type BulletSpec struct {
	Image  string  `yaml:"image"`
	Speed  float64 `yaml:"speed"`
	Colour []int   `yaml:"colour"` // Optional [r, g, b]
}

// LoadScripts parses and validates a stage file
func LoadScripts(data []byte) (*Scripts, error) {
	var s Scripts
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse stage scripts: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid stage scripts: %w", err)
	}
	return &s, nil
}

// DefaultScripts loads the built-in stages
func DefaultScripts() (*Scripts, error) {
	return LoadScripts(defaultScripts)
}

// Stage returns the script with the given id
func (s *Scripts) Stage(id int) (*Script, error) {
	for i := range s.Stages {
		if s.Stages[i].ID == id {
			return &s.Stages[i], nil
		}
	}
	return nil, fmt.Errorf("stage %d: %w", id, ErrUnknownStage)
}

// Next returns the id of the stage after id, false at the end
func (s *Scripts) Next(id int) (int, bool) {
	for i := range s.Stages {
		if s.Stages[i].ID == id && i+1 < len(s.Stages) {
			return s.Stages[i+1].ID, true
		}
	}
	return 0, false
}

// First returns the opening stage id
func (s *Scripts) First() int {
	if len(s.Stages) == 0 {
		return 0
	}
	return s.Stages[0].ID
}

func (s *Scripts) validate() error {
	if len(s.Stages) == 0 {
		return errors.New("no stages")
	}
	for name, e := range s.Enemies {
		img, err := asset.ImageByName(e.Image)
		if err != nil {
			return fmt.Errorf("enemy %q: %w", name, err)
		}
		if e.Health == 0 {
			return fmt.Errorf("enemy %q: health must be positive", name)
		}
		e.image = img
		s.Enemies[name] = e
	}

	seen := make(map[int]bool, len(s.Stages))
	for i := range s.Stages {
		st := &s.Stages[i]
		if seen[st.ID] {
			return fmt.Errorf("stage %d: duplicate id", st.ID)
		}
		seen[st.ID] = true
		if err := s.validateStage(st); err != nil {
			return fmt.Errorf("stage %d: %w", st.ID, err)
		}
	}
	return nil
}

func (s *Scripts) validateStage(st *Script) error {
	for i := range st.Backgrounds {
		bg := &st.Backgrounds[i]
		img, err := asset.ImageByName(bg.Image)
		if err != nil {
			return fmt.Errorf("background %d: %w", i, err)
		}
		bg.image = img
		if len(bg.Offsets) == 0 {
			bg.Offsets = []float64{0}
		}
	}

	for i, wv := range st.Waves {
		if _, ok := s.Enemies[wv.Enemy]; !ok {
			return fmt.Errorf("wave %d: unknown enemy %q", i, wv.Enemy)
		}
		if wv.Step <= 0 {
			return fmt.Errorf("wave %d: step must be positive", i)
		}
		if (len(wv.Curves) == 0) == (wv.Homing == nil) {
			return fmt.Errorf("wave %d: exactly one of curves or homing required", i)
		}
		for j, c := range wv.Curves {
			if _, err := c.build(); err != nil {
				return fmt.Errorf("wave %d curve %d: %w", i, j, err)
			}
		}
	}

	for i, g := range st.Gunners {
		if _, ok := s.Enemies[g.Enemy]; !ok {
			return fmt.Errorf("gunner %d: unknown enemy %q", i, g.Enemy)
		}
		if _, err := g.Fires.build(); err != nil {
			return fmt.Errorf("gunner %d: %w", i, err)
		}
	}

	if b := st.Boss; b != nil {
		if _, ok := s.Enemies[b.Enemy]; !ok {
			return fmt.Errorf("boss: unknown enemy %q", b.Enemy)
		}
		if len(b.Moves) == 0 {
			return errors.New("boss: no moves")
		}
		for i, m := range b.Moves {
			if _, err := m.Fires.build(); err != nil {
				return fmt.Errorf("boss move %d: %w", i, err)
			}
		}
	}
	return nil
}

// activations lists a wave's spawn times. Index-based so long waves do not drift
func (w WaveSpec) activations() []float64 {
	n := int(math.Ceil((w.To - w.From) / w.Step))
	out := make([]float64, 0, max(n, 0))
	for i := 0; ; i++ {
		t := w.From + float64(i)*w.Step
		if t >= w.To {
			return out
		}
		out = append(out, t)
	}
}

func (c CurveSpec) build() (physics.Curve, error) {
	switch c.Kind {
	case "horizontal":
		return physics.HorizontalCurve(c.Start, c.End, c.LeftToRight, c.Speed), nil
	case "vertical":
		return physics.VerticalCurve(c.Start, c.End, c.Speed), nil
	case "arc":
		return physics.ArcCurve(c.Y, c.Height, c.LeftToRight, c.Speed), nil
	}
	return physics.Curve{}, fmt.Errorf("unknown curve kind %q", c.Kind)
}

func (p PatternSpec) build() (component.FiresBulletsComponent, error) {
	if p.Kind == "multiple" {
		if len(p.Patterns) == 0 {
			return component.FiresBulletsComponent{}, errors.New("multiple: no patterns")
		}
		children := make([]component.FiresBulletsComponent, 0, len(p.Patterns))
		for i, child := range p.Patterns {
			c, err := child.build()
			if err != nil {
				return component.FiresBulletsComponent{}, fmt.Errorf("multiple[%d]: %w", i, err)
			}
			children = append(children, c)
		}
		return component.Multiple(children...), nil
	}

	bullet, err := p.Bullet.build()
	if err != nil {
		return component.FiresBulletsComponent{}, fmt.Errorf("%s: %w", p.Kind, err)
	}
	if p.Count <= 0 {
		return component.FiresBulletsComponent{}, fmt.Errorf("%s: count must be positive", p.Kind)
	}

	switch p.Kind {
	case "at_player":
		return component.AtPlayer(p.Count, p.Spread, bullet, p.Cooldown), nil
	case "circle":
		return component.Circle(p.Count, p.Rotation, p.Step, bullet, p.Cooldown), nil
	case "arc":
		if p.Total <= 0 {
			return component.FiresBulletsComponent{}, errors.New("arc: total must be positive")
		}
		return component.Arc(p.Rotation, p.Spread, p.Count, p.Total, bullet, p.Cooldown), nil
	}
	return component.FiresBulletsComponent{}, fmt.Errorf("unknown pattern kind %q", p.Kind)
}

func (b BulletSpec) build() (component.BulletSetup, error) {
	img, err := asset.ImageByName(b.Image)
	if err != nil {
		return component.BulletSetup{}, fmt.Errorf("bullet: %w", err)
	}
	setup := component.BulletSetup{Image: img, Speed: b.Speed}
	switch len(b.Colour) {
	case 0:
	case 3:
		for _, c := range b.Colour {
			if c < 0 || c > 255 {
				return component.BulletSetup{}, fmt.Errorf("bullet colour channel %d out of range", c)
			}
		}
		setup.Colour = &core.RGB{R: uint8(b.Colour[0]), G: uint8(b.Colour[1]), B: uint8(b.Colour[2])}
	default:
		return component.BulletSetup{}, fmt.Errorf("bullet colour needs 3 channels, got %d", len(b.Colour))
	}
	return setup, nil
}

func vec(p [2]float64) vmath.Vec2 {
	return vmath.V2(p[0], p[1])
}
