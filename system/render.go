package system

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/lixenwraith/hectic/asset"
	"github.com/lixenwraith/hectic/constant"
	"github.com/lixenwraith/hectic/core"
	"github.com/lixenwraith/hectic/engine"
	"github.com/lixenwraith/hectic/parameter"
	"github.com/lixenwraith/hectic/render"
	"github.com/lixenwraith/hectic/vmath"
)

// HUD geometry
const (
	hudMargin      = 30.0
	hudTextOffset  = 60.0
	hudBarOffset   = 80.0
	hudBarWidth    = 16.0
	hudBarHeight   = 32.0
	hudBarPadding  = 4.0
	bossBarTop     = 10.0
	bossBarSpacing = 15.0
	menuLineHeight = 24.0
	debugLineStep  = 14.0
)

var (
	hudBarFill    = core.RGB{128, 32, 32}
	bombColour    = core.RGB{255, 240, 200}
	bossBarColour = core.RGB{200, 30, 30}
)

// RenderSystem fills the render buffer from world state, menu and debug
// toggles. It only writes the buffer; the frontend resets it after drawing
type RenderSystem struct {
	engine.SystemBase
}

func NewRenderSystem(world *engine.World) engine.System {
	s := &RenderSystem{SystemBase: engine.NewSystemBase(world)}
	s.Init()
	return s
}

func (s *RenderSystem) Init() {}

func (s *RenderSystem) Name() string { return "render" }

func (s *RenderSystem) Priority() int { return constant.PriorityRender }

func (s *RenderSystem) Update() {
	buf := s.Resource.Render.Buffer

	s.renderBackgrounds(buf)
	s.renderSprites(buf)
	s.renderBombs(buf)
	if s.Resource.Debug.Hitboxes {
		s.renderHitboxes(buf)
		s.renderStatus(buf)
	}
	s.renderUI(buf)
	s.renderMenu(buf)

	buf.SortByLayer()
}

func (s *RenderSystem) renderBackgrounds(buf *render.Buffer) {
	layers := s.World.Query().
		With(s.Component.BackgroundLayer).
		With(s.Component.Position).
		With(s.Component.Image).
		Execute()

	depth := func(e core.Entity) int {
		bg, _ := s.Component.BackgroundLayer.GetComponent(e)
		return bg.Depth
	}
	sort.SliceStable(layers, func(i, j int) bool { return depth(layers[i]) < depth(layers[j]) })

	for _, e := range layers {
		pos, _ := s.Component.Position.GetComponent(e)
		img, _ := s.Component.Image.GetComponent(e)
		buf.Sprite(img.Image, pos.Vec2, 0, core.RGB{}, 0, render.LayerBackground)
	}
}

func (s *RenderSystem) renderSprites(buf *render.Buffer) {
	now := s.Resource.Time.Total
	entities := s.World.Query().
		With(s.Component.Image).
		With(s.Component.Position).
		Without(s.Component.BackgroundLayer).
		Execute()

	for _, e := range entities {
		pos, _ := s.Component.Position.GetComponent(e)
		img, _ := s.Component.Image.GetComponent(e)

		var rotation float64
		if rot, ok := s.Component.Rotation.GetComponent(e); ok {
			rotation = rot.Angle
		}

		var overlay core.RGB
		var alpha float64
		if o, ok := s.Component.ColourOverlay.GetComponent(e); ok {
			overlay, alpha = o.Colour, o.Alpha
		}
		if inv, ok := s.Component.Invulnerability.GetComponent(e); ok && flashing(inv.Remaining(now)) {
			overlay, alpha = core.RGBWhite, parameter.InvulnerableTint
		}

		layer := render.LayerEntity
		if s.Component.Explosion.HasEntity(e) {
			layer = render.LayerEffect
		}
		buf.Sprite(img.Image, pos.Vec2, rotation, overlay, alpha, layer)
	}
}

// flashing reports whether an invulnerable sprite shows its tint: steadily while
// more than the blink threshold remains, then on alternate half-cycles
func flashing(remaining float64) bool {
	if remaining <= 0 {
		return false
	}
	if remaining > parameter.InvulnerableBlinkStart {
		return true
	}
	return math.Mod(remaining, parameter.InvulnerableBlinkCycle) > parameter.InvulnerableBlinkCycle/2
}

func (s *RenderSystem) renderBombs(buf *render.Buffer) {
	for _, e := range s.World.Query().With(s.Component.Bomb).With(s.Component.Position).Execute() {
		bomb, _ := s.Component.Bomb.GetComponent(e)
		pos, _ := s.Component.Position.GetComponent(e)
		buf.Circle(pos.Vec2, bomb.Radius, bombColour, render.LayerEffect)
	}
}

func (s *RenderSystem) renderHitboxes(buf *render.Buffer) {
	for _, e := range s.World.Query().With(s.Component.Hitbox).With(s.Component.Position).Execute() {
		box, _ := s.Component.Hitbox.GetComponent(e)
		pos, _ := s.Component.Position.GetComponent(e)
		size := vmath.V2(max(box.Half.X*2, 2), max(box.Half.Y*2, 2))
		buf.Box(pos.Vec2, size, core.RGBRed, 0.5, render.LayerDebug)
	}
}

func (s *RenderSystem) renderStatus(buf *render.Buffer) {
	y := debugLineStep
	buf.Text(fmt.Sprintf("t=%.2f frame=%d", s.Resource.Time.Total, s.Resource.Time.Frame),
		vmath.V2(4, y), 1, core.RGBWhite, render.AlignLeft, render.LayerDebug)
	for _, line := range s.Resource.Status.Lines() {
		y += debugLineStep
		buf.Text(line, vmath.V2(4, y), 1, core.RGBWhite, render.AlignLeft, render.LayerDebug)
	}
}

func (s *RenderSystem) renderUI(buf *render.Buffer) {
	cfg := s.Resource.Config
	baseline := cfg.Height - hudMargin

	for _, e := range s.World.Query().With(s.Component.Player).With(s.Component.Health).With(s.Component.PowerBar).Execute() {
		player, _ := s.Component.Player.GetComponent(e)
		health, _ := s.Component.Health.GetComponent(e)
		bar, _ := s.Component.PowerBar.GetComponent(e)

		// Player 1 anchors left, player 2 mirrors on the right
		x := func(offset float64) float64 { return offset }
		align := render.AlignLeft
		if player.Index == 1 {
			x = func(offset float64) float64 { return cfg.Width - offset }
			align = render.AlignRight
		}

		buf.Text(strconv.FormatUint(uint64(health.Points), 10), vmath.V2(x(hudTextOffset), baseline), 1.5, core.RGBWhite, align, render.LayerUI)
		buf.Sprite(asset.ImagePortrait, vmath.V2(x(hudMargin), baseline), 0, core.RGB{}, 0, render.LayerUI)

		inner := hudBarHeight - hudBarPadding
		fill := bar.Percent() * inner
		missing := (inner - fill) / 2
		buf.Box(vmath.V2(x(hudBarOffset), baseline), vmath.V2(hudBarWidth, hudBarHeight), core.RGBBlack, 1, render.LayerUI)
		buf.Box(vmath.V2(x(hudBarOffset), baseline+missing), vmath.V2(hudBarWidth-hudBarPadding, fill), hudBarFill, 1, render.LayerUI)
	}

	offset := bossBarTop
	bosses := s.World.Query().
		With(s.Component.Boss).
		With(s.Component.Health).
		Without(s.Component.FrozenUntil).
		Execute()
	for _, e := range bosses {
		health, _ := s.Component.Health.GetComponent(e)
		if health.MaxPoints == 0 {
			continue
		}
		width := cfg.Width * parameter.BossBarWidthRatio * float64(health.Points) / float64(health.MaxPoints)
		buf.Box(vmath.V2(cfg.Width/2, offset), vmath.V2(width, parameter.BossBarHeight), bossBarColour, 1, render.LayerUI)
		offset += bossBarSpacing
	}
}

func (s *RenderSystem) renderMenu(buf *render.Buffer) {
	menu := s.Resource.Menu
	cfg := s.Resource.Config
	center := vmath.V2(cfg.Width/2, cfg.Height/2)

	if menu.Dim {
		buf.Box(center, vmath.V2(cfg.Width, cfg.Height), core.RGBBlack, 0.6, render.LayerOverlay)
	}
	if menu.Banner != "" {
		buf.Text(menu.Banner, vmath.V2(center.X, cfg.Height/3), 2, core.RGBWhite, render.AlignCenter, render.LayerOverlay)
	}
	if !menu.Visible {
		return
	}

	top := center.Y - float64(len(menu.Items))*menuLineHeight/2
	if menu.Title != "" {
		buf.Text(menu.Title, vmath.V2(center.X, top-2*menuLineHeight), 2, core.RGBWhite, render.AlignCenter, render.LayerOverlay)
	}
	for i, item := range menu.Items {
		text := item.Text
		if i == menu.Selected {
			text = "> " + text
		}
		colour := core.RGBWhite
		if !item.Active {
			colour = core.RGBGrey
		}
		buf.Text(text, vmath.V2(center.X, top+float64(i)*menuLineHeight), 1.5, colour, render.AlignCenter, render.LayerOverlay)
	}
}
