package render

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	"github.com/automoto/lockstrike/components"
	cfg "github.com/automoto/lockstrike/config"
	"github.com/automoto/lockstrike/fonts"
	"github.com/automoto/lockstrike/game"
	"github.com/automoto/lockstrike/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// RunResult is the outcome shown on the end screen.
type RunResult struct {
	Victory bool
	Score   int
	Wave    int
}

// HUD keeps the latest values pushed by the simulation and draws them.
type HUD struct {
	score     int
	health    int
	maxHealth int
	wave      int
	total     int
	progress  float64
	active    map[cfg.PowerUpKind]float64

	banner      *gween.Tween
	bannerAlpha float64
	bannerText  string

	result *RunResult
}

var _ game.Notifier = (*HUD)(nil)

func NewHUD() *HUD {
	return &HUD{active: map[cfg.PowerUpKind]float64{}}
}

func (h *HUD) UpdateScoreDisplay(score int) {
	h.score = score
}

func (h *HUD) UpdateHealthDisplay(health, maxHealth int) {
	h.health = health
	h.maxHealth = maxHealth
}

func (h *HUD) UpdateWaveDisplay(wave, totalWaves int, progress float64) {
	if wave != h.wave {
		h.showBanner(fmt.Sprintf("WAVE %d", wave))
	}
	h.wave = wave
	h.total = totalWaves
	h.progress = progress
}

func (h *HUD) UpdatePowerUpDisplay(active map[cfg.PowerUpKind]float64) {
	h.active = active
}

func (h *HUD) OnGameOver(finalScore, finalWave int) {
	h.result = &RunResult{Score: finalScore, Wave: finalWave}
}

func (h *HUD) OnVictory(finalScore, finalWave int) {
	h.result = &RunResult{Victory: true, Score: finalScore, Wave: finalWave}
	h.showBanner("VICTORY")
}

// Watch shows a banner when a wave's kill quota is met in w.
func (h *HUD) Watch(w donburi.World) {
	systems.WaveCompleted.Subscribe(w, func(_ donburi.World, ev systems.WaveCompleteEvent) {
		h.showBanner(fmt.Sprintf("WAVE %d CLEAR", ev.Wave))
	})
}

// Result returns the end of run outcome, nil while the run is going.
func (h *HUD) Result() *RunResult {
	return h.result
}

// Reset clears the end of run state for a new run.
func (h *HUD) Reset() {
	h.result = nil
	h.wave = 0
}

func (h *HUD) showBanner(s string) {
	h.bannerText = s
	h.bannerAlpha = 1
	h.banner = gween.New(1, 0, float32(cfg.HUD.BannerDuration), ease.InQuad)
}

// Update advances the banner fade by dt seconds.
func (h *HUD) Update(dt float64) {
	if h.banner == nil {
		return
	}
	alpha, finished := h.banner.Update(float32(dt))
	h.bannerAlpha = float64(alpha)
	if finished {
		h.banner = nil
		h.bannerAlpha = 0
	}
}

// HealthRatio is the health bar fill in [0, 1].
func (h *HUD) HealthRatio() float64 {
	health := components.HealthData{Current: h.health, Max: h.maxHealth}
	return health.Fraction()
}

// PowerUpLines formats the active buffs in a stable order.
func (h *HUD) PowerUpLines() []string {
	kinds := make([]cfg.PowerUpKind, 0, len(h.active))
	for kind := range h.active {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)

	lines := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		lines = append(lines, fmt.Sprintf("%s %.1fs", strings.ToUpper(kind.String()), h.active[kind]))
	}
	return lines
}

// Draw renders the HUD. It matches ecs.Renderer via DrawFunc.
func (h *HUD) Draw(screen *ebiten.Image) {
	width := float64(screen.Bounds().Dx())
	margin := cfg.HUD.Margin
	regular := fonts.Regular.Get()
	small := fonts.Small.Get()

	// Health bar
	vector.FillRect(screen, float32(margin), float32(margin),
		float32(cfg.HUD.HealthBarWidth), float32(cfg.HUD.HealthBarHeight),
		cfg.HUD.HealthBgColor, false)
	vector.FillRect(screen, float32(margin), float32(margin),
		float32(cfg.HUD.HealthBarWidth*h.HealthRatio()), float32(cfg.HUD.HealthBarHeight),
		cfg.HUD.HealthColor, false)
	text.Draw(screen, fmt.Sprintf("%d/%d", h.health, h.maxHealth), small,
		int(margin+4), int(margin+cfg.HUD.HealthBarHeight-3), cfg.HUD.TextColor)

	// Score, right aligned
	score := fmt.Sprintf("SCORE %d", h.score)
	drawTextRight(screen, score, regular, int(width-margin), int(margin+cfg.HUD.FontSize), cfg.HUD.TextColor)

	// Wave and its progress bar
	waveY := margin + cfg.HUD.HealthBarHeight + cfg.HUD.FontSize + 8
	text.Draw(screen, fmt.Sprintf("WAVE %d/%d", h.wave, h.total), regular, int(margin), int(waveY), cfg.HUD.TextColor)
	barY := waveY + 6
	vector.FillRect(screen, float32(margin), float32(barY),
		float32(cfg.HUD.HealthBarWidth), float32(cfg.HUD.ProgressHeight), cfg.HUD.HealthBgColor, false)
	vector.FillRect(screen, float32(margin), float32(barY),
		float32(cfg.HUD.HealthBarWidth*h.progress), float32(cfg.HUD.ProgressHeight), cfg.HUD.ProgressColor, false)

	// Active power-ups under the score
	for i, line := range h.PowerUpLines() {
		y := margin + cfg.HUD.FontSize*float64(i+2) + 4
		drawTextRight(screen, line, small, int(width-margin), int(y), cfg.HUD.TextColor)
	}

	if h.bannerAlpha > 0 {
		drawTextCentered(screen, h.bannerText, fonts.Title.Get(), int(float64(screen.Bounds().Dy())*0.3), withAlpha(cfg.Menu.TitleColor, h.bannerAlpha))
	}
}

// DrawFunc adapts Draw to a donburi ecs renderer.
func (h *HUD) DrawFunc() func(e *ecs.ECS, screen *ebiten.Image) {
	return func(_ *ecs.ECS, screen *ebiten.Image) {
		h.Draw(screen)
	}
}

func drawTextRight(screen *ebiten.Image, s string, face font.Face, right, y int, clr color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, right-bounds.Dx(), y, clr)
}

func drawTextCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	bounds := text.BoundString(face, s) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, clr)
}
