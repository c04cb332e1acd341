package config

import "image/color"

// CameraConfig contains chase camera configuration
type CameraConfig struct {
	Height          float64 // world units above the player
	Distance        float64 // world units behind the player
	FocalLength     float64 // pixels per world unit at depth 1
	HorizonY        float64 // fraction of the screen height
	FollowSmoothing float64 // how fast the camera follows the player (0.0-1.0)
	NearPlane       float64
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	PlayerDamageIntensity float64 // pixels
	PlayerDamageDuration  int     // frames
	ExplosionIntensity    float64
	ExplosionDuration     int
}

// RenderConfig contains colors and sizes used by the window host
type RenderConfig struct {
	SkyTop        color.RGBA
	SkyBottom     color.RGBA
	Ground        color.RGBA
	GridLine      color.RGBA
	GridSpacing   float64
	PlayerColor   color.RGBA
	PlayerRadius  float64
	ShotColor     color.RGBA
	EnemyShot     color.RGBA
	ShotRadius    float64
	LockColor     color.RGBA
	ShieldColor   color.RGBA
	ExplosionTint color.RGBA
	HitTint       color.RGBA
}

// HUDConfig contains HUD layout configuration
type HUDConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64
	ProgressHeight  float64
	FontSize        float64
	TitleFontSize   float64
	HealthColor     color.RGBA
	HealthBgColor   color.RGBA
	ProgressColor   color.RGBA
	TextColor       color.RGBA
	BannerDuration  float64 // seconds the wave banner stays up
}

// MenuConfig contains menu screen configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	PanelColor      color.RGBA
	TitleColor      color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	ButtonWidth     int
	ButtonHeight    int
	VolumeSteps     []float64
}

var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var Render RenderConfig
var HUD HUDConfig
var Menu MenuConfig

func init() {
	Camera = CameraConfig{
		Height:          6,
		Distance:        10,
		FocalLength:     520,
		HorizonY:        0.38,
		FollowSmoothing: 0.1,
		NearPlane:       0.5,
	}

	ScreenShake = ScreenShakeConfig{
		PlayerDamageIntensity: 6,
		PlayerDamageDuration:  12,
		ExplosionIntensity:    2,
		ExplosionDuration:     6,
	}

	Render = RenderConfig{
		SkyTop:        color.RGBA{R: 8, G: 10, B: 30, A: 255},
		SkyBottom:     color.RGBA{R: 60, G: 30, B: 80, A: 255},
		Ground:        color.RGBA{R: 20, G: 18, B: 36, A: 255},
		GridLine:      color.RGBA{R: 200, G: 60, B: 220, A: 255},
		GridSpacing:   5,
		PlayerColor:   LightBlue,
		PlayerRadius:  0.9,
		ShotColor:     Yellow,
		EnemyShot:     LightRed,
		ShotRadius:    0.25,
		LockColor:     BrightGreen,
		ShieldColor:   color.RGBA{R: 100, G: 180, B: 255, A: 90},
		ExplosionTint: BrightOrange,
		HitTint:       White,
	}

	HUD = HUDConfig{
		HealthBarWidth:  220,
		HealthBarHeight: 16,
		Margin:          16,
		ProgressHeight:  6,
		FontSize:        16,
		TitleFontSize:   42,
		HealthColor:     BrightGreen,
		HealthBgColor:   color.RGBA{R: 60, G: 60, B: 60, A: 200},
		ProgressColor:   Orange,
		TextColor:       White,
		BannerDuration:  2,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		PanelColor:      color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TitleColor:      Orange,
		ButtonIdle:      color.RGBA{R: 40, G: 50, B: 90, A: 255},
		ButtonHover:     color.RGBA{R: 70, G: 90, B: 150, A: 255},
		ButtonPressed:   color.RGBA{R: 255, G: 140, B: 0, A: 255},
		ButtonWidth:     220,
		ButtonHeight:    40,
		VolumeSteps:     []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
