package config

import (
	"errors"
	"fmt"
	"image/color"
)

// WindowConfig contains window and presentation values
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

// WorldConfig describes the level and its dimensions
type WorldConfig struct {
	Map          string  `yaml:"map"`
	TileLayer    string  `yaml:"tile_layer"` // Tiled maps only; empty = first tile layer
	Background   string  `yaml:"background"` // optional scrolled image
	TileSize     float64 `yaml:"tile_size"`
	Width        float64 `yaml:"width"`
	GroundOffset float64 `yaml:"ground_offset"`
}

// PhysicsConfig contains the global simulation values
type PhysicsConfig struct {
	TicksPerSecond int     `yaml:"ticks_per_second"`
	Gravity        float64 `yaml:"gravity"` // units per second, divided by TicksPerSecond each tick
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Sprite       string  `yaml:"sprite"`
	SpawnX       float64 `yaml:"spawn_x"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	JumpSpeed    float64 `yaml:"jump_speed"`
	Friction     float64 `yaml:"friction"`
}

// EnemySpawn is a world-space starting point for one enemy
type EnemySpawn struct {
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	VX float64 `yaml:"vx"`
}

// EnemyConfig contains enemy configuration
type EnemyConfig struct {
	Sprite string       `yaml:"sprite"`
	Spawns []EnemySpawn `yaml:"spawns"`
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	DeadZoneX float64 `yaml:"dead_zone_x"` // screen X past which the world scrolls
}

// InputConfig maps actions to ebiten key names (e.g. "ArrowLeft", "A", "Space")
type InputConfig struct {
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Jump       []string `yaml:"jump"`
	Quit       []string `yaml:"quit"`
	Fullscreen []string `yaml:"fullscreen"`
	Confirm    []string `yaml:"confirm"`
}

// ColorsConfig contains the draw colours used when no image is available
type ColorsConfig struct {
	Sky    color.RGBA `yaml:"-"`
	Tile   color.RGBA `yaml:"-"`
	Player color.RGBA `yaml:"-"`
	Enemy  color.RGBA `yaml:"-"`
	Text   color.RGBA `yaml:"-"`
}

// BannerConfig controls the level title that fades out after spawn
type BannerConfig struct {
	Text     string  `yaml:"text"`
	Duration float32 `yaml:"duration"` // seconds
}

// DebugConfig contains debug options
type DebugConfig struct {
	Overlay bool `yaml:"overlay"` // draw collision boxes and camera state
}

// Config holds the full game configuration. It is built once at startup
// and shared read-only by pointer.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Camera  CameraConfig  `yaml:"camera"`
	Input   InputConfig   `yaml:"input"`
	Banner  BannerConfig  `yaml:"banner"`
	Debug   DebugConfig   `yaml:"debug"`
	Colors  ColorsConfig  `yaml:"-"`
}

// GravityPerTick is the velocity added to a falling actor every tick.
func (c *Config) GravityPerTick() float64 {
	return c.Physics.Gravity / float64(c.Physics.TicksPerSecond)
}

// MaxScroll is the largest camera offset.
func (c *Config) MaxScroll() float64 {
	return c.World.Width - float64(c.Window.Width)
}

// MaxX is the largest screen X a player may occupy.
func (c *Config) MaxX() float64 {
	return float64(c.Window.Width) - c.World.TileSize
}

// GroundY is the top of an actor standing on the ground rows.
func (c *Config) GroundY() float64 {
	return float64(c.Window.Height) - c.World.GroundOffset - c.World.TileSize
}

var (
	ErrTileSize = errors.New("tile size must be positive")
	ErrWindow   = errors.New("window dimensions must be positive")
	ErrTPS      = errors.New("ticks per second must be positive")
)

// Validate checks the invariants the simulation depends on.
func (c *Config) Validate() error {
	if c.World.TileSize <= 0 {
		return ErrTileSize
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return ErrWindow
	}
	if c.Physics.TicksPerSecond <= 0 {
		return ErrTPS
	}
	if c.World.Width < float64(c.Window.Width) {
		return fmt.Errorf("world width %.0f is narrower than the window (%d)", c.World.Width, c.Window.Width)
	}
	if c.Camera.DeadZoneX < 0 || c.Camera.DeadZoneX > c.MaxX() {
		return fmt.Errorf("dead zone %.0f outside [0, %.0f]", c.Camera.DeadZoneX, c.MaxX())
	}
	if c.Player.MaxSpeed <= 0 {
		return errors.New("player max speed must be positive")
	}
	if c.Player.Friction < 0 {
		return errors.New("player friction must not be negative")
	}
	if c.Window.Scale <= 0 {
		return errors.New("window scale must be positive")
	}
	return nil
}

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black   = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SkyBlue = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	Brick   = color.RGBA{R: 136, G: 20, B: 0, A: 255}
	Red     = color.RGBA{R: 228, G: 52, B: 52, A: 255}
	Brown   = color.RGBA{R: 160, G: 82, B: 45, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)
