package sprites

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/rario/config"
	"github.com/automoto/rario/gamemath"
)

type fakeTexture struct {
	freed bool
}

func (f *fakeTexture) Bounds() image.Rectangle { return image.Rect(0, 0, 16, 16) }
func (f *fakeTexture) Deallocate()             { f.freed = true }

var ground = gamemath.Rect{X: 0, Y: 200, W: 254, H: 16}

// step runs one frame of the vertical pass against the ground strip.
func step(a Actor, keys Keys) Outcome {
	a.MoveMutate(AxisY)
	if a.Rect().Overlaps(ground) {
		a.HandleCollision(AxisY, ground)
	}
	return a.Update(keys)
}

func TestMoveDirBounded(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, 0, 0, nil)

	for range 100 {
		p.MoveDir(1)
		assert.LessOrEqual(t, math.Abs(p.VX), cfg.Player.MaxSpeed)
	}
	assert.Equal(t, 1.0, p.VX)

	for range 200 {
		p.MoveDir(-1)
		assert.LessOrEqual(t, math.Abs(p.VX), cfg.Player.MaxSpeed)
	}
	assert.Equal(t, -1.0, p.VX)
}

func TestJump(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, 40, 184, nil)

	t.Run("airborne jump is ignored", func(t *testing.T) {
		p.VY = 1.5
		p.Jump()
		assert.Equal(t, 1.5, p.VY)
		assert.True(t, p.Falling)
	})

	t.Run("grounded jump", func(t *testing.T) {
		p.Falling = false
		p.VY = 0
		p.Jump()
		assert.Equal(t, -3.4, p.VY)
		assert.True(t, p.Falling)

		p.Jump()
		assert.Equal(t, -3.4, p.VY)
	})
}

func TestMoveMutate(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, 10, 50, nil)
	p.VX = 0.5
	p.VY = 1

	p.MoveMutate(AxisX)
	assert.Equal(t, 10.5, p.X)
	assert.Equal(t, 50.0, p.Y)

	p.MoveMutate(AxisY)
	assert.Equal(t, 51.0, p.Y)
	assert.InDelta(t, 1+cfg.GravityPerTick(), p.VY, 1e-12)

	p.Falling = false
	p.MoveMutate(AxisY)
	assert.Equal(t, 51.0, p.Y)
}

func TestPlayerHandleCollision(t *testing.T) {
	cfg := config.Default()
	tile := gamemath.Rect{X: 100, Y: 100, W: 16, H: 16}

	t.Run("moving right", func(t *testing.T) {
		p := NewPlayer(cfg, 90, 100, nil)
		p.VX = 0.8
		p.HandleCollision(AxisX, tile)
		assert.Equal(t, 84.0, p.X)
		assert.Zero(t, p.VX)
	})

	t.Run("moving left", func(t *testing.T) {
		p := NewPlayer(cfg, 110, 100, nil)
		p.VX = -0.8
		p.HandleCollision(AxisX, tile)
		assert.Equal(t, 116.0, p.X)
		assert.Zero(t, p.VX)
	})

	t.Run("landing", func(t *testing.T) {
		p := NewPlayer(cfg, 100, 86, nil)
		p.VY = 2
		p.HandleCollision(AxisY, tile)
		assert.Equal(t, 84.0, p.Y)
		assert.Zero(t, p.VY)
		assert.False(t, p.Falling)
	})

	t.Run("head bump", func(t *testing.T) {
		p := NewPlayer(cfg, 100, 110, nil)
		p.VY = -2
		p.HandleCollision(AxisY, tile)
		assert.Equal(t, 116.0, p.Y)
		assert.Zero(t, p.VY)
		assert.True(t, p.Falling)
	})

	t.Run("vertical ignored when grounded", func(t *testing.T) {
		p := NewPlayer(cfg, 100, 90, nil)
		p.Falling = false
		p.VY = 2
		p.HandleCollision(AxisY, tile)
		assert.Equal(t, 90.0, p.Y)
		assert.Equal(t, 2.0, p.VY)
	})
}

func TestEnemyBounce(t *testing.T) {
	cfg := config.Default()
	wall := gamemath.Rect{X: 0, Y: 184, W: 16, H: 16}

	t.Run("walking left", func(t *testing.T) {
		e := NewEnemy(cfg, 15.5, 184, -0.5, nil)
		e.HandleCollision(AxisX, wall)
		assert.Equal(t, 16.0, e.X)
		assert.Equal(t, 0.5, e.VX)
	})

	t.Run("walking right", func(t *testing.T) {
		e := NewEnemy(cfg, -15.5, 184, 0.5, nil)
		e.HandleCollision(AxisX, wall)
		assert.Equal(t, -16.0, e.X)
		assert.Equal(t, -0.5, e.VX)
	})

	t.Run("negative zero counts as left", func(t *testing.T) {
		e := NewEnemy(cfg, 10, 184, math.Copysign(0, -1), nil)
		e.HandleCollision(AxisX, wall)
		assert.Equal(t, 16.0, e.X)
	})

	t.Run("vertical uses the default", func(t *testing.T) {
		e := NewEnemy(cfg, 0, 170, -0.5, nil)
		e.VY = 1
		e.HandleCollision(AxisY, wall)
		assert.Equal(t, 168.0, e.Y)
		assert.False(t, e.Falling)
		assert.Equal(t, -0.5, e.VX)
	})
}

func TestEnemyUpdate(t *testing.T) {
	cfg := config.Default()
	e := NewEnemy(cfg, -50, 500, -0.5, nil)
	e.Falling = false

	assert.Equal(t, OutcomeRunning, e.Update(Keys{}))
	assert.True(t, e.Falling)
	assert.Equal(t, -50.0, e.X)
}

func TestPlayerAtRest(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, 40, cfg.GroundY(), nil)

	for i := range 10 {
		require.Equal(t, OutcomeRunning, step(p, Keys{}), "tick %d", i)
		assert.Equal(t, 184.0, p.Y, "tick %d", i)
		assert.Equal(t, 40.0, p.X, "tick %d", i)
		assert.Zero(t, p.VX, "tick %d", i)
	}
}

func TestPlayerFrictionOnGround(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, 40, cfg.GroundY(), nil)
	p.VX = 1

	for range 20 {
		p.MoveMutate(AxisX)
		step(p, Keys{})
	}
	assert.Zero(t, p.VX)
}

func TestPlayerClamp(t *testing.T) {
	cfg := config.Default()

	p := NewPlayer(cfg, -3, 0, nil)
	p.VX = -1
	p.Update(Keys{Left: true})
	assert.Zero(t, p.X)
	assert.Zero(t, p.VX)

	p = NewPlayer(cfg, 250, 0, nil)
	p.VX = 1
	p.Update(Keys{Right: true})
	assert.Equal(t, 238.0, p.X)
}

func TestPlayerLostOnce(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg, 40, 100, nil)

	assert.Equal(t, OutcomeRunning, p.Update(Keys{}))

	p.Y = float64(cfg.Window.Height) + 1
	assert.Equal(t, OutcomeLost, p.Update(Keys{}))
	assert.True(t, p.Fell())

	p.Y += 50
	assert.Equal(t, OutcomeRunning, p.Update(Keys{}))
}

func TestDispose(t *testing.T) {
	cfg := config.Default()
	tex := &fakeTexture{}
	e := NewEnemy(cfg, 0, 0, 0, tex)

	e.Dispose()
	assert.True(t, tex.freed)
	assert.Nil(t, e.Texture)

	e.Dispose()
}

func TestActorVariants(t *testing.T) {
	cfg := config.Default()
	actors := []Actor{NewPlayer(cfg, 1, 2, nil), NewEnemy(cfg, 3, 4, 0.5, nil)}

	for _, a := range actors {
		assert.Same(t, a.Base(), a.Base())
		assert.Equal(t, gamemath.Rect{X: a.Base().X, Y: a.Base().Y, W: 16, H: 16}, a.Rect())
	}
	assert.Equal(t, "lost", OutcomeLost.String())
	assert.Equal(t, "y", AxisY.String())
}
