package config

// Default returns the stock configuration: a 254x224 window over a
// 3392-wide world of 16px tiles.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Super Rario Bros",
			Width:  254,
			Height: 224,
			Scale:  3,
		},
		World: WorldConfig{
			Map:          "res/map.txt",
			TileSize:     16,
			Width:        3392,
			GroundOffset: 24,
		},
		Physics: PhysicsConfig{
			TicksPerSecond: 60,
			Gravity:        9.80665 / 2,
		},
		Player: PlayerConfig{
			Sprite:       "res/rario.bmp",
			SpawnX:       0,
			Acceleration: 0.02,
			MaxSpeed:     1.0,
			JumpSpeed:    3.4,
			Friction:     0.2,
		},
		Enemy: EnemyConfig{
			Sprite: "res/goomba.bmp",
			Spawns: []EnemySpawn{
				{X: 480, Y: 184, VX: -0.5},
				{X: 800, Y: 184, VX: -0.5},
			},
		},
		Camera: CameraConfig{
			DeadZoneX: 80,
		},
		Input: InputConfig{
			Left:       []string{"ArrowLeft", "A"},
			Right:      []string{"ArrowRight", "D"},
			Jump:       []string{"ArrowUp", "W", "Space"},
			Quit:       []string{"Escape"},
			Fullscreen: []string{"F11"},
			Confirm:    []string{"Enter", "Space"},
		},
		Banner: BannerConfig{
			Text:     "WORLD 1-1",
			Duration: 2,
		},
		Colors: ColorsConfig{
			Sky:    SkyBlue,
			Tile:   Brick,
			Player: Red,
			Enemy:  Brown,
			Text:   White,
		},
	}
}
