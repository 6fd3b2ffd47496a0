package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// overrides mirrors the tunable configuration blocks. Keys that are absent
// from the document keep their current values.
type overrides struct {
	Screen  Config        `yaml:"screen"`
	Player  PlayerConfig  `yaml:"player"`
	Hitbox  HitboxConfig  `yaml:"hitbox"`
	Combat  CombatConfig  `yaml:"combat"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Arrow   ArrowConfig   `yaml:"arrow"`
	Bomb    BombConfig    `yaml:"bomb"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Debug   DebugConfig   `yaml:"debug"`
}

// LoadOverrides decodes a YAML document over the current configuration.
// Unknown keys are rejected. An empty document is not an error.
func LoadOverrides(r io.Reader) error {
	doc := overrides{
		Screen:  *C,
		Player:  Player,
		Hitbox:  Hitbox,
		Combat:  Combat,
		Enemy:   Enemy,
		Arrow:   Arrow,
		Bomb:    Bomb,
		Spawner: Spawner,
		Debug:   Debug,
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("failed to decode config overrides: %w", err)
	}

	if err := doc.validate(); err != nil {
		return err
	}

	screen := doc.Screen
	C = &screen
	Player = doc.Player
	Hitbox = doc.Hitbox
	Combat = doc.Combat
	Enemy = doc.Enemy
	Arrow = doc.Arrow
	Bomb = doc.Bomb
	Spawner = doc.Spawner
	Debug = doc.Debug
	return nil
}

// LoadOverridesFile opens path and applies it with LoadOverrides.
func LoadOverridesFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadOverrides(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func (o *overrides) validate() error {
	switch {
	case o.Screen.Width <= 0 || o.Screen.Height <= 0:
		return fmt.Errorf("screen size must be positive, got %dx%d", o.Screen.Width, o.Screen.Height)
	case o.Player.MaxHP < 1:
		return fmt.Errorf("player.max_hp must be at least 1, got %d", o.Player.MaxHP)
	case o.Player.DeflectHealThreshold < 1:
		return fmt.Errorf("player.deflect_heal_threshold must be at least 1, got %d", o.Player.DeflectHealThreshold)
	case o.Spawner.MinInterval > o.Spawner.MaxInterval:
		return fmt.Errorf("spawner.min_interval %.2f exceeds max_interval %.2f", o.Spawner.MinInterval, o.Spawner.MaxInterval)
	case o.Spawner.ArrowSpeedMin > o.Spawner.ArrowSpeedMax:
		return fmt.Errorf("spawner.arrow_speed_min %.2f exceeds arrow_speed_max %.2f", o.Spawner.ArrowSpeedMin, o.Spawner.ArrowSpeedMax)
	case o.Spawner.BombTimeMin > o.Spawner.BombTimeMax:
		return fmt.Errorf("spawner.bomb_time_min %.2f exceeds bomb_time_max %.2f", o.Spawner.BombTimeMin, o.Spawner.BombTimeMax)
	case o.Spawner.ArrowChance < 0 || o.Spawner.ArrowChance > 1:
		return fmt.Errorf("spawner.arrow_chance must be within [0, 1], got %.2f", o.Spawner.ArrowChance)
	}
	return nil
}
