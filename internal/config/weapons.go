package config

import "github.com/kennoath/rustparty/internal/geom"

type WeaponsConfig struct {
	Arena   ArenaDef    `yaml:"arena"`
	Weapons []WeaponDef `yaml:"weapons"`
}

// ArenaDef bounds every landing point. Min is checked before Max.
type ArenaDef struct {
	Min Vec2Def `yaml:"min"`
	Max Vec2Def `yaml:"max"`
}

type WeaponDef struct {
	ID     string  `yaml:"id"`
	Name   string  `yaml:"name"`
	Origin Vec2Def `yaml:"origin"`
	Aim    Vec2Def `yaml:"aim"`
	Spread float64 `yaml:"spread"` // radians, half-width of the cone
	Speed  float64 `yaml:"speed"`
	Flight float64 `yaml:"flight"` // seconds
	Note   string  `yaml:"note"`
}

type Vec2Def struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (d Vec2Def) Vec() geom.Vec2 { return geom.New(float32(d.X), float32(d.Y)) }

func (c *WeaponsConfig) Find(id string) (WeaponDef, bool) {
	for _, w := range c.Weapons {
		if w.ID == id {
			return w, true
		}
	}
	return WeaponDef{}, false
}
