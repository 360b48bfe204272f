// Package shot fires projectiles through a spread cone and aggregates where
// they land. Positions and directions use screen space (Y down).
package shot

import (
	"encoding/json"
	"math"

	"github.com/kennoath/rustparty/internal/config"
	"github.com/kennoath/rustparty/internal/geom"
	"github.com/kennoath/rustparty/internal/util"
)

type Weapon struct {
	ID     string
	Origin geom.Vec2
	Aim    geom.Vec2
	Spread float32
	Speed  float32
	Flight float32
}

type Arena struct {
	Min, Max geom.Vec2
}

func NewWeapon(d config.WeaponDef) Weapon {
	return Weapon{
		ID:     d.ID,
		Origin: d.Origin.Vec(),
		Aim:    d.Aim.Vec(),
		Spread: float32(d.Spread),
		Speed:  float32(d.Speed),
		Flight: float32(d.Flight),
	}
}

func NewArena(d config.ArenaDef) Arena {
	return Arena{Min: d.Min.Vec(), Max: d.Max.Vec()}
}

type Shot struct {
	Weapon   string
	Dir      geom.Vec2 // unit length unless the weapon has no aim
	Velocity geom.Vec2
	Landing  geom.Vec2
	Clamped  bool // the arena moved the landing point

	Along     float32 // distance travelled along the aim
	Lateral   float32 // sideways drift, positive to the right of the aim
	Deviation float32 // radians from aim to Dir, positive clockwise
}

// Fire shoots w once. A zero aim stays zero through Normalize, so the shot
// has no velocity and lands on the (clamped) origin.
func Fire(src util.Source, w Weapon, arena Arena) Shot {
	aim := w.Aim.Normalize()
	dir := aim.SpreadWith(src, w.Spread)
	vel := dir.MulScalar(w.Speed)

	free := w.Origin.Add(vel.MulScalar(w.Flight))
	land := free.Clamp(arena.Min, arena.Max)
	offset := land.Sub(w.Origin)

	return Shot{
		Weapon:    w.ID,
		Dir:       dir,
		Velocity:  vel,
		Landing:   land,
		Clamped:   land != free,
		Along:     offset.Proj(aim),
		Lateral:   offset.Proj(aim.Rotate(math.Pi / 2)),
		Deviation: deviation(aim, dir),
	}
}

func deviation(aim, dir geom.Vec2) float32 {
	cross := aim.X*dir.Y - aim.Y*dir.X
	return float32(math.Atan2(float64(cross), float64(aim.Dot(dir))))
}

func RunVolley(src util.Source, w Weapon, arena Arena, n int) Tally {
	var t Tally
	for i := 0; i < n; i++ {
		t.Add(Fire(src, w, arena))
	}
	return t
}

type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func pt(v geom.Vec2) Point { return Point{X: v.X, Y: v.Y} }

type ShotReport struct {
	Weapon    string  `json:"weapon"`
	Dir       Point   `json:"dir"`
	Velocity  Point   `json:"velocity"`
	Landing   Point   `json:"landing"`
	Clamped   bool    `json:"clamped"`
	Along     float32 `json:"along"`
	Lateral   float32 `json:"lateral"`
	Deviation float32 `json:"deviation"`
}

func (s Shot) Report() ShotReport {
	return ShotReport{
		Weapon:    s.Weapon,
		Dir:       pt(s.Dir),
		Velocity:  pt(s.Velocity),
		Landing:   pt(s.Landing),
		Clamped:   s.Clamped,
		Along:     s.Along,
		Lateral:   s.Lateral,
		Deviation: s.Deviation,
	}
}

func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
