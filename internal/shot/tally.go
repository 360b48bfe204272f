package shot

import (
	"math"

	"github.com/kennoath/rustparty/internal/geom"
)

// Tally keeps running statistics over a stream of shots. Means are updated
// incrementally so tallies from separate workers can be merged.
type Tally struct {
	Shots   int
	Clamped int

	MeanLanding      geom.Vec2
	MeanAlong        float32
	MeanLateral      float32
	MeanAbsDeviation float32

	MaxAbsDeviation float32
	MaxAbsLateral   float32
}

func (t *Tally) Add(s Shot) {
	t.Shots++
	if s.Clamped {
		t.Clamped++
	}
	k := 1 / float32(t.Shots)
	t.MeanLanding = t.MeanLanding.Lerp(s.Landing, k)
	t.MeanAlong = mix(t.MeanAlong, s.Along, k)
	t.MeanLateral = mix(t.MeanLateral, s.Lateral, k)

	dev := abs(s.Deviation)
	t.MeanAbsDeviation = mix(t.MeanAbsDeviation, dev, k)
	t.MaxAbsDeviation = max(t.MaxAbsDeviation, dev)
	t.MaxAbsLateral = max(t.MaxAbsLateral, abs(s.Lateral))
}

// Merge folds o into t, weighting means by shot count.
func (t *Tally) Merge(o Tally) {
	if o.Shots == 0 {
		return
	}
	n := t.Shots + o.Shots
	k := float32(o.Shots) / float32(n)
	t.MeanLanding = t.MeanLanding.Lerp(o.MeanLanding, k)
	t.MeanAlong = mix(t.MeanAlong, o.MeanAlong, k)
	t.MeanLateral = mix(t.MeanLateral, o.MeanLateral, k)
	t.MeanAbsDeviation = mix(t.MeanAbsDeviation, o.MeanAbsDeviation, k)
	t.MaxAbsDeviation = max(t.MaxAbsDeviation, o.MaxAbsDeviation)
	t.MaxAbsLateral = max(t.MaxAbsLateral, o.MaxAbsLateral)
	t.Shots = n
	t.Clamped += o.Clamped
}

func mix(a, b, k float32) float32 { return a*(1-k) + b*k }

func abs(x float32) float32 { return float32(math.Abs(float64(x))) }

type TallyReport struct {
	Weapon           string  `json:"weapon"`
	Shots            int     `json:"shots"`
	ClampedRatio     float64 `json:"clamped_ratio"`
	MeanLanding      Point   `json:"mean_landing"`
	MeanAlong        float32 `json:"mean_along"`
	MeanLateral      float32 `json:"mean_lateral"`
	MeanAbsDeviation float32 `json:"mean_abs_deviation"`
	MaxAbsDeviation  float32 `json:"max_abs_deviation"`
	MaxAbsLateral    float32 `json:"max_abs_lateral"`
}

func (t Tally) Report(weapon string) TallyReport {
	ratio := 0.0
	if t.Shots > 0 {
		ratio = float64(t.Clamped) / float64(t.Shots)
	}
	return TallyReport{
		Weapon:           weapon,
		Shots:            t.Shots,
		ClampedRatio:     ratio,
		MeanLanding:      pt(t.MeanLanding),
		MeanAlong:        t.MeanAlong,
		MeanLateral:      t.MeanLateral,
		MeanAbsDeviation: t.MeanAbsDeviation,
		MaxAbsDeviation:  t.MaxAbsDeviation,
		MaxAbsLateral:    t.MaxAbsLateral,
	}
}
