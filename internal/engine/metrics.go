// Package engine turns fetched rows into the derived view models the
// dashboard renders. Every function is pure over its input row set;
// "now" comes in through a worktime.Clock.
package engine

import (
	"math"
	"time"

	"dashboard-engine/internal/model"
	"dashboard-engine/internal/worktime"
)

func round1(v float64) float64 { return math.Round(v*10) / 10 }

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func daysBetween(start, end time.Time) float64 {
	return math.Abs(end.Sub(start).Hours()) / 24
}

// TimeMetrics averages the stage durations over a deal set, in calendar
// days with one decimal. Each average runs over its own eligible
// subset:
//
//   - total needs start and finish;
//   - engineering needs fim_operacoes and fim_engenharia;
//   - operations needs all four stamps, and is the pipeline time spent
//     outside engineering: (fim_operacoes - start) + (finish - fim_engenharia).
//
// An empty subset yields 0, never NaN.
func TimeMetrics(deals []model.Deal) model.TimeMetrics {
	var (
		totalSum, opsSum, engSum float64
		totalN, opsN, engN       int
	)

	for _, d := range deals {
		start, hasStart := worktime.ParseStamp(d.StartDate)
		finish, hasFinish := worktime.ParseStamp(d.FinishDate)
		fimOps, hasFimOps := worktime.ParseStamp(d.FimOperacoes)
		fimEng, hasFimEng := worktime.ParseStamp(d.FimEngenharia)

		if hasStart && hasFinish {
			totalSum += daysBetween(start, finish)
			totalN++
		}
		if hasFimOps && hasFimEng {
			engSum += daysBetween(fimOps, fimEng)
			engN++
		}
		if hasStart && hasFimOps && hasFimEng && hasFinish {
			opsSum += daysBetween(start, fimOps) + daysBetween(fimEng, finish)
			opsN++
		}
	}

	m := model.TimeMetrics{}
	if totalN > 0 {
		m.Total = round1(totalSum / float64(totalN))
	}
	if opsN > 0 {
		m.Operations = round1(opsSum / float64(opsN))
	}
	if engN > 0 {
		m.Engineering = round1(engSum / float64(engN))
	}
	return m
}
