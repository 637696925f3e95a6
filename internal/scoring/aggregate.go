package scoring

import (
	"fmt"

	"chatfuture/internal/catalog"
	"chatfuture/internal/model"
)

// OverallScore is the arithmetic mean of every dimension value across all sets.
// Raw sums and percentages are mixed as-is.
func OverallScore(sets []model.ScoreSet) float64 {
	sum, n := 0, 0
	for _, s := range sets {
		for _, v := range s.Scores {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// Argmax returns the highest scoring dimension in declaration order; the first one wins ties
func Argmax(inst *model.Instrument, set model.ScoreSet) (string, int, bool) {
	best, bestScore, found := "", 0, false
	for _, key := range inst.DimensionKeys() {
		v, ok := set.Scores[key]
		if !ok {
			continue
		}
		if !found || v > bestScore {
			best, bestScore, found = key, v, true
		}
	}
	return best, bestScore, found
}

// Observations derives one finding per answered instrument plus the extraversion rule
func Observations(c *catalog.Catalog, sets []model.ScoreSet) []model.Observation {
	out := []model.Observation{}
	for _, set := range sets {
		if set.Answered == 0 {
			continue
		}
		inst, err := c.Instrument(set.Instrument)
		if err != nil {
			continue
		}
		key, score, ok := Argmax(inst, set)
		if !ok {
			continue
		}
		name := inst.DimensionName(key)

		obs := model.Observation{Instrument: set.Instrument, Dimension: key, Score: score}
		switch set.Instrument {
		case model.InstrumentInterest:
			obs.Text = fmt.Sprintf("你的主导职业兴趣类型是%s型（%s），得分%d", key, name, score)
		case model.InstrumentPersonality:
			obs.Text = fmt.Sprintf("你最突出的人格特质是%s，得分%d", name, score)
		case model.InstrumentValues:
			obs.Text = fmt.Sprintf("你最重视%s，在选择工作时应该考虑这一点", name)
		case model.InstrumentAptitude:
			obs.Text = fmt.Sprintf("你最突出的能力倾向是%s，得分%d", name, score)
		default:
			continue
		}
		out = append(out, obs)

		if set.Instrument == model.InstrumentPersonality && set.Scores["E"] > 0 {
			out = append(out, model.Observation{
				Instrument: set.Instrument,
				Dimension:  "E",
				Score:      set.Scores["E"],
				Text:       "你具有外向性特质，适合需要与人交流的工作",
			})
		}
	}
	return out
}
