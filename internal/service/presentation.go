package service

import (
	"sort"

	"chatfuture/internal/catalog"
	"chatfuture/internal/model"
	"chatfuture/internal/scoring"
)

const (
	topValuesCount    = 3
	strengthThreshold = 70
)

// Summarize derives the ranked views shown next to the raw scores.
// Rankings are stable, so equal scores keep catalog order.
func Summarize(c *catalog.Catalog, result *model.AssessmentResult) *model.ResultSummary {
	summary := &model.ResultSummary{
		PersonalityLevels: []model.RankedDimension{},
		TopValues:         []model.RankedDimension{},
		Strengths:         []model.RankedDimension{},
	}
	if result == nil {
		return summary
	}

	if inst, err := c.Instrument(model.InstrumentInterest); err == nil && result.Interest.Answered > 0 {
		if key, score, ok := scoring.Argmax(inst, result.Interest); ok {
			summary.DominantInterest = &model.RankedDimension{Key: key, Name: inst.DimensionName(key), Score: score}
		}
	}

	if inst, err := c.Instrument(model.InstrumentPersonality); err == nil {
		for _, d := range ranked(inst, result.Personality, false) {
			d.Level = personalityLevel(d.Score)
			summary.PersonalityLevels = append(summary.PersonalityLevels, d)
		}
	}

	if inst, err := c.Instrument(model.InstrumentValues); err == nil {
		values := ranked(inst, result.Values, true)
		if len(values) > topValuesCount {
			values = values[:topValuesCount]
		}
		summary.TopValues = append(summary.TopValues, values...)
	}

	if inst, err := c.Instrument(model.InstrumentAptitude); err == nil {
		for _, d := range ranked(inst, result.Aptitude, true) {
			if d.Score >= strengthThreshold {
				summary.Strengths = append(summary.Strengths, d)
			}
		}
	}
	return summary
}

func ranked(inst *model.Instrument, set model.ScoreSet, byScore bool) []model.RankedDimension {
	out := make([]model.RankedDimension, 0, len(inst.Dimensions))
	for _, d := range inst.Dimensions {
		out = append(out, model.RankedDimension{Key: d.Key, Name: d.Name, Score: set.Scores[d.Key]})
	}
	if byScore {
		sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	}
	return out
}

func personalityLevel(score int) string {
	switch {
	case score >= 80:
		return "高"
	case score >= 60:
		return "中等"
	default:
		return "一般"
	}
}
