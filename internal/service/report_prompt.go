package service

import (
	"fmt"
	"sort"
	"strings"

	"chatfuture/internal/catalog"
	"chatfuture/internal/model"
)

const reportSystemPrompt = `你是一名资深职业规划师兼心理测评专家，具备深厚的心理学理论功底。

[测评理论基础]
1. RIASEC兴趣理论（霍兰德职业兴趣理论）：R现实型、I研究型、A艺术型、S社会型、E企业型、C常规型。
2. Big Five人格理论：O开放性、C尽责性、E外向性、A宜人性、N神经质。
3. 职业价值观：成就导向、独立性、认可度、人际关系、支持度、工作条件。
4. 能力倾向：数理推理、语言表达、空间想象、逻辑推理、机械理解、注意力细节、记忆力、计算技能。

[分数解释标准]
- 80%以上：高
- 60-79%：中等偏高
- 40-59%：中等
- 20-39%：中等偏低
- 20%以下：低

请以专业、温暖、易懂的语言，为用户生成精准的职业测评报告。报告需逻辑清晰、用语积极，避免标签化或负面描述。
请综合考虑用户的基本信息（年龄、性别、当前职业）与测评结果，给出适合用户当前阶段的发展建议。`

const reportTaskPrompt = `[分析目标]
1. 总体性格与职业类型概述（一句简短总结标签）。
2. 分别分析四个维度（兴趣 / 性格 / 价值观 / 能力）。
3. 推荐 3–5 个最匹配的职业，每个职业附 2–3 句解释其适配原因。
4. 给出发展建议。
5. 最后以一句鼓励性结语收尾。

[输出格式]
请严格按照以下 JSON 格式返回：
{
  "summary": "一句话总体印象",
  "interest_analysis": "...",
  "personality_analysis": "...",
  "values_analysis": "...",
  "ability_analysis": "...",
  "career_recommendations": [
    { "title": "职业名称", "reason": "推荐理由" }
  ],
  "development_advice": "...",
  "closing_message": "..."
}`

var reportSections = []struct {
	instrument model.InstrumentID
	title      string
}{
	{model.InstrumentInterest, "兴趣测评结果 - RIASEC理论"},
	{model.InstrumentPersonality, "性格测评结果 - Big Five理论"},
	{model.InstrumentValues, "价值观测评结果 - 职业价值观理论"},
	{model.InstrumentAptitude, "能力测评结果 - 核心能力倾向"},
}

// ScoreBand labels a 0..100 score for the narrative prompt
func ScoreBand(score int) string {
	switch {
	case score >= 80:
		return "高"
	case score >= 60:
		return "中等偏高"
	case score >= 40:
		return "中等"
	case score >= 20:
		return "中等偏低"
	default:
		return "低"
	}
}

// BuildReportPrompt renders the scores, highest first per instrument, and the optional profile
func BuildReportPrompt(c *catalog.Catalog, result *model.AssessmentResult, info *model.BasicInfo) string {
	var b strings.Builder
	b.WriteString(reportSystemPrompt)
	b.WriteString("\n\n[用户数据 User Inputs]\n以下是用户的测评结果：\n")

	if info != nil {
		if info.Name != "" {
			fmt.Fprintf(&b, "- 用户姓名：%s\n", info.Name)
		}
		fmt.Fprintf(&b, "- 性别：%s\n", model.GenderLabel(info.Gender))
		fmt.Fprintf(&b, "- 年龄范围：%s\n", model.AgeRangeLabel(info.AgeRange))
		if info.Occupation != "" {
			fmt.Fprintf(&b, "- 当前职业：%s\n", info.Occupation)
		}
	}
	b.WriteString("\n")

	for _, section := range reportSections {
		inst, err := c.Instrument(section.instrument)
		if err != nil {
			continue
		}
		set, _ := result.ScoreSet(section.instrument)
		fmt.Fprintf(&b, "[%s]\n", section.title)
		for _, d := range ranked(inst, set, true) {
			fmt.Fprintf(&b, "  - %s：%d%%（%s）\n", d.Name, d.Score, ScoreBand(d.Score))
		}
		b.WriteString("\n")
	}

	b.WriteString(reportTaskPrompt)
	return b.String()
}

// DefaultReport is served when the model reply cannot be parsed
func DefaultReport() *model.CareerReport {
	return &model.CareerReport{
		Summary:             "充满潜力的探索者",
		InterestAnalysis:    "您具有多样化的兴趣模式，在多个领域都表现出一定的兴趣。",
		PersonalityAnalysis: "您的性格特征显示出良好的平衡性，具备适应不同环境的能力。",
		ValuesAnalysis:      "您的价值观体系反映了对工作和生活质量的重视。",
		AbilityAnalysis:     "您的能力配置显示出在多个方面的潜力。",
		CareerRecommendations: []model.CareerRecommendation{
			{Title: "综合型职业", Reason: "基于您的多样化特征，建议考虑能够发挥多维度能力的综合型职业。"},
		},
		DevelopmentAdvice: "建议继续探索自己的兴趣方向，并在擅长的领域深入发展。",
		ClosingMessage:    "相信通过持续的学习和探索，您一定能够找到最适合自己的职业道路！",
	}
}

// mockReport is used when no API key is configured. It names the top dimensions so the page is not empty.
func mockReport(c *catalog.Catalog, result *model.AssessmentResult) *model.CareerReport {
	report := DefaultReport()
	summary := Summarize(c, result)
	if summary.DominantInterest != nil {
		report.InterestAnalysis = fmt.Sprintf("您的主导兴趣类型是%s（%d%%），%s",
			summary.DominantInterest.Name, summary.DominantInterest.Score, report.InterestAnalysis)
	}
	if len(summary.TopValues) > 0 {
		names := make([]string, 0, len(summary.TopValues))
		for _, v := range summary.TopValues {
			names = append(names, v.Name)
		}
		report.ValuesAnalysis = fmt.Sprintf("您最看重的是%s。%s", strings.Join(names, "、"), report.ValuesAnalysis)
	}
	if len(summary.Strengths) > 0 {
		top := append([]model.RankedDimension(nil), summary.Strengths...)
		sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
		report.AbilityAnalysis = fmt.Sprintf("您在%s方面表现突出。%s", top[0].Name, report.AbilityAnalysis)
	}
	return report
}
