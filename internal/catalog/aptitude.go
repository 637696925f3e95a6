package catalog

import "chatfuture/internal/model"

// aptitudeInstrument is the self-rated aptitude inventory: 8 domains x 4 items
func aptitudeInstrument() *model.Instrument {
	opts := likertOptions("likert_", [5]string{"非常不符合/非常没把握", "不太符合/没把握", "一般/不确定", "比较符合/有把握", "非常符合/非常有把握"})
	return &model.Instrument{
		ID:          model.InstrumentAptitude,
		Name:        "能力倾向测评",
		Description: "基于自评的多维能力倾向画像（NR/VR/SP/LG/ME/AT/MM/CS）。",
		Kind:        model.ScoringLikertPercent,
		Dimensions: []model.Dimension{
			{Key: "NR", Name: "数理解题", Description: "计算、估算与数据理解能力"},
			{Key: "VR", Name: "文字表达", Description: "阅读理解与语言表达能力"},
			{Key: "SP", Name: "空间想象", Description: "空间构型与三维思维能力"},
			{Key: "LG", Name: "逻辑推理", Description: "形式化思维与问题分解能力"},
			{Key: "ME", Name: "机械动手", Description: "结构理解与动手排障能力"},
			{Key: "AT", Name: "细节敏感", Description: "持续注意与质量控制能力"},
			{Key: "MM", Name: "记忆保持", Description: "信息编码与长时回忆能力"},
			{Key: "CS", Name: "编程建模", Description: "抽象建模与实现调试能力"},
		},
		Questions: likertQuestions([]likertItem{
			{id: "apt_NR_001", dimension: "NR", text: "我能迅速估算折扣、税费或汇率换算。"},
			{id: "apt_NR_002", dimension: "NR", text: "面对复杂的数据表，我能提炼出关键趋势。"},
			{id: "apt_NR_003", dimension: "NR", text: "我喜欢解代数/概率类题目并能找到多种解法。"},
			{id: "apt_NR_004", dimension: "NR", text: "我能在压力下保持数字计算的准确性。"},

			{id: "apt_VR_001", dimension: "VR", text: "我能把专业材料改写成大众易懂的语言。"},
			{id: "apt_VR_002", dimension: "VR", text: "我擅长快速抓住文章主旨并总结要点。"},
			{id: "apt_VR_003", dimension: "VR", text: "我对用词、语法和逻辑连贯性很敏感。"},
			{id: "apt_VR_004", dimension: "VR", text: "我能在讨论中清晰表达并说服他人。"},

			{id: "apt_SP_001", dimension: "SP", text: "我能在脑海中把二维图变换为三维形体。"},
			{id: "apt_SP_002", dimension: "SP", text: "我能从不同视角想象物体的结构与装配顺序。"},
			{id: "apt_SP_003", dimension: "SP", text: "阅读工程图/地图时我能迅速定位与导航。"},
			{id: "apt_SP_004", dimension: "SP", text: "我擅长拼装模型或搭建乐高等结构。"},

			{id: "apt_LG_001", dimension: "LG", text: "我习惯用“前提-推理-结论”的结构解决问题。"},
			{id: "apt_LG_002", dimension: "LG", text: "我能发现论证中的谬误或隐藏假设。"},
			{id: "apt_LG_003", dimension: "LG", text: "我喜欢数独、逻辑推理或博弈类题目。"},
			{id: "apt_LG_004", dimension: "LG", text: "我能把复杂问题拆分成可执行的步骤。"},

			{id: "apt_ME_001", dimension: "ME", text: "我能判断简单机构的受力与运动趋势。"},
			{id: "apt_ME_002", dimension: "ME", text: "我动手能力强，能排查设备的常见故障。"},
			{id: "apt_ME_003", dimension: "ME", text: "我理解齿轮、杠杆、滑轮等原理并能应用。"},
			{id: "apt_ME_004", dimension: "ME", text: "我能根据材料与结构判断耐用性。"},

			{id: "apt_AT_001", dimension: "AT", text: "我能在文档/表格中迅速发现小错误。"},
			{id: "apt_AT_002", dimension: "AT", text: "我在重复性工作中也能长期保持稳定质量。"},
			{id: "apt_AT_003", dimension: "AT", text: "我会为任务建立清单并逐项校验。"},
			{id: "apt_AT_004", dimension: "AT", text: "我对格式、标点、单位与精度有严格要求。"},

			{id: "apt_MM_001", dimension: "MM", text: "我能快速记住新概念与其要点。"},
			{id: "apt_MM_002", dimension: "MM", text: "我记人名、术语与步骤的准确度较高。"},
			{id: "apt_MM_003", dimension: "MM", text: "我能在较长时间后准确回忆关键信息。"},
			{id: "apt_MM_004", dimension: "MM", text: "我擅长建立记忆术并迁移到新领域。"},

			{id: "apt_CS_001", dimension: "CS", text: "我能用代码把需求拆解为模块与函数。"},
			{id: "apt_CS_002", dimension: "CS", text: "我能阅读他人代码并进行调试与优化。"},
			{id: "apt_CS_003", dimension: "CS", text: "我理解常见数据结构与算法的使用场景。"},
			{id: "apt_CS_004", dimension: "CS", text: "我能把现实问题抽象成可计算的流程。"},
		}, opts),
	}
}
