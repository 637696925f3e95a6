package catalog

import "chatfuture/internal/model"

// interestInstrument is the RIASEC (Holland) interest inventory: 6 types x 6 items
func interestInstrument() *model.Instrument {
	opts := likertOptions("ri_", [5]string{"非常不感兴趣", "不太感兴趣", "一般/不确定", "比较感兴趣", "非常感兴趣"})
	return &model.Instrument{
		ID:          model.InstrumentInterest,
		Name:        "RIASEC 职业兴趣测评",
		Description: "评估你对六类职业活动的兴趣强度，生成霍兰德兴趣代码。",
		Kind:        model.ScoringLikertPercent,
		Dimensions: []model.Dimension{
			{Key: "R", Name: "现实型", Description: "实践、动手、操作性任务"},
			{Key: "I", Name: "研究型", Description: "分析、探索、科学问题"},
			{Key: "A", Name: "艺术型", Description: "创意、表达、审美导向"},
			{Key: "S", Name: "社会型", Description: "助人、沟通、服务"},
			{Key: "E", Name: "企业型", Description: "领导、影响、商业驱动"},
			{Key: "C", Name: "常规型", Description: "秩序、细节、流程"},
		},
		Questions: likertQuestions([]likertItem{
			{id: "RIASEC_R_001", dimension: "R", text: "维修或组装器械/家具/电子产品。"},
			{id: "RIASEC_R_002", dimension: "R", text: "在户外从事体力或操作性工作（如园艺、测绘）。"},
			{id: "RIASEC_R_003", dimension: "R", text: "使用工具、设备或机器完成任务。"},
			{id: "RIASEC_R_004", dimension: "R", text: "阅读产品或装配的技术手册并照做。"},
			{id: "RIASEC_R_005", dimension: "R", text: "进行安全检查、质量检验或维护保养。"},
			{id: "RIASEC_R_006", dimension: "R", text: "在工作中动手解决电工/水管等实际问题。"},

			{id: "RIASEC_I_001", dimension: "I", text: "设计实验、收集数据并分析结果。"},
			{id: "RIASEC_I_002", dimension: "I", text: "阅读科学论文或技术报告并复现结论。"},
			{id: "RIASEC_I_003", dimension: "I", text: "用数学模型或编程解决问题。"},
			{id: "RIASEC_I_004", dimension: "I", text: "探索未知并提出可检验的假设。"},
			{id: "RIASEC_I_005", dimension: "I", text: "在实验室或研究环境中长期专注工作。"},
			{id: "RIASEC_I_006", dimension: "I", text: "对复杂系统进行原理推导或仿真。"},

			{id: "RIASEC_A_001", dimension: "A", text: "创作绘画、写作、摄影或音乐等作品。"},
			{id: "RIASEC_A_002", dimension: "A", text: "在开放、自由的氛围中表达自我。"},
			{id: "RIASEC_A_003", dimension: "A", text: "进行舞台表演、演讲或视频创作。"},
			{id: "RIASEC_A_004", dimension: "A", text: "从事视觉/交互/空间/时尚等设计。"},
			{id: "RIASEC_A_005", dimension: "A", text: "为品牌或项目构思富有创意的点子。"},
			{id: "RIASEC_A_006", dimension: "A", text: "通过艺术作品影响他人的感受。"},

			{id: "RIASEC_S_001", dimension: "S", text: "辅导、教学或培训他人。"},
			{id: "RIASEC_S_002", dimension: "S", text: "为他人提供心理/职业/学习支持。"},
			{id: "RIASEC_S_003", dimension: "S", text: "组织志愿活动或社区服务。"},
			{id: "RIASEC_S_004", dimension: "S", text: "在团队中协调冲突与沟通。"},
			{id: "RIASEC_S_005", dimension: "S", text: "与不同背景的人建立信任关系。"},
			{id: "RIASEC_S_006", dimension: "S", text: "在公共卫生或公益项目中帮助他人。"},

			{id: "RIASEC_E_001", dimension: "E", text: "发起项目、整合资源并推动落地。"},
			{id: "RIASEC_E_002", dimension: "E", text: "进行商业谈判或销售推广。"},
			{id: "RIASEC_E_003", dimension: "E", text: "在不确定环境中快速决策与试错。"},
			{id: "RIASEC_E_004", dimension: "E", text: "为团队设定目标并激励成员达成。"},
			{id: "RIASEC_E_005", dimension: "E", text: "通过演讲/路演影响他人。"},
			{id: "RIASEC_E_006", dimension: "E", text: "研究市场与商业模式以获取增长。"},

			{id: "RIASEC_C_001", dimension: "C", text: "处理报表、档案与标准化流程。"},
			{id: "RIASEC_C_002", dimension: "C", text: "遵循规范完成精确的数据录入/核对。"},
			{id: "RIASEC_C_003", dimension: "C", text: "维护秩序、制度与合规要求。"},
			{id: "RIASEC_C_004", dimension: "C", text: "在明确分工下高效配合。"},
			{id: "RIASEC_C_005", dimension: "C", text: "整理复杂信息并形成标准模板。"},
			{id: "RIASEC_C_006", dimension: "C", text: "长期稳定重复性工作也能保持质量。"},
		}, opts),
	}
}
