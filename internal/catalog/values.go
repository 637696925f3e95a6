package catalog

import "chatfuture/internal/model"

// valuesInstrument is the work-values questionnaire. Each option spreads weights over
// several dimensions; the last question is a deal-breaker with negative weights.
func valuesInstrument() *model.Instrument {
	return &model.Instrument{
		ID:          model.InstrumentValues,
		Name:        "职业价值观测评",
		Description: "评估你在工作中的价值观和动机",
		Kind:        model.ScoringWeighted,
		Dimensions: []model.Dimension{
			{Key: "achievement", Name: "成就导向", Description: "追求成功和卓越"},
			{Key: "independence", Name: "独立性", Description: "自主性和自由度"},
			{Key: "recognition", Name: "认可度", Description: "获得他人的认可和赞赏"},
			{Key: "relationships", Name: "人际关系", Description: "与同事的友谊和合作"},
			{Key: "support", Name: "支持度", Description: "工作稳定性和保障"},
			{Key: "working_conditions", Name: "工作条件", Description: "工作环境和设施"},
		},
		Questions: []model.Question{
			{
				ID:       "values_001",
				Category: "work_motivation",
				Text:     "在工作中，什么对你最重要？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_001", Text: "高收入和奖金", Scores: map[string]int{"achievement": 3, "independence": 1}},
					{ID: "opt_002", Text: "自主决策权", Scores: map[string]int{"independence": 3, "achievement": 1}},
					{ID: "opt_003", Text: "同事和上司的认可", Scores: map[string]int{"recognition": 3, "relationships": 1}},
					{ID: "opt_004", Text: "良好的团队合作", Scores: map[string]int{"relationships": 3, "support": 1}},
					{ID: "opt_005", Text: "工作稳定性和保障", Scores: map[string]int{"support": 3, "working_conditions": 1}},
					{ID: "opt_006", Text: "舒适的工作环境", Scores: map[string]int{"working_conditions": 3, "support": 1}},
				},
			},
			{
				ID:       "values_002",
				Category: "work_motivation",
				Text:     "你希望在工作中获得什么？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_007", Text: "挑战性的项目和任务", Scores: map[string]int{"achievement": 3, "independence": 1}},
					{ID: "opt_008", Text: "灵活的工作安排", Scores: map[string]int{"independence": 3, "working_conditions": 1}},
					{ID: "opt_009", Text: "公开的表扬和奖励", Scores: map[string]int{"recognition": 3, "achievement": 1}},
					{ID: "opt_010", Text: "与同事的友谊", Scores: map[string]int{"relationships": 3, "support": 1}},
					{ID: "opt_011", Text: "公司的培训和福利", Scores: map[string]int{"support": 3, "working_conditions": 1}},
					{ID: "opt_012", Text: "现代化的办公设备", Scores: map[string]int{"working_conditions": 3, "independence": 1}},
				},
			},
			{
				ID:       "values_003",
				Category: "work_motivation",
				Text:     "你理想的工作环境是什么样的？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_013", Text: "竞争激烈，充满挑战", Scores: map[string]int{"achievement": 3, "independence": 1}},
					{ID: "opt_014", Text: "自由度高，不受约束", Scores: map[string]int{"independence": 3, "working_conditions": 1}},
					{ID: "opt_015", Text: "经常获得表扬和认可", Scores: map[string]int{"recognition": 3, "achievement": 1}},
					{ID: "opt_016", Text: "团队氛围和谐融洽", Scores: map[string]int{"relationships": 3, "support": 1}},
					{ID: "opt_017", Text: "有完善的保障制度", Scores: map[string]int{"support": 3, "working_conditions": 1}},
					{ID: "opt_018", Text: "环境优美，设施齐全", Scores: map[string]int{"working_conditions": 3, "support": 1}},
				},
			},
			{
				ID:       "values_004",
				Category: "work_motivation",
				Text:     "什么最能激励你努力工作？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_019", Text: "追求卓越和成功", Scores: map[string]int{"achievement": 3, "recognition": 1}},
					{ID: "opt_020", Text: "能够自主决定工作方式", Scores: map[string]int{"independence": 3, "achievement": 1}},
					{ID: "opt_021", Text: "获得他人的赞赏", Scores: map[string]int{"recognition": 3, "relationships": 1}},
					{ID: "opt_022", Text: "帮助同事和团队成功", Scores: map[string]int{"relationships": 3, "support": 1}},
					{ID: "opt_023", Text: "获得更好的福利待遇", Scores: map[string]int{"support": 3, "working_conditions": 1}},
					{ID: "opt_024", Text: "在舒适的环境中工作", Scores: map[string]int{"working_conditions": 3, "support": 1}},
				},
			},
			{
				ID:       "values_005",
				Category: "work_motivation",
				Text:     "你希望从工作中得到什么满足感？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_025", Text: "完成困难任务后的成就感", Scores: map[string]int{"achievement": 3, "independence": 1}},
					{ID: "opt_026", Text: "按照自己的方式工作的自由", Scores: map[string]int{"independence": 3, "working_conditions": 1}},
					{ID: "opt_027", Text: "获得他人的尊重和认可", Scores: map[string]int{"recognition": 3, "achievement": 1}},
					{ID: "opt_028", Text: "与同事建立深厚的友谊", Scores: map[string]int{"relationships": 3, "support": 1}},
					{ID: "opt_029", Text: "享受公司的各种福利", Scores: map[string]int{"support": 3, "working_conditions": 1}},
					{ID: "opt_030", Text: "在理想的环境中工作", Scores: map[string]int{"working_conditions": 3, "support": 1}},
				},
			},
			{
				ID:       "values_006",
				Category: "growth",
				Text:     "当你评估一份offer时，哪项最能体现“成长”？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_031", Text: "高难度目标与晋升通道清晰", Scores: map[string]int{"achievement": 3}},
					{ID: "opt_032", Text: "远程/弹性/自主安排时间", Scores: map[string]int{"independence": 3}},
					{ID: "opt_033", Text: "明星团队+行业认可的背书", Scores: map[string]int{"recognition": 3}},
					{ID: "opt_034", Text: "导师制与强互助文化", Scores: map[string]int{"relationships": 2, "support": 1}},
					{ID: "opt_035", Text: "完善的培训预算与报销", Scores: map[string]int{"support": 3}},
					{ID: "opt_036", Text: "硬件配置拉满/工位舒适", Scores: map[string]int{"working_conditions": 3}},
				},
			},
			{
				ID:       "values_007",
				Category: "decision_style",
				Text:     "你更偏好的决策方式是：",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_037", Text: "以结果为导向，追求突破", Scores: map[string]int{"achievement": 3}},
					{ID: "opt_038", Text: "以自主为先，权责到人", Scores: map[string]int{"independence": 3}},
					{ID: "opt_039", Text: "以声誉为先，注重口碑", Scores: map[string]int{"recognition": 3}},
					{ID: "opt_040", Text: "以共识为先，照顾关系", Scores: map[string]int{"relationships": 3}},
					{ID: "opt_041", Text: "以保障为先，规避风险", Scores: map[string]int{"support": 3}},
					{ID: "opt_042", Text: "以体验为先，重视环境", Scores: map[string]int{"working_conditions": 3}},
				},
			},
			{
				ID:       "values_008",
				Category: "conflict",
				Text:     "遇到团队冲突，你最希望组织提供什么？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_043", Text: "明确目标与绩效标准", Scores: map[string]int{"achievement": 2, "support": 1}},
					{ID: "opt_044", Text: "授权机制，允许不同做法试错", Scores: map[string]int{"independence": 3}},
					{ID: "opt_045", Text: "公开反馈与荣誉机制", Scores: map[string]int{"recognition": 3}},
					{ID: "opt_046", Text: "专业的协作/沟通辅导", Scores: map[string]int{"relationships": 3}},
					{ID: "opt_047", Text: "HR介入与申诉通道", Scores: map[string]int{"support": 3}},
					{ID: "opt_048", Text: "安静空间与设备支持", Scores: map[string]int{"working_conditions": 3}},
				},
			},
			{
				ID:       "values_009",
				Category: "tradeoff",
				Text:     "在“高薪但高压”与“中薪但稳定”之间，你更接近：",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_049", Text: "高薪高压，挑战更重要", Scores: map[string]int{"achievement": 3}},
					{ID: "opt_050", Text: "自由度高即可抵消压力", Scores: map[string]int{"independence": 3}},
					{ID: "opt_051", Text: "只要认可度高也可接受", Scores: map[string]int{"recognition": 3}},
					{ID: "opt_052", Text: "更看重人和与氛围", Scores: map[string]int{"relationships": 3}},
					{ID: "opt_053", Text: "更看重稳定福利与制度", Scores: map[string]int{"support": 3}},
					{ID: "opt_054", Text: "更看重环境与体验", Scores: map[string]int{"working_conditions": 3}},
				},
			},
			{
				ID:       "values_010",
				Category: "reward",
				Text:     "以下哪种回报最让你有被“看见”的感觉？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_055", Text: "高额奖金/项目分成", Scores: map[string]int{"achievement": 3, "recognition": 1}},
					{ID: "opt_056", Text: "话语权与独立预算", Scores: map[string]int{"independence": 3}},
					{ID: "opt_057", Text: "内部/外部公开表彰", Scores: map[string]int{"recognition": 3}},
					{ID: "opt_058", Text: "团队聚会/团建时的感谢", Scores: map[string]int{"relationships": 3}},
					{ID: "opt_059", Text: "长期激励/补贴/保障升级", Scores: map[string]int{"support": 3}},
					{ID: "opt_060", Text: "更好的工位/设备/差旅舱位", Scores: map[string]int{"working_conditions": 3}},
				},
			},
			{
				ID:       "values_011",
				Category: "satisfaction_driver",
				Text:     "什么会让你对工作“持续满意”？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_061", Text: "不断挑战与明确成长阶梯", Scores: map[string]int{"achievement": 3}},
					{ID: "opt_062", Text: "自主选择项目与同事", Scores: map[string]int{"independence": 3}},
					{ID: "opt_063", Text: "被领导与行业认可", Scores: map[string]int{"recognition": 3}},
					{ID: "opt_064", Text: "稳定可依赖的伙伴关系", Scores: map[string]int{"relationships": 3}},
					{ID: "opt_065", Text: "制度透明与资源可得", Scores: map[string]int{"support": 3}},
					{ID: "opt_066", Text: "环境舒适、工具高效", Scores: map[string]int{"working_conditions": 3}},
				},
			},
			{
				ID:       "values_012",
				Category: "deal_breaker",
				Text:     "以下哪项最可能成为你“拒绝一份工作”的关键？",
				Weight:   1.0,
				Options: []model.Option{
					{ID: "opt_067", Text: "目标模糊、成就不可衡量", Scores: map[string]int{"achievement": -2}},
					{ID: "opt_068", Text: "流程繁琐、自由度极低", Scores: map[string]int{"independence": -2}},
					{ID: "opt_069", Text: "缺乏认可、努力不被看见", Scores: map[string]int{"recognition": -2}},
					{ID: "opt_070", Text: "关系紧张、缺少合作氛围", Scores: map[string]int{"relationships": -2}},
					{ID: "opt_071", Text: "制度不健全、缺乏保障", Scores: map[string]int{"support": -2}},
					{ID: "opt_072", Text: "环境差/设备落后/噪音大", Scores: map[string]int{"working_conditions": -2}},
				},
			},
		},
	}
}
