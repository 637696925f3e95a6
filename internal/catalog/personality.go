package catalog

import "chatfuture/internal/model"

// personalityInstrument is the Big Five inventory: 5 traits x 6 items, two reverse-keyed per trait
func personalityInstrument() *model.Instrument {
	opts := likertOptions("bf_", [5]string{"非常不同意", "不同意", "中立/不确定", "同意", "非常同意"})
	return &model.Instrument{
		ID:          model.InstrumentPersonality,
		Name:        "Big Five 人格测评",
		Description: "开放性、尽责性、外向性、宜人性与神经质五大人格维度。",
		Kind:        model.ScoringLikertReversible,
		Dimensions: []model.Dimension{
			{Key: "O", Name: "开放性", Description: "好奇、审美敏感、思想开放"},
			{Key: "C", Name: "尽责性", Description: "自律、条理、目标导向"},
			{Key: "E", Name: "外向性", Description: "活力、社交性、主张性"},
			{Key: "A", Name: "宜人性", Description: "共情、合作、信任"},
			{Key: "N", Name: "神经质", Description: "情绪稳定性的反向指标"},
		},
		Questions: likertQuestions([]likertItem{
			{id: "BF_O_001", dimension: "O", text: "我喜欢尝试全新的方法与体验。"},
			{id: "BF_O_002", dimension: "O", text: "我经常被艺术、音乐或自然景观打动。"},
			{id: "BF_O_003", dimension: "O", text: "我对抽象概念与理论讨论感兴趣。"},
			{id: "BF_O_004", dimension: "O", text: "我不太愿意改变日常习惯。", reverse: true},
			{id: "BF_O_005", dimension: "O", text: "我会主动探索不同文化、观点或学科。"},
			{id: "BF_O_006", dimension: "O", text: "我更偏好熟悉的事物而非新奇的选择。", reverse: true},

			{id: "BF_C_001", dimension: "C", text: "我会按计划推进任务并按时完成。"},
			{id: "BF_C_002", dimension: "C", text: "我的工作台/文件通常整理得井井有条。"},
			{id: "BF_C_003", dimension: "C", text: "我容易被小事分心而拖延。", reverse: true},
			{id: "BF_C_004", dimension: "C", text: "我愿意为长期目标牺牲短期享乐。"},
			{id: "BF_C_005", dimension: "C", text: "我做事常常没有条理。", reverse: true},
			{id: "BF_C_006", dimension: "C", text: "我会设定清晰标准并自我监督。"},

			{id: "BF_E_001", dimension: "E", text: "在群体场合我精力充沛、健谈。"},
			{id: "BF_E_002", dimension: "E", text: "我喜欢成为焦点并主动结识新朋友。"},
			{id: "BF_E_003", dimension: "E", text: "我更偏好安静的独处时光。", reverse: true},
			{id: "BF_E_004", dimension: "E", text: "我在陌生环境中也能快速融入并交流。"},
			{id: "BF_E_005", dimension: "E", text: "我在社交后常感到精力被消耗。", reverse: true},
			{id: "BF_E_006", dimension: "E", text: "我喜欢策划/参与热闹的活动。"},

			{id: "BF_A_001", dimension: "A", text: "我愿意倾听并体谅他人的处境。"},
			{id: "BF_A_002", dimension: "A", text: "与人合作时我更看重双赢与公平。"},
			{id: "BF_A_003", dimension: "A", text: "我有时为了赢会忽略他人感受。", reverse: true},
			{id: "BF_A_004", dimension: "A", text: "我乐于给予支持并分享资源。"},
			{id: "BF_A_005", dimension: "A", text: "我容易与人发生对立和冲突。", reverse: true},
			{id: "BF_A_006", dimension: "A", text: "我相信大多数人是善意且可信赖的。"},

			{id: "BF_N_001", dimension: "N", text: "我会因小事而感到焦虑或紧张。"},
			{id: "BF_N_002", dimension: "N", text: "面对不确定性我难以保持放松。"},
			{id: "BF_N_003", dimension: "N", text: "压力来临时我能从容应对。", reverse: true},
			{id: "BF_N_004", dimension: "N", text: "我情绪起伏较大，容易受环境影响。"},
			{id: "BF_N_005", dimension: "N", text: "我很少感到沮丧或担忧。", reverse: true},
			{id: "BF_N_006", dimension: "N", text: "在意外发生时我会先产生负面反应。"},
		}, opts),
	}
}
