package model

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// profileValidate is shared by all profile datatypes
var profileValidate *validator.Validate

func init() {
	profileValidate = validator.New()
}

// Gender and age range values accepted by the basic info form
const (
	GenderMale   = "male"
	GenderFemale = "female"

	AgeUnder18 = "under-18"
	Age18To25  = "18-25"
	Age26To35  = "26-35"
	Age36To45  = "36-45"
	Age46To55  = "46-55"
	Age55Plus  = "55+"
)

// BasicInfo is the demographic context collected before the assessment
type BasicInfo struct {
	Name        string    `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,max=50"`
	Gender      string    `json:"gender" bson:"gender" validate:"required,oneof=male female"`
	AgeRange    string    `json:"ageRange" bson:"ageRange" validate:"required,oneof=under-18 18-25 26-35 36-45 46-55 55+"`
	Occupation  string    `json:"occupation" bson:"occupation" validate:"required,min=2,max=50"`
	CompletedAt time.Time `json:"completedAt" bson:"completedAt"`
}

// Normalize trims user-entered text fields
func (b *BasicInfo) Normalize() {
	b.Name = strings.TrimSpace(b.Name)
	b.Occupation = strings.TrimSpace(b.Occupation)
}

// Validate checks the form fields. Occupation length is counted in characters after trimming.
func (b *BasicInfo) Validate() error {
	return profileValidate.Struct(b)
}

// AgeBounds is the numeric span of an age range
type AgeBounds struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// AgeRangeBounds maps an age range value to years; unknown values yield 0..0
func AgeRangeBounds(ageRange string) AgeBounds {
	switch ageRange {
	case AgeUnder18:
		return AgeBounds{Min: 0, Max: 17}
	case Age18To25:
		return AgeBounds{Min: 18, Max: 25}
	case Age26To35:
		return AgeBounds{Min: 26, Max: 35}
	case Age36To45:
		return AgeBounds{Min: 36, Max: 45}
	case Age46To55:
		return AgeBounds{Min: 46, Max: 55}
	case Age55Plus:
		return AgeBounds{Min: 55, Max: 100}
	default:
		return AgeBounds{}
	}
}

var occupationKeywords = []struct {
	category string
	keywords []string
}{
	{"technology", []string{"工程师", "developer", "程序员", "技术", "it", "software"}},
	{"management", []string{"经理", "主管", "总监", "ceo", "manager", "director"}},
	{"sales_marketing", []string{"销售", "营销", "市场", "sales", "marketing"}},
	{"education", []string{"教师", "老师", "教授", "教育", "teacher", "educator"}},
	{"healthcare", []string{"医生", "护士", "医疗", "healthcare", "medical"}},
	{"finance", []string{"金融", "银行", "财务", "投资", "finance", "banking"}},
	{"creative", []string{"设计", "艺术", "创意", "designer", "artist", "creative"}},
	{"student", []string{"学生", "student"}},
}

// OccupationCategories buckets free-text occupation by keyword; "other" when nothing matches
func OccupationCategories(occupation string) []string {
	lower := strings.ToLower(occupation)
	var out []string
	for _, c := range occupationKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				out = append(out, c.category)
				break
			}
		}
	}
	if len(out) == 0 {
		out = append(out, "other")
	}
	return out
}

// GenderLabel returns the display text for a gender value
func GenderLabel(gender string) string {
	switch gender {
	case GenderMale:
		return "男"
	case GenderFemale:
		return "女"
	default:
		return "未填写"
	}
}

// AgeRangeLabel returns the display text for an age range value
func AgeRangeLabel(ageRange string) string {
	switch ageRange {
	case AgeUnder18:
		return "18岁以下"
	case Age55Plus:
		return "55岁以上"
	case "":
		return "未填写"
	default:
		return ageRange + "岁"
	}
}
