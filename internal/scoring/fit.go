// Package scoring 候选人的两套独立打分：
// 资料完整度分（FitScore，0-100，与查询无关）和检索相关性分
// （RankCandidates，依赖查询串）。二者互不影响。
package scoring

import "cv-insight-go/internal/types"

// 完整度分各分项的上限
const (
	fitNameWeight      = 10.0
	fitEmailWeight     = 10.0
	fitPhoneWeight     = 10.0
	fitSkillsCap       = 20.0
	fitExperienceCap   = 25.0
	fitEducationWeight = 15.0
	fitCertsCap        = 10.0

	fitPerSkill = 2.0
	fitPerYear  = 2.5
	fitPerCert  = 2.0
)

// FitScore 确定性加权求和，每个分项先各自封顶再相加，总分恒在[0, 100]。
// 经验分项保留自然的小数结果（5年 → 12.5），不做额外取整。
func FitScore(record *types.CandidateRecord) float64 {
	if record == nil {
		return 0
	}

	score := 0.0
	if record.Name != "" {
		score += fitNameWeight
	}
	if record.Email != "" {
		score += fitEmailWeight
	}
	if record.Phone != "" {
		score += fitPhoneWeight
	}

	score += capped(fitPerSkill*float64(len(record.Skills)), fitSkillsCap)
	score += capped(fitPerYear*record.YearsExperience, fitExperienceCap)

	if record.EducationLevel != "" && record.EducationLevel != types.EducationNotSpecified {
		score += fitEducationWeight
	}

	score += capped(fitPerCert*float64(len(record.Certifications)), fitCertsCap)
	return score
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
