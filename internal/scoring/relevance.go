package scoring

import (
	"sort"
	"strings"

	"cv-insight-go/internal/types"
)

// 相关性打分的各项权重
const (
	relNameWeight  = 10.0
	relEmailWeight = 5.0
	relSkillWeight = 3.0

	// 完整度加成：姓名/邮箱/电话各+1，技能每个+0.2（最多5个），
	// 总加成封顶3.5
	relBonusField    = 1.0
	relBonusPerSkill = 0.2
	relBonusSkillMax = 5
	relBonusCap      = 3.5

	// 短于3字符的查询词当作噪声丢弃；3字符保留，
	// 否则 AWS / GCP 这类缩写词查不到
	minQueryTokenLen = 3
)

// RankCandidates 按自由文本查询对候选人列表做相关性排序。
// 打分规则：任一查询词命中姓名子串+10、命中邮箱子串+5、
// 每个命中技能的查询词+3（与技能双向子串匹配，每词至多记一次）、
// 外加封顶3.5的完整度加成。降序稳定排序，平分保持输入顺序。
// 输入列表不被修改。
func RankCandidates(records []*types.CandidateRecord, query string) []types.RankedCandidate {
	tokens := queryTokens(query)

	ranked := make([]types.RankedCandidate, 0, len(records))
	for _, record := range records {
		ranked = append(ranked, types.RankedCandidate{
			Record: record,
			Score:  relevanceScore(record, tokens),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// queryTokens 小写分词并丢弃过短的词
func queryTokens(query string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(query)) {
		if len(tok) >= minQueryTokenLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func relevanceScore(record *types.CandidateRecord, tokens []string) float64 {
	if record == nil {
		return 0
	}

	score := 0.0
	nameLower := strings.ToLower(record.Name)
	emailLower := strings.ToLower(record.Email)

	nameHit := false
	emailHit := false
	for _, tok := range tokens {
		if !nameHit && nameLower != "" && strings.Contains(nameLower, tok) {
			score += relNameWeight
			nameHit = true
		}
		if !emailHit && emailLower != "" && strings.Contains(emailLower, tok) {
			score += relEmailWeight
			emailHit = true
		}
		if tokenMatchesAnySkill(tok, record.Skills) {
			score += relSkillWeight
		}
	}

	score += completenessBonus(record)
	return score
}

// tokenMatchesAnySkill 查询词与技能做双向子串比较：
// "aws" 命中技能 "AWS"，"python" 也命中 "Python 3"
func tokenMatchesAnySkill(token string, skills []string) bool {
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		if strings.Contains(skillLower, token) || strings.Contains(token, skillLower) {
			return true
		}
	}
	return false
}

func completenessBonus(record *types.CandidateRecord) float64 {
	bonus := 0.0
	if record.Name != "" {
		bonus += relBonusField
	}
	if record.Email != "" {
		bonus += relBonusField
	}
	if record.Phone != "" {
		bonus += relBonusField
	}

	skillCount := len(record.Skills)
	if skillCount > relBonusSkillMax {
		skillCount = relBonusSkillMax
	}
	bonus += relBonusPerSkill * float64(skillCount)

	if bonus > relBonusCap {
		bonus = relBonusCap
	}
	return bonus
}
