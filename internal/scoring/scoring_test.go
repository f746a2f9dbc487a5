package scoring

import (
	"testing"

	"cv-insight-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFitScoreExactExample 姓名+邮箱+电话+8技能+5年+本科+2认证
// = 10+10+10+16+12.5+15+4 = 77.5
func TestFitScoreExactExample(t *testing.T) {
	record := &types.CandidateRecord{
		Name:  "John Smith",
		Email: "john@example.com",
		Phone: "555-123-4567",
		Skills: []string{
			"Python", "AWS", "Docker", "Kubernetes",
			"Linux", "Git", "SQL", "Redis",
		},
		YearsExperience: 5,
		EducationLevel:  types.EducationBachelor,
		Certifications:  []string{"AWS Certified", "PMP"},
	}

	assert.Equal(t, 77.5, FitScore(record))
}

// TestFitScoreCaps 每个分项各自封顶，总分不超过100
func TestFitScoreCaps(t *testing.T) {
	skills := make([]string, 30)
	certs := make([]string, 30)
	for i := range skills {
		skills[i] = "skill"
		certs[i] = "cert"
	}
	record := &types.CandidateRecord{
		Name:            "Max Out",
		Email:           "max@example.com",
		Phone:           "123",
		Skills:          skills,
		YearsExperience: 50,
		EducationLevel:  types.EducationPhD,
		Certifications:  certs,
	}

	assert.Equal(t, 100.0, FitScore(record))
}

// TestFitScoreEmptyRecord 全空记录是合法的低分输出，不是错误
func TestFitScoreEmptyRecord(t *testing.T) {
	assert.Equal(t, 0.0, FitScore(&types.CandidateRecord{EducationLevel: types.EducationNotSpecified}))
	assert.Equal(t, 0.0, FitScore(nil))
}

// TestRankCandidatesOrder 查询 "Python AWS"：
// 候选A只靠技能得6+加成，候选B姓名+邮箱+技能得18+加成，B排在A前
func TestRankCandidatesOrder(t *testing.T) {
	candidateA := &types.CandidateRecord{
		Skills: []string{"Python", "AWS", "Docker"},
	}
	candidateB := &types.CandidateRecord{
		Name:   "Python Expert",
		Email:  "python@example.com",
		Skills: []string{"Python", "JavaScript", "React"},
	}

	ranked := RankCandidates([]*types.CandidateRecord{candidateA, candidateB}, "Python AWS")
	require.Len(t, ranked, 2)

	assert.Same(t, candidateB, ranked[0].Record)
	assert.Same(t, candidateA, ranked[1].Record)

	// A: python命中技能+3，aws命中技能+3，加成0.2*3=0.6
	assert.Equal(t, 6.6, ranked[1].Score)
	// B: python命中姓名+10、邮箱+5、技能+3，加成1+1+0.6=2.6
	assert.Equal(t, 20.6, ranked[0].Score)
}

// TestRankCandidatesShortTokens 3字符的缩写词保留，更短的丢弃
func TestRankCandidatesShortTokens(t *testing.T) {
	record := &types.CandidateRecord{Skills: []string{"AWS", "Go"}}

	ranked := RankCandidates([]*types.CandidateRecord{record}, "AWS")
	require.Len(t, ranked, 1)
	assert.Equal(t, 3.0+0.4, ranked[0].Score, "aws应命中技能+3，外加2个技能的0.4加成")

	// "Go" 只有2字符，整个查询退化为无词，只剩完整度加成
	ranked = RankCandidates([]*types.CandidateRecord{record}, "Go")
	assert.Equal(t, 0.4, ranked[0].Score)
}

// TestRankCandidates_CompletenessBonusCap 完整度加成封顶3.5：
// 姓名+邮箱+电话+5技能原始加成为4.0，封顶后取3.5
func TestRankCandidates_CompletenessBonusCap(t *testing.T) {
	record := &types.CandidateRecord{
		Name:   "Full Profile",
		Email:  "full@example.com",
		Phone:  "555-000-1111",
		Skills: []string{"Rust", "Go", "Zig", "Nim", "Ada"},
	}

	ranked := RankCandidates([]*types.CandidateRecord{record}, "unrelated query terms")
	require.Len(t, ranked, 1)
	assert.Equal(t, 3.5, ranked[0].Score)
}

// TestRankCandidatesStableTies 平分的候选人保持输入顺序
func TestRankCandidatesStableTies(t *testing.T) {
	first := &types.CandidateRecord{Skills: []string{"Python"}}
	second := &types.CandidateRecord{Skills: []string{"Python"}}
	third := &types.CandidateRecord{Skills: []string{"Python"}}

	ranked := RankCandidates([]*types.CandidateRecord{first, second, third}, "python")
	require.Len(t, ranked, 3)
	assert.Same(t, first, ranked[0].Record)
	assert.Same(t, second, ranked[1].Record)
	assert.Same(t, third, ranked[2].Record)
}

// TestRankCandidatesDoesNotMutateInput 排序不改动调用方的切片
func TestRankCandidatesDoesNotMutateInput(t *testing.T) {
	low := &types.CandidateRecord{}
	high := &types.CandidateRecord{Name: "Python Person", Skills: []string{"Python"}}
	input := []*types.CandidateRecord{low, high}

	ranked := RankCandidates(input, "python")
	assert.Same(t, high, ranked[0].Record)
	assert.Same(t, low, input[0], "输入切片顺序应保持不变")
}
