package analytics

import (
	"testing"

	"cv-insight-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []*types.CandidateRecord {
	return []*types.CandidateRecord{
		{Skills: []string{"Python", "AWS"}, EducationLevel: types.EducationBachelor, YearsExperience: 1},
		{Skills: []string{"Python", "Docker"}, EducationLevel: types.EducationMaster, YearsExperience: 4},
		{Skills: []string{"Python"}, EducationLevel: types.EducationBachelor, YearsExperience: 8},
		{Skills: nil, EducationLevel: types.EducationNotSpecified, YearsExperience: 15},
	}
}

func TestSkillsDistribution(t *testing.T) {
	dist := SkillsDistribution(sampleRecords())
	require.NotEmpty(t, dist)

	// Python出现3次排第一
	assert.Equal(t, SkillCount{Skill: "Python", Count: 3}, dist[0])
	// 数量相同时按技能名升序，输出稳定
	assert.Equal(t, SkillCount{Skill: "AWS", Count: 1}, dist[1])
	assert.Equal(t, SkillCount{Skill: "Docker", Count: 1}, dist[2])
}

func TestEducationDistribution(t *testing.T) {
	dist := EducationDistribution(sampleRecords())

	assert.Equal(t, 2, dist[types.EducationBachelor])
	assert.Equal(t, 1, dist[types.EducationMaster])
	assert.Equal(t, 1, dist[types.EducationNotSpecified])
}

// TestEducationDistributionEmptyLevel 零值学历归入 Not Specified
func TestEducationDistributionEmptyLevel(t *testing.T) {
	dist := EducationDistribution([]*types.CandidateRecord{{}})
	assert.Equal(t, 1, dist[types.EducationNotSpecified])
}

func TestBucketExperience(t *testing.T) {
	buckets := BucketExperience(sampleRecords())

	assert.Equal(t, 1, buckets.Entry)
	assert.Equal(t, 1, buckets.Mid)
	assert.Equal(t, 1, buckets.Senior)
	assert.Equal(t, 1, buckets.Expert)
}

func TestDistributionsEmptyInput(t *testing.T) {
	assert.Empty(t, SkillsDistribution(nil))
	assert.Empty(t, EducationDistribution(nil))
	assert.Equal(t, ExperienceBuckets{}, BucketExperience(nil))
}
