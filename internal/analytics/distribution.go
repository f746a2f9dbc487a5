// Package analytics 把候选人记录聚合成可直接喂给报表/看板的分布数据。
// 纯内存聚合，渲染是上层的事。
package analytics

import (
	"sort"

	"cv-insight-go/internal/types"
)

// SkillCount 技能及持有该技能的候选人数量
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// ExperienceBuckets 经验年限分桶统计
type ExperienceBuckets struct {
	Entry  int `json:"entry"`  // 0-2年
	Mid    int `json:"mid"`    // 3-5年
	Senior int `json:"senior"` // 6-10年
	Expert int `json:"expert"` // 10年以上
}

// SkillsDistribution 统计每个技能出现在多少候选人身上，
// 按数量降序排列，数量相同按技能名升序保证输出稳定
func SkillsDistribution(records []*types.CandidateRecord) []SkillCount {
	counts := make(map[string]int)
	for _, record := range records {
		if record == nil {
			continue
		}
		for _, skill := range record.Skills {
			counts[skill]++
		}
	}

	dist := make([]SkillCount, 0, len(counts))
	for skill, count := range counts {
		dist = append(dist, SkillCount{Skill: skill, Count: count})
	}
	sort.Slice(dist, func(i, j int) bool {
		if dist[i].Count != dist[j].Count {
			return dist[i].Count > dist[j].Count
		}
		return dist[i].Skill < dist[j].Skill
	})
	return dist
}

// EducationDistribution 各学历等级的候选人数量
func EducationDistribution(records []*types.CandidateRecord) map[types.EducationLevel]int {
	dist := make(map[types.EducationLevel]int)
	for _, record := range records {
		if record == nil {
			continue
		}
		level := record.EducationLevel
		if level == "" {
			level = types.EducationNotSpecified
		}
		dist[level]++
	}
	return dist
}

// BucketExperience 按年限分桶：Entry 0-2，Mid 3-5，Senior 6-10，Expert 10+
func BucketExperience(records []*types.CandidateRecord) ExperienceBuckets {
	var buckets ExperienceBuckets
	for _, record := range records {
		if record == nil {
			continue
		}
		switch years := record.YearsExperience; {
		case years <= 2:
			buckets.Entry++
		case years <= 5:
			buckets.Mid++
		case years <= 10:
			buckets.Senior++
		default:
			buckets.Expert++
		}
	}
	return buckets
}
