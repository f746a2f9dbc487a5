package extractor

import (
	"sort"

	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/types"
)

// ExtractSkills 按registry中的技能词表做整词匹配。
// 词表已按规范名长度降序，先匹配的条目占住命中位置，
// 后续条目不能复用这些位置，因此 "Machine Learning" 不会再
// 额外贡献一个裸 "Learning"。结果按首次出现位置排序，截断到10个。
func ExtractSkills(text string, reg *registry.Registry) []string {
	claimed := make([]bool, len(text))

	type hit struct {
		pos       int
		canonical string
	}
	var hits []hit

	for _, skill := range reg.Skills {
		firstPos := -1
		for _, re := range skill.Patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				if spanClaimed(claimed, loc[0], loc[1]) {
					continue
				}
				claimSpan(claimed, loc[0], loc[1])
				if firstPos == -1 || loc[0] < firstPos {
					firstPos = loc[0]
				}
			}
		}
		if firstPos >= 0 {
			hits = append(hits, hit{pos: firstPos, canonical: skill.Canonical})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	skills := make([]string, 0, len(hits))
	for _, h := range hits {
		skills = append(skills, h.canonical)
		if len(skills) >= types.MaxSkills {
			break
		}
	}
	return skills
}

func spanClaimed(claimed []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if claimed[i] {
			return true
		}
	}
	return false
}

func claimSpan(claimed []bool, start, end int) {
	for i := start; i < end; i++ {
		claimed[i] = true
	}
}
