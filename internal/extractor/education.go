package extractor

import (
	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/types"
)

// ExtractEducation 返回命中的最高学历等级，单赢家选择。
// registry中的等级表已按从高到低排列，第一个有命中的等级即为结果；
// 全部落空返回 NotSpecified。
func ExtractEducation(text string, reg *registry.Registry) types.EducationLevel {
	for _, level := range reg.EducationLevels {
		for _, re := range level.Patterns {
			if re.MatchString(text) {
				return level.Level
			}
		}
	}
	return types.EducationNotSpecified
}
