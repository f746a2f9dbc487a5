package extractor

import (
	"strings"
	"time"

	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/types"
)

// Extract 抽取流水线入口：一份简历文本进，一条CandidateRecord出。
// 各字段抽取器相互独立、无共享状态，任何字段缺失都退化为零值；
// 唯一的失败条件是文本为空白，此时返回包装了ErrInvalidInput的错误。
// now用于开区间日期（Present/Current/Now）的年限计算，由调用方注入
// 以保证结果可复现。
func Extract(text, filename string, reg *registry.Registry, now time.Time) (*types.CandidateRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewExtractError(filename, "extract", ErrInvalidInput, "文本为空")
	}

	// 统一换行，后续按行扫描的抽取器不再关心\r
	text = strings.ReplaceAll(text, "\r\n", "\n")

	record := &types.CandidateRecord{
		Name:            ExtractName(text, filename, reg),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text, reg),
		Location:        ExtractLocation(text, reg),
		Skills:          ExtractSkills(text, reg),
		Companies:       ExtractCompanies(text, reg),
		JobTitles:       ExtractJobTitles(text, reg),
		EducationLevel:  ExtractEducation(text, reg),
		Certifications:  ExtractCertifications(text, reg),
		YearsExperience: ResolveExperience(text, reg, now),
		SourceID:        filename,
	}
	return record, nil
}
