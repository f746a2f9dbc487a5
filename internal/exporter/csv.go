// Package exporter 把候选人记录序列化成表格形式供下载/导入其他系统。
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"cv-insight-go/internal/types"
)

var csvHeader = []string{
	"name", "email", "phone", "location", "skills", "companies",
	"job_titles", "education_level", "certifications", "years_experience",
	"source_id",
}

// WriteCSV 把候选人记录逐行写出为CSV，首行为表头。
// 列表字段用"; "拼接成单列。nil记录跳过。
func WriteCSV(w io.Writer, records []*types.CandidateRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("写CSV表头失败: %w", err)
	}

	for _, record := range records {
		if record == nil {
			continue
		}
		row := []string{
			record.Name,
			record.Email,
			record.Phone,
			record.Location,
			strings.Join(record.Skills, "; "),
			strings.Join(record.Companies, "; "),
			strings.Join(record.JobTitles, "; "),
			string(record.EducationLevel),
			strings.Join(record.Certifications, "; "),
			fmt.Sprintf("%.1f", record.YearsExperience),
			record.SourceID,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("写CSV行失败: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
