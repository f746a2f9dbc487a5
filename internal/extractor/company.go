package extractor

import (
	"regexp"
	"strings"

	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/types"
)

// 职位上下文窗口半径（字节）
const jobContextRadius = 100

// 公司名尾部的日期区间、括号附注
var trailingDateRe = regexp.MustCompile(`\s*\(?\d{4}\s*[-–—].*$`)
var parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// ExtractCompanies 通过 "at X" / "worked at X" / 公司后缀三类模式
// 抽取雇主名，清洗尾部日期与括号附注后做不区分大小写去重，上限10个。
func ExtractCompanies(text string, reg *registry.Registry) []string {
	var result []string
	seen := make(map[string]bool)

	for _, re := range reg.CompanyPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			if len(m) < 2 {
				continue
			}
			name := cleanCompanyName(m[1])
			if name == "" || !validCompanyName(name, reg) {
				continue
			}
			key := strings.ToLower(name)
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, name)
			if len(result) >= types.MaxCompanies {
				return result
			}
		}
	}
	return result
}

// ExtractJobTitles 用约束词表模式抽取职位头衔，
// 要求匹配点附近出现经历类上下文词。去重区分大小写
// （"Software engineer" 与 "Software Engineer" 视为不同写法），上限5个。
func ExtractJobTitles(text string, reg *registry.Registry) []string {
	var result []string
	seen := make(map[string]bool)

	for _, re := range reg.JobTitlePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			title := strings.TrimSpace(text[loc[0]:loc[1]])
			if title == "" || seen[title] {
				continue
			}
			if reg.GenericTitles[strings.ToLower(title)] {
				continue
			}
			window := contextWindow(text, loc[0], loc[1], jobContextRadius)
			if !containsAny(window, reg.JobContext) {
				continue
			}
			seen[title] = true
			result = append(result, title)
			if len(result) >= types.MaxJobTitles {
				return result
			}
		}
	}
	return result
}

func cleanCompanyName(raw string) string {
	// 只取第一行，随后剥掉尾随日期与括号
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		raw = raw[:idx]
	}
	raw = trailingDateRe.ReplaceAllString(raw, "")
	raw = parentheticalRe.ReplaceAllString(raw, "")
	return strings.Trim(raw, " \t,.|–-")
}

func validCompanyName(name string, reg *registry.Registry) bool {
	if len(name) < 2 || len(name) > 60 {
		return false
	}
	words := strings.Fields(name)
	if len(words) == 0 || len(words) > 6 {
		return false
	}
	// 单个停用词/简历结构词不是公司名
	if reg.CompanyExcludeWords[strings.ToLower(name)] {
		return false
	}
	if reg.SectionHeaders[strings.ToLower(name)] {
		return false
	}
	return true
}
