package extractor

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/types"
)

// DateClassification 日期区间的上下文分类结果。
// 三种取值各自对应独立的取舍规则：教育日期排除，工作日期计入，
// 二者关键词都不在场的归为模糊并保守排除（宁可漏算不可错算）。
type DateClassification int

const (
	// DateWork 窗口内出现工作上下文关键词且无教育关键词
	DateWork DateClassification = iota
	// DateEducation 窗口内出现教育上下文关键词（优先级最高）
	DateEducation
	// DateAmbiguous 窗口内两类关键词都未出现
	DateAmbiguous
)

func (c DateClassification) String() string {
	switch c {
	case DateWork:
		return "work"
	case DateEducation:
		return "education"
	default:
		return "ambiguous"
	}
}

// DateRange 文本中发现的一个日期区间及其分类
type DateRange struct {
	StartYear int
	EndYear   int  // OpenEnded时无意义
	OpenEnded bool // 结束端为 Present/Current/Now
	Class     DateClassification
	Start     int // 匹配区间在文本中的字节偏移
	End       int
}

// 日期上下文窗口半径（字节）
const dateContextRadius = 100

// 早于该年份的起始年视为不可信的工作日期，无条件排除
const minPlausibleYear = 1950

var yearDigitsRe = regexp.MustCompile(`\d{4}`)

// FindDateRanges 对全文应用registry中的所有日期区间模式，
// 逐个做上下文分类后返回。只做发现与分类，不做取舍。
func FindDateRanges(text string, reg *registry.Registry) []DateRange {
	var ranges []DateRange
	for _, re := range reg.DateRanges {
		for _, loc := range re.FindAllStringSubmatchIndex(text, -1) {
			// loc[2:4] 起始捕获组，loc[4:6] 结束捕获组
			if len(loc) < 6 || loc[2] < 0 || loc[4] < 0 {
				continue
			}
			startTok := text[loc[2]:loc[3]]
			endTok := text[loc[4]:loc[5]]

			startYear, ok := tokenYear(startTok)
			if !ok {
				continue
			}

			dr := DateRange{
				StartYear: startYear,
				Start:     loc[0],
				End:       loc[1],
			}
			if isOpenEnd(endTok) {
				dr.OpenEnded = true
			} else if endYear, ok := tokenYear(endTok); ok {
				dr.EndYear = endYear
			} else {
				continue
			}

			window := contextWindow(text, loc[0], loc[1], dateContextRadius)
			dr.Class = classifyDateContext(window, reg)
			ranges = append(ranges, dr)
		}
	}
	return ranges
}

// ResolveExperience 计算工作年限总和。
// 已知限制：并行任职产生的重叠区间会被独立求和而重复计数，
// 这里不做区间合并。结果收敛到[0, 50]。
func ResolveExperience(text string, reg *registry.Registry, now time.Time) float64 {
	total := 0.0
	for _, dr := range FindDateRanges(text, reg) {
		if dr.Class != DateWork {
			continue
		}
		if dr.StartYear < minPlausibleYear {
			continue
		}
		endYear := dr.EndYear
		if dr.OpenEnded {
			endYear = now.Year()
		}
		duration := endYear - dr.StartYear
		if duration <= 0 {
			continue
		}
		total += float64(duration)
	}
	if total > types.MaxYearsExp {
		total = types.MaxYearsExp
	}
	if total < 0 {
		total = 0
	}
	return total
}

// classifyDateContext 教育关键词一票否决，其次看工作关键词，
// 两边都没有归为模糊
func classifyDateContext(window string, reg *registry.Registry) DateClassification {
	if containsAny(window, reg.EduContext) {
		return DateEducation
	}
	if containsAny(window, reg.WorkContext) {
		return DateWork
	}
	return DateAmbiguous
}

// tokenYear 从 "2015" / "03/2015" / "Mar 2015" 之类的端点中取出四位年份
func tokenYear(tok string) (int, bool) {
	m := yearDigitsRe.FindString(tok)
	if m == "" {
		return 0, false
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return year, true
}

func isOpenEnd(tok string) bool {
	return strings.EqualFold(tok, "present") ||
		strings.EqualFold(tok, "current") ||
		strings.EqualFold(tok, "now")
}
