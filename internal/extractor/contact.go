package extractor

import (
	"regexp"
	"strings"

	"cv-insight-go/internal/registry"
)

var emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

// 纯四位数字的"电话"十有八九是年份
var bareYearRe = regexp.MustCompile(`^\d{4}$`)

// 位置模式：City, Country/State 全称，以及 City, ST 两字母州码
var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`),
	regexp.MustCompile(`([A-Z][a-z]+),\s*([A-Z]{2})\b`),
}

// 位置只在头部区域找，正文中逗号分隔的大写词组多半是别的东西
const locationHeaderLimit = 1000

const locationContextRadius = 50

// ExtractEmail 返回全文第一个邮箱地址，域名部分统一小写。没有则为空串。
func ExtractEmail(text string) string {
	match := emailRe.FindString(text)
	if match == "" {
		return ""
	}
	at := strings.LastIndex(match, "@")
	return match[:at] + strings.ToLower(match[at:])
}

// ExtractPhone 按模式优先级返回第一个有效电话号码。
// 形似孤立年份的匹配、落在日期区间内部的匹配都会被拒绝。
func ExtractPhone(text string, reg *registry.Registry) string {
	dateSpans := dateRangeSpans(text, reg)

	for _, re := range reg.PhonePatterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			candidate := strings.TrimSpace(text[loc[0]:loc[1]])
			if bareYearRe.MatchString(candidate) {
				continue
			}
			if overlapsAny(loc[0], loc[1], dateSpans) {
				continue
			}
			return candidate
		}
	}
	return ""
}

// ExtractLocation 在文本前1000字符内寻找 "City, Region" 形态的位置。
// 城市部分命中技术词表、或紧邻上下文出现技术语境词时拒绝该匹配，
// 避免 "Python, PH" 之类的技能列表误判。
func ExtractLocation(text string, reg *registry.Registry) string {
	header := text
	if len(header) > locationHeaderLimit {
		header = header[:locationHeaderLimit]
	}

	for _, re := range locationPatterns {
		for _, loc := range re.FindAllStringSubmatchIndex(header, -1) {
			candidate := strings.TrimSpace(header[loc[0]:loc[1]])
			cityPart := strings.TrimSpace(header[loc[2]:loc[3]])

			if reg.LocationTechTerms[strings.ToLower(cityPart)] {
				continue
			}
			window := contextWindow(header, loc[0], loc[1], locationContextRadius)
			if containsAny(window, reg.TechContextWords) {
				continue
			}
			return candidate
		}
	}
	return ""
}

// dateRangeSpans 返回全文所有日期区间匹配的字节跨度，供电话抽取排除用
func dateRangeSpans(text string, reg *registry.Registry) [][2]int {
	var spans [][2]int
	for _, re := range reg.DateRanges {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			spans = append(spans, [2]int{loc[0], loc[1]})
		}
	}
	return spans
}

func overlapsAny(start, end int, spans [][2]int) bool {
	for _, s := range spans {
		if start < s[1] && end > s[0] {
			return true
		}
	}
	return false
}
