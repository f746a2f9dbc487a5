package extractor

import (
	"regexp"
	"strings"

	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/types"
)

// 认证上下文窗口半径（字节）
const certContextRadius = 80

// 兜底通道里 "Name – Issuer" / "Name (CODE)" 形态的行
var genericCertRe = regexp.MustCompile(`^([A-Z][A-Za-z0-9 .+#/&']{2,60}?)\s*(?:[-–—]\s*\S.*|\(\s*[A-Z0-9-]{2,15}\s*\))$`)

// ExtractCertifications 两趟式认证抽取。
// 第一趟按registry中的认证模式表逐条匹配，带上下文约束：
// RequiredContext非空时窗口内必须出现其一，ForbiddenContext命中则否决；
// 命中为该条目的规范名贡献一次。
// 第二趟只在"Certifications"类章节内部兜底，把未被第一趟覆盖的
// "Name – Issuer"形态行原样收录。结果去重（不区分大小写）截断到15个，
// 规范名命中排在兜底命中之前。
func ExtractCertifications(text string, reg *registry.Registry) []string {
	var result []string
	seen := make(map[string]bool)

	add := func(name string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		result = append(result, strings.TrimSpace(name))
	}

	// 第一趟：规范名模式表
	for _, cert := range reg.Certifications {
		if len(result) >= types.MaxCertifications {
			return result
		}
		if matchCertEntry(text, cert) {
			add(cert.Canonical)
		}
	}

	// 第二趟：认证章节内的兜底收集
	for _, line := range certSectionLines(text, reg) {
		if len(result) >= types.MaxCertifications {
			break
		}
		m := genericCertRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		add(m[1])
	}

	return result
}

// matchCertEntry 逐模式找匹配点，任意一个匹配点通过上下文校验即算命中
func matchCertEntry(text string, cert registry.Certification) bool {
	for _, re := range cert.Patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			window := contextWindow(text, loc[0], loc[1], certContextRadius)
			if len(cert.RequiredContext) > 0 && !containsAny(window, cert.RequiredContext) {
				continue
			}
			if containsAny(window, cert.ForbiddenContext) {
				continue
			}
			return true
		}
	}
	return false
}

// certSectionLines 返回位于认证章节标题之下、下一个章节标题之前的行。
// 章节标题判定：短行且含认证类关键词进入章节；命中其他已知章节头退出。
func certSectionLines(text string, reg *registry.Registry) []string {
	var collected []string
	inSection := false

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		lower := strings.ToLower(strings.Trim(line, ":"))

		if line != "" && len(line) < 40 && containsAny(lower, reg.CertSectionKeywords) {
			inSection = true
			continue
		}
		if inSection && reg.SectionHeaders[lower] {
			inSection = false
			continue
		}
		if inSection && line != "" {
			collected = append(collected, line)
		}
	}
	return collected
}
