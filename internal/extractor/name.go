package extractor

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"cv-insight-go/internal/registry"
)

// 只在头部联系信息区找姓名
const nameScanLines = 15

// 姓名行只允许字母、空白、连字符、撇号、句点
var nameLineRe = regexp.MustCompile(`^[A-Z][A-Za-z\s\-.']+$`)

// 全是数字和符号的行
var nonLetterLineRe = regexp.MustCompile(`^[\d\s\W]+$`)

var filenameSepRe = regexp.MustCompile(`[_\-.]+`)

var digitsRe = regexp.MustCompile(`\d+`)

// ExtractName 先扫描文本前15行找姓名行，找不到再回退到文件名。
// 姓名行判定：1-4个词、每个词以字母开头、总长≥3、不含邮箱、
// 不命中任何头部关键词黑名单。两条路都失败返回空串。
func ExtractName(text, filename string, reg *registry.Registry) string {
	if name := nameFromText(text, reg); name != "" {
		return name
	}
	return nameFromFilename(filename, reg)
}

func nameFromText(text string, reg *registry.Registry) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(line) < 3 || len(line) > 80 {
			continue
		}
		if strings.Contains(line, "@") {
			continue
		}
		if nonLetterLineRe.MatchString(line) {
			continue
		}

		upper := strings.ToUpper(line)
		if blocklisted(upper, reg.NameBlocklist) {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 1 || len(words) > 4 {
			continue
		}
		if !allStartWithLetter(words) {
			continue
		}
		// 三词以上的全大写行是章节标题而非姓名
		if len(words) > 2 && line == upper {
			continue
		}
		if !nameLineRe.MatchString(line) {
			continue
		}
		return line
	}
	return ""
}

// nameFromFilename 去掉扩展名、分隔符、数字和简历类噪声词后，
// 把剩下的词组装成Title Case的姓名
func nameFromFilename(filename string, reg *registry.Registry) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = filenameSepRe.ReplaceAllString(base, " ")
	base = digitsRe.ReplaceAllString(base, "")

	noise := make(map[string]bool, len(reg.FilenameNoiseWords))
	for _, w := range reg.FilenameNoiseWords {
		noise[w] = true
	}

	var parts []string
	for _, w := range strings.Fields(base) {
		if noise[strings.ToLower(w)] {
			continue
		}
		parts = append(parts, titleCase(w))
	}
	return strings.Join(parts, " ")
}

func blocklisted(upperLine string, blocklist []string) bool {
	for _, kw := range blocklist {
		if strings.Contains(upperLine, kw) {
			return true
		}
	}
	return false
}

func allStartWithLetter(words []string) bool {
	for _, w := range words {
		r := []rune(w)[0]
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func titleCase(w string) string {
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
