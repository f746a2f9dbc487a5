package extractor

import "strings"

// contextWindow 取匹配区间向两侧各扩radius字节的窗口并转小写，
// 用于各抽取器的局部上下文判断
func contextWindow(text string, start, end, radius int) string {
	lo := start - radius
	if lo < 0 {
		lo = 0
	}
	hi := end + radius
	if hi > len(text) {
		hi = len(text)
	}
	return strings.ToLower(text[lo:hi])
}

// containsAny 判断s中是否出现keys中的任意一个子串，keys须已小写
func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if k != "" && strings.Contains(s, k) {
			return true
		}
	}
	return false
}
