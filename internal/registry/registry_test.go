package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultCompiles 内置词表必须能编译成功且各段非空
func TestDefaultCompiles(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)

	assert.NotEmpty(t, reg.Skills, "技能词表不应为空")
	assert.NotEmpty(t, reg.Certifications, "认证模式表不应为空")
	assert.NotEmpty(t, reg.EducationLevels, "学历等级表不应为空")
	assert.NotEmpty(t, reg.DateRanges, "日期区间正则不应为空")
	assert.NotEmpty(t, reg.PhonePatterns)
	assert.NotEmpty(t, reg.JobTitlePatterns)
	assert.NotEmpty(t, reg.CompanyPatterns)
}

// TestDefaultSkillsLongestFirst 技能按规范名长度降序，保证长词优先占位
func TestDefaultSkillsLongestFirst(t *testing.T) {
	reg := Default()
	for i := 1; i < len(reg.Skills); i++ {
		assert.GreaterOrEqual(t, len(reg.Skills[i-1].Canonical), len(reg.Skills[i].Canonical),
			"技能 %q 不应排在更长的 %q 之后", reg.Skills[i-1].Canonical, reg.Skills[i].Canonical)
	}
}

// TestWorkAndEduContextDisjoint 工作/教育上下文关键词集合不允许重叠，
// 否则日期上下文分类会产生矛盾
func TestWorkAndEduContextDisjoint(t *testing.T) {
	reg := Default()
	work := make(map[string]bool, len(reg.WorkContext))
	for _, w := range reg.WorkContext {
		work[w] = true
	}
	for _, e := range reg.EduContext {
		assert.False(t, work[e], "关键词 %q 同时出现在工作与教育上下文中", e)
	}
}

// TestEducationLevelsRankOrder 学历等级表必须从高到低排列
func TestEducationLevelsRankOrder(t *testing.T) {
	reg := Default()
	var levels []string
	for _, e := range reg.EducationLevels {
		levels = append(levels, string(e.Level))
	}
	assert.Equal(t, []string{"PhD", "Master's", "Bachelor's", "Associate's", "Diploma"}, levels)
}

// TestCompileRejectsBadPattern 非法正则必须在编译期报错，而不是运行期panic
func TestCompileRejectsBadPattern(t *testing.T) {
	spec := defaultSpec()
	spec.Skills = append(spec.Skills, SkillEntry{Canonical: "Broken", Patterns: []string{`(unclosed`}})

	_, err := Compile(spec)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
}

// TestCompileNilSpec 空Spec直接拒绝
func TestCompileNilSpec(t *testing.T) {
	_, err := Compile(nil)
	assert.Error(t, err)
}

// TestLoadFromFileOverridesSection 文件中出现的段落覆盖内置词表，
// 省略的段落回退到内置默认值
func TestLoadFromFileOverridesSection(t *testing.T) {
	yamlContent := `
skills:
  - canonical: "COBOL"
    patterns: ["(?i)\\bCOBOL\\b"]
`
	tmpDir, err := os.MkdirTemp("", "registry-test")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlContent), 0644))

	reg, err := LoadFromFile(path)
	require.NoError(t, err)

	// skills段被整体替换
	require.Len(t, reg.Skills, 1)
	assert.Equal(t, "COBOL", reg.Skills[0].Canonical)
	// 未出现的段落保留内置内容
	assert.NotEmpty(t, reg.Certifications)
	assert.NotEmpty(t, reg.WorkContext)
}

// TestLoadFromFileMissing 文件不存在返回错误
func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/registry.yaml")
	assert.Error(t, err)
}

// TestCertContextLowercased 认证条目的上下文关键词编译后统一为小写，
// 匹配时与小写窗口比较
func TestCertContextLowercased(t *testing.T) {
	reg := Default()
	for _, cert := range reg.Certifications {
		if cert.Canonical == "Postman" {
			assert.Contains(t, cert.RequiredContext, "api")
			assert.Contains(t, cert.RequiredContext, "student expert")
			return
		}
	}
	t.Fatal("内置词表中未找到 Postman 条目")
}
