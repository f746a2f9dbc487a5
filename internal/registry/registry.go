package registry

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"cv-insight-go/internal/types"

	"gopkg.in/yaml.v3"
)

// Spec 是模式库的可序列化形式。词表属于可版本化的外部数据，
// 可以整体从YAML文件加载后编译，抽取逻辑不依赖任何具体实例。
type Spec struct {
	Skills              []SkillEntry     `yaml:"skills"`
	Certifications      []CertEntry      `yaml:"certifications"`
	EducationLevels     []EducationEntry `yaml:"education_levels"`
	WorkContext         []string         `yaml:"work_context"`
	EduContext          []string         `yaml:"edu_context"`
	DateRanges          []string         `yaml:"date_ranges"`
	NameBlocklist       []string         `yaml:"name_blocklist"`
	FilenameNoiseWords  []string         `yaml:"filename_noise_words"`
	LocationTechTerms   []string         `yaml:"location_tech_terms"`
	TechContextWords    []string         `yaml:"tech_context_words"`
	PhonePatterns       []string         `yaml:"phone_patterns"`
	JobTitlePatterns    []string         `yaml:"job_title_patterns"`
	JobContext          []string         `yaml:"job_context"`
	GenericTitles       []string         `yaml:"generic_titles"`
	CompanyPatterns     []string         `yaml:"company_patterns"`
	CompanyContext      []string         `yaml:"company_context"`
	CompanyExcludeWords []string         `yaml:"company_exclude_words"`
	CertSectionKeywords []string         `yaml:"cert_section_keywords"`
	SectionHeaders      []string         `yaml:"section_headers"`
}

// SkillEntry 技能词表条目：规范名 + 若干匹配模式（带词边界的正则）
type SkillEntry struct {
	Canonical string   `yaml:"canonical"`
	Patterns  []string `yaml:"patterns"`
}

// CertEntry 认证模式表条目。RequiredContext非空时，
// 匹配点附近窗口内必须出现其中至少一个关键词才算命中；
// ForbiddenContext出现则直接否决（避免技能性提及被当成认证）。
type CertEntry struct {
	Canonical        string   `yaml:"canonical"`
	Patterns         []string `yaml:"patterns"`
	RequiredContext  []string `yaml:"required_context,omitempty"`
	ForbiddenContext []string `yaml:"forbidden_context,omitempty"`
}

// EducationEntry 学历等级条目，Spec中按等级从高到低排列
type EducationEntry struct {
	Level    string   `yaml:"level"`
	Patterns []string `yaml:"patterns"`
}

// Skill 编译后的技能条目
type Skill struct {
	Canonical string
	Patterns  []*regexp.Regexp
}

// Certification 编译后的认证条目
type Certification struct {
	Canonical        string
	Patterns         []*regexp.Regexp
	RequiredContext  []string
	ForbiddenContext []string
}

// Education 编译后的学历条目
type Education struct {
	Level    types.EducationLevel
	Patterns []*regexp.Regexp
}

// Registry 编译完成的只读模式库。构造后不再修改，
// 以引用方式注入每个抽取函数；多goroutine并发读取是安全的。
type Registry struct {
	// Skills 按优先级排列：长词/多词条目在前，保证
	// "Machine Learning" 先于 "Learning" 之类的短词命中
	Skills []Skill

	Certifications []Certification

	// EducationLevels 按学历等级从高到低排列，单赢家选择
	EducationLevels []Education

	// WorkContext 与 EduContext 互不相交，用于日期上下文分类
	WorkContext []string
	EduContext  []string

	// DateRanges 日期区间正则：年-年、数字月/年、月份名，开区间端点为 Present/Current/Now
	DateRanges []*regexp.Regexp

	NameBlocklist      []string
	FilenameNoiseWords []string

	LocationTechTerms map[string]bool
	TechContextWords  []string

	PhonePatterns []*regexp.Regexp

	JobTitlePatterns []*regexp.Regexp
	JobContext       []string
	GenericTitles    map[string]bool

	CompanyPatterns     []*regexp.Regexp
	CompanyContext      []string
	CompanyExcludeWords map[string]bool

	CertSectionKeywords []string
	SectionHeaders      map[string]bool
}

// Compile 将Spec编译为可用的Registry，任何非法正则都会返回错误
func Compile(spec *Spec) (*Registry, error) {
	if spec == nil {
		return nil, fmt.Errorf("registry spec不能为空")
	}

	reg := &Registry{
		WorkContext:         lowerAll(spec.WorkContext),
		EduContext:          lowerAll(spec.EduContext),
		NameBlocklist:       upperAll(spec.NameBlocklist),
		FilenameNoiseWords:  lowerAll(spec.FilenameNoiseWords),
		TechContextWords:    lowerAll(spec.TechContextWords),
		JobContext:          lowerAll(spec.JobContext),
		CompanyContext:      lowerAll(spec.CompanyContext),
		CertSectionKeywords: lowerAll(spec.CertSectionKeywords),
		LocationTechTerms:   toSet(spec.LocationTechTerms, true),
		GenericTitles:       toSet(spec.GenericTitles, true),
		CompanyExcludeWords: toSet(spec.CompanyExcludeWords, true),
		SectionHeaders:      toSet(spec.SectionHeaders, true),
	}

	// 技能按模式长度降序编译，长词优先占位
	skillEntries := make([]SkillEntry, len(spec.Skills))
	copy(skillEntries, spec.Skills)
	sort.SliceStable(skillEntries, func(i, j int) bool {
		return len(skillEntries[i].Canonical) > len(skillEntries[j].Canonical)
	})
	for _, entry := range skillEntries {
		compiled, err := compileAll(entry.Patterns, "skill", entry.Canonical)
		if err != nil {
			return nil, err
		}
		reg.Skills = append(reg.Skills, Skill{Canonical: entry.Canonical, Patterns: compiled})
	}

	for _, entry := range spec.Certifications {
		compiled, err := compileAll(entry.Patterns, "certification", entry.Canonical)
		if err != nil {
			return nil, err
		}
		reg.Certifications = append(reg.Certifications, Certification{
			Canonical:        entry.Canonical,
			Patterns:         compiled,
			RequiredContext:  lowerAll(entry.RequiredContext),
			ForbiddenContext: lowerAll(entry.ForbiddenContext),
		})
	}

	for _, entry := range spec.EducationLevels {
		compiled, err := compileAll(entry.Patterns, "education", entry.Level)
		if err != nil {
			return nil, err
		}
		reg.EducationLevels = append(reg.EducationLevels, Education{
			Level:    types.EducationLevel(entry.Level),
			Patterns: compiled,
		})
	}

	var err error
	if reg.DateRanges, err = compileAll(spec.DateRanges, "date_range", ""); err != nil {
		return nil, err
	}
	if reg.PhonePatterns, err = compileAll(spec.PhonePatterns, "phone", ""); err != nil {
		return nil, err
	}
	if reg.JobTitlePatterns, err = compileAll(spec.JobTitlePatterns, "job_title", ""); err != nil {
		return nil, err
	}
	if reg.CompanyPatterns, err = compileAll(spec.CompanyPatterns, "company", ""); err != nil {
		return nil, err
	}

	return reg, nil
}

// Default 返回内置词表编译出的模式库
func Default() *Registry {
	reg, err := Compile(defaultSpec())
	if err != nil {
		// 内置词表属于编译期常量，编译失败意味着代码本身有问题
		panic(fmt.Sprintf("内置registry编译失败: %v", err))
	}
	return reg
}

// LoadFromFile 从YAML文件加载并编译模式库，
// 文件中省略的段落回退到内置词表对应的段落。
func LoadFromFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取registry文件失败: %w", err)
	}

	spec := defaultSpec()
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("解析registry文件失败: %w", err)
	}

	return Compile(spec)
}

func compileAll(patterns []string, kind, name string) ([]*regexp.Regexp, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("编译%s模式失败 (%s): %w", kind, name, err)
		}
		compiled = append(compiled, re)
	}
	return compiled, nil
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func upperAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToUpper(s)
	}
	return out
}

func toSet(in []string, lower bool) map[string]bool {
	set := make(map[string]bool, len(in))
	for _, s := range in {
		if lower {
			s = strings.ToLower(s)
		}
		set[s] = true
	}
	return set
}
