package extractor

import (
	"testing"
	"time"

	"cv-insight-go/internal/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

// TestResolveExperienceSumsWorkRanges 两段工作日期独立求和：3 + 4 = 7
func TestResolveExperienceSumsWorkRanges(t *testing.T) {
	reg := registry.Default()
	text := "Software Engineer | Company A | 2015 - 2018\n" +
		"Senior Engineer | Company B | 2018 - 2022\n"

	years := ResolveExperience(text, reg, testNow)
	assert.Equal(t, 7.0, years)
}

// TestResolveExperienceExcludesEducationDates 教育上下文中的日期一票否决，
// 即使文本中没有任何其他日期
func TestResolveExperienceExcludesEducationDates(t *testing.T) {
	reg := registry.Default()
	text := "Bachelor's Degree | University XYZ | 2011 - 2015\n"

	years := ResolveExperience(text, reg, testNow)
	assert.Equal(t, 0.0, years)
}

// TestResolveExperienceExcludesAmbiguousDates 窗口内两类关键词都没有的日期
// 保守排除，宁可漏算
func TestResolveExperienceExcludesAmbiguousDates(t *testing.T) {
	reg := registry.Default()
	text := "lorem ipsum dolor sit amet\n2010 - 2014\nconsectetur adipiscing elit\n"

	years := ResolveExperience(text, reg, testNow)
	assert.Equal(t, 0.0, years)
}

// TestResolveExperienceExcludesImplausibleYears 1950年之前的起始年无条件排除
func TestResolveExperienceExcludesImplausibleYears(t *testing.T) {
	reg := registry.Default()
	text := "Worked as an engineer at the company plant\n1900 - 1940\n"

	years := ResolveExperience(text, reg, testNow)
	assert.Equal(t, 0.0, years)
}

// TestResolveExperienceOpenEndedUsesInjectedNow 开区间用注入的now收尾，
// 保证结果可复现
func TestResolveExperienceOpenEndedUsesInjectedNow(t *testing.T) {
	reg := registry.Default()
	text := "Senior Software Engineer at Initech\n2020 - Present\n"

	years := ResolveExperience(text, reg, testNow)
	assert.Equal(t, 6.0, years)

	earlier := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 3.0, ResolveExperience(text, reg, earlier))
}

// TestResolveExperienceClampsTotal 总和超过50年收敛到上限
func TestResolveExperienceClampsTotal(t *testing.T) {
	reg := registry.Default()
	text := "Engineer experience at the company\n1960 - 2020\n" +
		"More engineer work experience\n1955 - 2015\n"

	years := ResolveExperience(text, reg, testNow)
	assert.Equal(t, 50.0, years)
}

// TestResolveExperienceDiscardsInvertedRanges 结束早于起始的区间丢弃
func TestResolveExperienceDiscardsInvertedRanges(t *testing.T) {
	reg := registry.Default()
	text := "Engineer experience at the company\n2020 - 2015\n"

	assert.Equal(t, 0.0, ResolveExperience(text, reg, testNow))
}

// TestFindDateRangesClassification 三种分类各自有明确的归属
func TestFindDateRangesClassification(t *testing.T) {
	reg := registry.Default()
	text := "Software Engineer at the company\n2015 - 2018\n" +
		"- built and maintained the deployment automation and release tooling used by the platform team across many services and regions\n" +
		"University Bachelor's Degree studies\n2011 - 2015\n"

	ranges := FindDateRanges(text, reg)
	require.Len(t, ranges, 2)
	assert.Equal(t, DateWork, ranges[0].Class)
	assert.Equal(t, 2015, ranges[0].StartYear)
	assert.Equal(t, 2018, ranges[0].EndYear)
	assert.Equal(t, DateEducation, ranges[1].Class)
}

// TestFindDateRangesMonthNameFormat 月份名格式的区间也能发现
func TestFindDateRangesMonthNameFormat(t *testing.T) {
	reg := registry.Default()
	text := "Software Engineer position at the company\nJan 2019 - Mar 2024\n"

	ranges := FindDateRanges(text, reg)
	require.Len(t, ranges, 1)
	assert.Equal(t, 2019, ranges[0].StartYear)
	assert.Equal(t, 2024, ranges[0].EndYear)
	assert.Equal(t, DateWork, ranges[0].Class)
}
