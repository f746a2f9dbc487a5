package extractor

import (
	"strings"
	"testing"

	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleResume 一份覆盖全部字段的样例简历文本
const sampleResume = `John Smith
john.smith@Example.COM
555-123-4567
San Francisco, California

SUMMARY
Software Engineer with Python and AWS experience.

EXPERIENCE
Software Engineer | Company A | 2015 - 2018
- Worked with platform teams at Globex Corp on service migrations
- Maintained the deployment automation used across multiple environments
Senior Engineer | Company B | 2018 - 2022
- Led a team of five engineers building the billing service
- Designed, launched and operated several high traffic internal APIs

EDUCATION
Bachelor's Degree | University XYZ | 2011 - 2015

CERTIFICATIONS
AWS Certified Solutions Architect
`

func TestExtractFullRecord(t *testing.T) {
	reg := registry.Default()

	record, err := Extract(sampleResume, "john_smith_resume.pdf", reg, testNow)
	require.NoError(t, err)
	require.NotNil(t, record)

	assert.Equal(t, "John Smith", record.Name)
	assert.Equal(t, "john.smith@example.com", record.Email, "邮箱域名应统一小写")
	assert.Equal(t, "555-123-4567", record.Phone)
	assert.Equal(t, "San Francisco, California", record.Location)
	assert.Contains(t, record.Skills, "Python")
	assert.Contains(t, record.Skills, "AWS")
	assert.Contains(t, record.Companies, "Globex Corp")
	assert.Contains(t, record.JobTitles, "Software Engineer")
	assert.Contains(t, record.JobTitles, "Senior Engineer")
	assert.Equal(t, types.EducationBachelor, record.EducationLevel)
	assert.Equal(t, []string{"AWS Certified"}, record.Certifications)
	assert.Equal(t, 7.0, record.YearsExperience, "教育日期不计入，2段工作日期3+4=7")
	assert.Equal(t, "john_smith_resume.pdf", record.SourceID)
}

// TestExtractIdempotent 同一文本抽取两次结果完全一致
func TestExtractIdempotent(t *testing.T) {
	reg := registry.Default()

	first, err := Extract(sampleResume, "john_smith_resume.pdf", reg, testNow)
	require.NoError(t, err)
	second, err := Extract(sampleResume, "john_smith_resume.pdf", reg, testNow)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestExtractInvalidInput 空白文本快速失败，错误可用errors.Is判定
func TestExtractInvalidInput(t *testing.T) {
	reg := registry.Default()

	_, err := Extract("   \n\t  ", "empty.pdf", reg, testNow)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var extractErr *ExtractError
	require.ErrorAs(t, err, &extractErr)
	assert.Equal(t, "empty.pdf", extractErr.SourceID)
}

// TestExtractRecordInvariants 上限不变式对任何输入都成立
func TestExtractRecordInvariants(t *testing.T) {
	reg := registry.Default()

	// 堆一段技能、认证、日期都超量的文本
	var b strings.Builder
	b.WriteString("Jane Doe\n")
	b.WriteString("Python Java Go Rust Ruby PHP Scala Kotlin Swift Docker Kubernetes Terraform Linux Redis Kafka\n")
	b.WriteString("AWS Certified, Azure Certified, PMP, CISSP, CEH, ITIL, CCNA certified, Scrum Master, TOGAF, Six Sigma, PRINCE2, CAPM, CISM, CISA, RHCE certified, MCSA, Tableau Certified\n")
	for i := 0; i < 30; i++ {
		b.WriteString("Engineer work experience at the company\n1960 - 2020\n")
	}

	record, err := Extract(b.String(), "jane.pdf", reg, testNow)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(record.Skills), types.MaxSkills)
	assert.LessOrEqual(t, len(record.Certifications), types.MaxCertifications)
	assert.GreaterOrEqual(t, record.YearsExperience, 0.0)
	assert.LessOrEqual(t, record.YearsExperience, types.MaxYearsExp)
	assert.LessOrEqual(t, len(record.Companies), types.MaxCompanies)
	assert.LessOrEqual(t, len(record.JobTitles), types.MaxJobTitles)
}

func TestExtractName(t *testing.T) {
	reg := registry.Default()

	// 黑名单头部行被跳过，第一个合格行胜出
	name := ExtractName("CURRICULUM VITAE\nJane O'Brien\nSoftware Engineer\n", "x.pdf", reg)
	assert.Equal(t, "Jane O'Brien", name)

	// 文本里找不到时回退到文件名：去噪声词、去数字、Title Case
	name = ExtractName("EXPERIENCE\n2015 - 2018\nskills: python\n", "john_doe_resume_2024.pdf", reg)
	assert.Equal(t, "John Doe", name)

	// 两条路都失败返回空串
	name = ExtractName("RESUME\nEXPERIENCE\n", "resume_cv.pdf", reg)
	assert.Equal(t, "", name)
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "a.b@corp.io", ExtractEmail("contact: a.b@Corp.IO / backup@example.com"))
	assert.Equal(t, "", ExtractEmail("no email here"))
}

func TestExtractPhone(t *testing.T) {
	reg := registry.Default()

	assert.Equal(t, "555-123-4567", ExtractPhone("call 555-123-4567 anytime", reg))
	assert.Equal(t, "+86-010-1234-5678", ExtractPhone("tel +86-010-1234-5678", reg))
	assert.Equal(t, "5551234567", ExtractPhone("mobile 5551234567", reg))
	// 日期区间内部的数字不是电话
	assert.Equal(t, "", ExtractPhone("tenure 2015 - 2018 at the office", reg))
}

func TestExtractLocation(t *testing.T) {
	reg := registry.Default()

	assert.Equal(t, "Austin, TX", ExtractLocation("Jane Roe\nAustin, TX\n", reg))

	// 技能列表里的 "Python, Django" 不是地名
	assert.Equal(t, "", ExtractLocation("Proficient in Python, Django and more\n", reg))

	// 头部1000字符之外不找
	far := strings.Repeat("x", 1100) + "\nBoston, Massachusetts\n"
	assert.Equal(t, "", ExtractLocation(far, reg))
}

func TestExtractSkills(t *testing.T) {
	reg := registry.Default()

	// 首次出现顺序，重复提及不重复计数
	skills := ExtractSkills("Machine Learning, Python and AWS. Python everywhere.", reg)
	assert.Equal(t, []string{"Machine Learning", "Python", "AWS"}, skills)

	// 整词匹配：Java 不应该从 JavaScript 中析出
	skills = ExtractSkills("JavaScript developer", reg)
	assert.Contains(t, skills, "JavaScript")
	assert.NotContains(t, skills, "Java")
}

func TestExtractEducationSingleWinner(t *testing.T) {
	reg := registry.Default()

	// PhD 与 Bachelor's 同现时取最高
	level := ExtractEducation("PhD in Computer Science. Bachelor's in Math.", reg)
	assert.Equal(t, types.EducationPhD, level)

	level = ExtractEducation("nothing relevant in this text", reg)
	assert.Equal(t, types.EducationNotSpecified, level)
}

func TestExtractCertificationsDedup(t *testing.T) {
	reg := registry.Default()

	// 多个AWS认证措辞折叠为一个规范名
	certs := ExtractCertifications("AWS Certified Solutions Architect\nAWS Certified Developer\n", reg)
	assert.Equal(t, []string{"AWS Certified"}, certs)
}

func TestExtractCertificationsRequiredContext(t *testing.T) {
	reg := registry.Default()

	// Postman 单独出现多半是技能提及，必须与API语境同现
	certs := ExtractCertifications("Tools: Postman, curl, jq\n", reg)
	assert.NotContains(t, certs, "Postman")

	certs = ExtractCertifications("Postman Student Expert certification holder\n", reg)
	assert.Contains(t, certs, "Postman")
}

func TestExtractCertificationsGenericSection(t *testing.T) {
	reg := registry.Default()

	text := "CERTIFICATIONS\n" +
		"Offensive Security Professional (OSCP)\n" +
		"Data Engineering Associate - Example Institute\n" +
		"SKILLS\n" +
		"Advanced Networking - not a certification section anymore\n"

	certs := ExtractCertifications(text, reg)
	assert.Contains(t, certs, "Offensive Security Professional")
	assert.Contains(t, certs, "Data Engineering Associate")
	assert.NotContains(t, certs, "Advanced Networking")
}

func TestExtractCompanies(t *testing.T) {
	reg := registry.Default()

	companies := ExtractCompanies("Worked at Acme Corp from 2015 to 2018. Later employed with Initech Technologies remotely.", reg)
	assert.Contains(t, companies, "Acme Corp")
	assert.Contains(t, companies, "Initech Technologies")

	// 大小写变体不区分，去重
	companies = ExtractCompanies("worked at Acme Corp and later worked at ACME Corp again", reg)
	assert.Len(t, companies, 1)
}

func TestExtractJobTitlesCaseSensitiveDedup(t *testing.T) {
	reg := registry.Default()

	// 写法不同的同一头衔保留两份（区分大小写去重）
	text := "Role: Software Engineer at the company.\nPrevious position: software engineer elsewhere.\n"
	titles := ExtractJobTitles(text, reg)
	assert.Contains(t, titles, "Software Engineer")
	assert.Contains(t, titles, "software engineer")
}
