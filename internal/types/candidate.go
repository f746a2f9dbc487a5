package types

import "time"

// EducationLevel 学历等级，取值固定且单值（取检测到的最高等级）
type EducationLevel string

const (
	// EducationPhD 博士
	EducationPhD EducationLevel = "PhD"
	// EducationMaster 硕士
	EducationMaster EducationLevel = "Master's"
	// EducationBachelor 本科
	EducationBachelor EducationLevel = "Bachelor's"
	// EducationAssociate 大专（副学士）
	EducationAssociate EducationLevel = "Associate's"
	// EducationDiploma 文凭/证书类
	EducationDiploma EducationLevel = "Diploma"
	// EducationNotSpecified 未检出任何学历关键词
	EducationNotSpecified EducationLevel = "Not Specified"
)

// 提取结果的硬上限，超出部分按首次出现顺序截断
const (
	MaxSkills         = 10
	MaxCompanies      = 10
	MaxJobTitles      = 5
	MaxCertifications = 15
	MaxYearsExp       = 50.0
)

// CandidateRecord 一份简历文本抽取出的结构化候选人记录。
// 由抽取流水线一次性构建，之后不再修改；缺失字段为零值而非错误。
type CandidateRecord struct {
	Name            string         `json:"name"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	Location        string         `json:"location"`
	Skills          []string       `json:"skills"`
	Companies       []string       `json:"companies"`
	JobTitles       []string       `json:"job_titles"`
	EducationLevel  EducationLevel `json:"education_level"`
	Certifications  []string       `json:"certifications"`
	YearsExperience float64        `json:"years_experience"`
	SourceID        string         `json:"source_id"`
}

// RankedCandidate 检索排序结果中的单个候选人及其相关性得分
type RankedCandidate struct {
	Record *CandidateRecord `json:"record"`
	Score  float64          `json:"score"`
}

// ResumeUploadedEvent 简历文本上传完成后发布到消息队列的事件
type ResumeUploadedEvent struct {
	SubmissionUUID string    `json:"submission_uuid"`
	SourceFilename string    `json:"source_filename"`
	RawTextPathOSS string    `json:"raw_text_path_oss"`
	RawTextMD5     string    `json:"raw_text_md5"`
	UploadedAt     time.Time `json:"uploaded_at"`
}
