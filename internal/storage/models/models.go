package models

import (
	"time"

	"gorm.io/datatypes"

	"cv-insight-go/internal/types"
	"cv-insight-go/pkg/utils"
)

// CandidateProfile 抽取出的候选人档案表，一条记录对应一次简历提交。
// 列表类字段（技能/公司/头衔/认证）以JSON列存储。
type CandidateProfile struct {
	SubmissionUUID  string         `gorm:"type:char(36);primaryKey"`
	Name            string         `gorm:"type:varchar(255);index:idx_cp_name"`
	Email           string         `gorm:"type:varchar(255);index:idx_cp_email"`
	Phone           string         `gorm:"type:varchar(50)"`
	Location        string         `gorm:"type:varchar(255)"`
	SkillsJSON      datatypes.JSON `gorm:"type:json"`
	CompaniesJSON   datatypes.JSON `gorm:"type:json"`
	JobTitlesJSON   datatypes.JSON `gorm:"type:json"`
	EducationLevel  string         `gorm:"type:varchar(50);index:idx_cp_education_level"`
	CertsJSON       datatypes.JSON `gorm:"type:json"`
	YearsExperience float64        `gorm:"type:float"`
	FitScore        float64        `gorm:"type:float;index:idx_cp_fit_score"`
	SourceFilename  string         `gorm:"type:varchar(255)"`
	RawTextPathOSS  string         `gorm:"type:varchar(1024)"`
	RawTextMD5      string         `gorm:"type:char(32);index:idx_cp_raw_text_md5"`
	EngineVersion   string         `gorm:"type:varchar(50)"`
	CreatedAt       time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6)"`
	UpdatedAt       time.Time      `gorm:"type:datetime(6);default:CURRENT_TIMESTAMP(6);autoUpdateTime"`
}

func (CandidateProfile) TableName() string {
	return "candidate_profiles"
}

// FromRecord 由抽取结果构造档案行，打分与溯源信息由调用方补充
func FromRecord(submissionUUID string, record *types.CandidateRecord) *CandidateProfile {
	return &CandidateProfile{
		SubmissionUUID:  submissionUUID,
		Name:            record.Name,
		Email:           record.Email,
		Phone:           record.Phone,
		Location:        record.Location,
		SkillsJSON:      utils.ArrayToJSON(record.Skills),
		CompaniesJSON:   utils.ArrayToJSON(record.Companies),
		JobTitlesJSON:   utils.ArrayToJSON(record.JobTitles),
		EducationLevel:  string(record.EducationLevel),
		CertsJSON:       utils.ArrayToJSON(record.Certifications),
		YearsExperience: record.YearsExperience,
		SourceFilename:  record.SourceID,
	}
}

// ToRecord 把档案行还原成引擎侧的候选人记录
func (p *CandidateProfile) ToRecord() *types.CandidateRecord {
	return &types.CandidateRecord{
		Name:            p.Name,
		Email:           p.Email,
		Phone:           p.Phone,
		Location:        p.Location,
		Skills:          utils.JSONToArray(p.SkillsJSON),
		Companies:       utils.JSONToArray(p.CompaniesJSON),
		JobTitles:       utils.JSONToArray(p.JobTitlesJSON),
		EducationLevel:  types.EducationLevel(p.EducationLevel),
		Certifications:  utils.JSONToArray(p.CertsJSON),
		YearsExperience: p.YearsExperience,
		SourceID:        p.SourceFilename,
	}
}
