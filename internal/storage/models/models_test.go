package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-insight-go/internal/types"
)

func TestFromRecordToRecordRoundTrip(t *testing.T) {
	record := &types.CandidateRecord{
		Name:            "John Smith",
		Email:           "john.smith@example.com",
		Phone:           "(555) 123-4567",
		Location:        "Austin, TX",
		Skills:          []string{"Go", "Python", "AWS"},
		Companies:       []string{"Acme Corp"},
		JobTitles:       []string{"Software Engineer"},
		EducationLevel:  types.EducationBachelor,
		Certifications:  []string{"AWS Certified"},
		YearsExperience: 7.0,
		SourceID:        "john_smith_resume.txt",
	}

	profile := FromRecord("0190a1b2-0000-7000-8000-000000000001", record)
	assert.Equal(t, "0190a1b2-0000-7000-8000-000000000001", profile.SubmissionUUID)
	assert.Equal(t, "Bachelor's", profile.EducationLevel)

	restored := profile.ToRecord()
	require.Equal(t, record, restored)
}

func TestFromRecordEmptyLists(t *testing.T) {
	// 空列表要落成"[]"，回读后保持为空
	record := &types.CandidateRecord{SourceID: "empty.txt"}
	profile := FromRecord("uuid-x", record)

	assert.Equal(t, "[]", string(profile.SkillsJSON))
	assert.Equal(t, "[]", string(profile.CertsJSON))

	restored := profile.ToRecord()
	assert.Empty(t, restored.Skills)
	assert.Empty(t, restored.Certifications)
	assert.Equal(t, "empty.txt", restored.SourceID)
}
