package exporter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"cv-insight-go/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	records := []*types.CandidateRecord{
		{
			Name:            "John Smith",
			Email:           "john@example.com",
			Phone:           "555-123-4567",
			Location:        "Austin, TX",
			Skills:          []string{"Python", "AWS"},
			Companies:       []string{"Acme Corp"},
			JobTitles:       []string{"Software Engineer"},
			EducationLevel:  types.EducationBachelor,
			Certifications:  []string{"AWS Certified"},
			YearsExperience: 7,
			SourceID:        "john_smith_resume.pdf",
		},
		nil, // nil记录跳过
		{Name: "Empty Fields", EducationLevel: types.EducationNotSpecified},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3, "表头 + 2条记录")

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"John Smith", "john@example.com", "555-123-4567", "Austin, TX",
		"Python; AWS", "Acme Corp", "Software Engineer", "Bachelor's",
		"AWS Certified", "7.0", "john_smith_resume.pdf",
	}, rows[1])
	assert.Equal(t, "Empty Fields", rows[2][0])
	assert.Equal(t, "Not Specified", rows[2][7])
	assert.Equal(t, "0.0", rows[2][9])
}

func TestWriteCSVEmptyList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "只有表头")
}
