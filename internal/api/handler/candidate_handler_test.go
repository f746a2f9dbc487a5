package handler

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cv-insight-go/internal/extractor"
	"cv-insight-go/internal/storage/models"
	"cv-insight-go/internal/types"
	"cv-insight-go/pkg/utils"
)

func TestIsPermanentError(t *testing.T) {
	// 抽取错误是确定性的，重试不会有不同结果
	extractErr := extractor.NewExtractError("bad.txt", "extract", extractor.ErrInvalidInput, "")
	assert.True(t, isPermanentError(extractErr))
	assert.True(t, isPermanentError(fmt.Errorf("抽取候选人记录失败: %w", extractErr)))

	// 存储侧错误视为瞬态，消息重新入队
	assert.False(t, isPermanentError(errors.New("connection refused")))
	assert.False(t, isPermanentError(fmt.Errorf("保存候选人档案失败: %w", errors.New("deadlock"))))
}

func TestSummaryFromProfile(t *testing.T) {
	record := &types.CandidateRecord{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		Skills:          []string{"Go", "Kubernetes"},
		EducationLevel:  types.EducationMaster,
		YearsExperience: 5.0,
		SourceID:        "jane_doe.txt",
	}
	profile := models.FromRecord("0190a1b2-0000-7000-8000-0000000000ff", record)
	profile.FitScore = 62.5
	profile.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	summary := summaryFromProfile(profile)
	require.NotNil(t, summary)
	assert.Equal(t, "0190a1b2-0000-7000-8000-0000000000ff", summary.SubmissionUUID)
	assert.Equal(t, 62.5, summary.FitScore)
	assert.Equal(t, "Jane Doe", summary.Record.Name)
	assert.Equal(t, types.EducationMaster, summary.Record.EducationLevel)
	assert.Equal(t, profile.CreatedAt, summary.CreatedAt)
}

func TestSearchCacheKeyNormalization(t *testing.T) {
	// 查询串大小写和首尾空白不应产生不同的缓存键
	key1 := utils.CalculateMD5([]byte("golang engineer"))
	key2 := utils.CalculateMD5([]byte("  Golang Engineer  "))
	assert.NotEqual(t, key1, key2)

	normalize := func(q string) string {
		return utils.CalculateMD5([]byte(normalizeQuery(q)))
	}
	assert.Equal(t, normalize("golang engineer"), normalize("  Golang Engineer  "))
}
