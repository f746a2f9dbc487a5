package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cv-insight-go/internal/analytics"
	"cv-insight-go/internal/config"
	"cv-insight-go/internal/constants"
	"cv-insight-go/internal/extractor"
	"cv-insight-go/internal/logger"
	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/scoring"
	storage2 "cv-insight-go/internal/storage"
	"cv-insight-go/internal/storage/models"
	"cv-insight-go/internal/types"
	"cv-insight-go/pkg/utils"
)

var handlerTracer = otel.Tracer("cv-insight-go/api/handler")

// CandidateHandler 候选人处理器，协调简历文本从上传到入库检索的完整流程
type CandidateHandler struct {
	cfg      *config.Config
	storage  *storage2.Storage
	registry *registry.Registry
}

// NewCandidateHandler 创建候选人处理器
func NewCandidateHandler(cfg *config.Config, storage *storage2.Storage, reg *registry.Registry) *CandidateHandler {
	return &CandidateHandler{
		cfg:      cfg,
		storage:  storage,
		registry: reg,
	}
}

// ResumeUploadResponse 简历上传响应
type ResumeUploadResponse struct {
	SubmissionUUID string `json:"submission_uuid"`
	Status         string `json:"status"`
}

// CandidateSummary 候选人列表中的单条记录，档案字段外带评分与溯源信息
type CandidateSummary struct {
	SubmissionUUID string                 `json:"submission_uuid"`
	Record         *types.CandidateRecord `json:"record"`
	FitScore       float64                `json:"fit_score"`
	CreatedAt      time.Time              `json:"created_at"`
}

// AnalyticsResponse 候选人池聚合统计
type AnalyticsResponse struct {
	TotalCandidates int64                        `json:"total_candidates"`
	Skills          []analytics.SkillCount       `json:"skills"`
	Education       map[types.EducationLevel]int `json:"education"`
	Experience      analytics.ExperienceBuckets  `json:"experience"`
}

// HandleResumeUpload 处理简历文本上传请求。
// 文本MD5重复的提交直接跳过，不生成新档案。
func (h *CandidateHandler) HandleResumeUpload(ctx context.Context, text, filename string) (*ResumeUploadResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("简历文本不能为空")
	}

	// 0. 计算文本MD5并做去重检查
	textMD5Hex := utils.CalculateMD5([]byte(text))

	exists, err := h.storage.Redis.TextMD5Exists(ctx, textMD5Hex)
	if err != nil {
		// 去重是重要逻辑，Redis查询失败直接报错而不是放行
		logger.Error().
			Err(err).
			Str("md5", textMD5Hex).
			Msg("查询Redis文本MD5 Set失败")
		return nil, fmt.Errorf("检查文本MD5重复性时Redis查询失败: %w", err)
	}

	if exists {
		logger.Info().
			Str("md5", textMD5Hex).
			Str("filename", filename).
			Msg("检测到重复的文本MD5，跳过处理")
		return &ResumeUploadResponse{
			SubmissionUUID: "",
			Status:         "DUPLICATE_TEXT_SKIPPED",
		}, nil
	}

	// 1. 生成UUIDv7
	uuidV7, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("生成UUIDv7失败: %w", err)
	}
	submissionUUID := uuidV7.String()

	// 2. 归档原文到MinIO
	rawTextPath, err := h.storage.MinIO.UploadRawText(ctx, submissionUUID, text)
	if err != nil {
		return nil, fmt.Errorf("归档简历原文到MinIO失败: %w", err)
	}

	// 归档成功后把文本MD5记入去重集合。失败不阻塞流程，
	// 只是这份文本的去重防线暂时失效。
	if err := h.storage.Redis.RecordTextMD5(ctx, textMD5Hex); err != nil {
		logger.Warn().
			Err(err).
			Str("md5", textMD5Hex).
			Str("raw_text_path", rawTextPath).
			Msg("记录文本MD5到Redis失败，原文已归档")
	}

	// 3. 发布上传事件，抽取由消费者异步完成
	event := types.ResumeUploadedEvent{
		SubmissionUUID: submissionUUID,
		SourceFilename: filename,
		RawTextPathOSS: rawTextPath,
		RawTextMD5:     textMD5Hex,
		UploadedAt:     time.Now(),
	}

	err = h.storage.RabbitMQ.PublishJSON(
		ctx,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		h.cfg.RabbitMQ.UploadedRoutingKey,
		event,
		true, // 持久化
	)
	if err != nil {
		return nil, fmt.Errorf("发布消息到RabbitMQ失败: %w", err)
	}

	return &ResumeUploadResponse{
		SubmissionUUID: submissionUUID,
		Status:         "SUBMITTED_FOR_EXTRACTION",
	}, nil
}

// StartExtractionConsumer 声明交换机/队列并启动抽取消费者。
// ExtractionWorkers 决定并行消费者数量，消息由broker轮转分发。
func (h *CandidateHandler) StartExtractionConsumer(ctx context.Context) error {
	logger.Info().
		Str("exchange", h.cfg.RabbitMQ.ResumeEventsExchange).
		Str("routing_key", h.cfg.RabbitMQ.UploadedRoutingKey).
		Msg("初始化RabbitMQ配置")

	// 1. 确保交换机和队列存在
	if err := h.storage.RabbitMQ.EnsureExchange(h.cfg.RabbitMQ.ResumeEventsExchange, "direct", true); err != nil {
		return fmt.Errorf("确保交换机存在失败: %w", err)
	}

	if err := h.storage.RabbitMQ.EnsureQueue(h.cfg.RabbitMQ.UploadedQueue, true); err != nil {
		return fmt.Errorf("确保队列存在失败: %w", err)
	}

	if err := h.storage.RabbitMQ.BindQueue(
		h.cfg.RabbitMQ.UploadedQueue,
		h.cfg.RabbitMQ.ResumeEventsExchange,
		h.cfg.RabbitMQ.UploadedRoutingKey,
	); err != nil {
		return fmt.Errorf("绑定队列失败: %w", err)
	}

	workers := h.cfg.Engine.ExtractionWorkers
	if workers <= 0 {
		workers = 1
	}

	logger.Info().
		Str("queue", h.cfg.RabbitMQ.UploadedQueue).
		Int("workers", workers).
		Msg("简历抽取消费者就绪")

	// 2. 启动消费者
	for i := 0; i < workers; i++ {
		_, err := h.storage.RabbitMQ.StartConsumer(h.cfg.RabbitMQ.UploadedQueue, h.cfg.RabbitMQ.PrefetchCount, func(data []byte) bool {
			var event types.ResumeUploadedEvent
			if err := json.Unmarshal(data, &event); err != nil {
				// 坏消息重试也解析不了，确认丢弃避免死循环
				logger.Error().Err(err).Msg("解析上传事件失败")
				return true
			}

			if err := h.processSubmission(ctx, event); err != nil {
				logger.Error().
					Err(err).
					Str("submission_uuid", event.SubmissionUUID).
					Msg("处理简历提交失败")
				// 抽取器对坏文本返回的是确定性错误，重试无意义，
				// 直接确认丢弃；只有存储侧的瞬态错误才重新入队
				return isPermanentError(err)
			}

			return true
		})
		if err != nil {
			return fmt.Errorf("启动消费者失败: %w", err)
		}
	}

	return nil
}

// processSubmission 消费单条上传事件：回读原文、抽取、评分、落库
func (h *CandidateHandler) processSubmission(ctx context.Context, event types.ResumeUploadedEvent) error {
	ctx, span := handlerTracer.Start(ctx, "handler.processSubmission",
		trace.WithSpanKind(trace.SpanKindConsumer))
	defer span.End()
	span.SetAttributes(attribute.String("submission.uuid", event.SubmissionUUID))

	// 1. 从MinIO回读原文
	text, err := h.storage.MinIO.GetRawText(ctx, event.RawTextPathOSS)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("从MinIO获取简历原文失败: %w", err)
	}

	// 2. 抽取候选人记录
	record, err := extractor.Extract(text, event.SourceFilename, h.registry, time.Now())
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("抽取候选人记录失败: %w", err)
	}

	// 3. 计算匹配度评分并组装档案行
	profile := models.FromRecord(event.SubmissionUUID, record)
	profile.FitScore = scoring.FitScore(record)
	profile.RawTextPathOSS = event.RawTextPathOSS
	profile.RawTextMD5 = event.RawTextMD5
	profile.EngineVersion = constants.EngineVersion

	// 4. 落库
	if err := h.storage.MySQL.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("保存候选人档案失败: %w", err)
	}

	// 候选人池变了，旧的检索缓存不再可信
	if err := h.storage.Redis.InvalidateSearchCache(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("submission_uuid", event.SubmissionUUID).
			Msg("清理检索缓存失败")
	}

	logger.Info().
		Str("submission_uuid", event.SubmissionUUID).
		Str("name", record.Name).
		Float64("fit_score", profile.FitScore).
		Msg("候选人档案已入库")
	return nil
}

// isPermanentError 判断错误是否无法通过重试恢复
func isPermanentError(err error) bool {
	var extractErr *extractor.ExtractError
	return errors.As(err, &extractErr)
}

// HandleGetCandidate 查询单个候选人档案
func (h *CandidateHandler) HandleGetCandidate(ctx context.Context, submissionUUID string) (*CandidateSummary, error) {
	profile, err := h.storage.MySQL.GetProfile(ctx, submissionUUID)
	if err != nil {
		return nil, err
	}
	return summaryFromProfile(profile), nil
}

// HandleListCandidates 列出全部候选人档案
func (h *CandidateHandler) HandleListCandidates(ctx context.Context) ([]*CandidateSummary, error) {
	profiles, err := h.storage.MySQL.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]*CandidateSummary, 0, len(profiles))
	for _, profile := range profiles {
		summaries = append(summaries, summaryFromProfile(profile))
	}
	return summaries, nil
}

// HandleSearch 按自由文本查询做相关性排序，结果带短时缓存。
// 缓存键是查询串的MD5，候选人池变化时整体失效。
func (h *CandidateHandler) HandleSearch(ctx context.Context, query string) ([]types.RankedCandidate, error) {
	queryMD5 := utils.CalculateMD5([]byte(normalizeQuery(query)))

	cached, err := h.storage.Redis.GetSearchCache(ctx, queryMD5)
	if err == nil {
		var ranked []types.RankedCandidate
		if jsonErr := json.Unmarshal([]byte(cached), &ranked); jsonErr == nil {
			logger.Debug().Str("query_md5", queryMD5).Msg("检索缓存命中")
			return ranked, nil
		}
		// 缓存内容损坏，当作未命中重新计算
	} else if !errors.Is(err, storage2.ErrNotFound) {
		logger.Warn().Err(err).Msg("读取检索缓存失败，回退到实时计算")
	}

	profiles, err := h.storage.MySQL.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*types.CandidateRecord, 0, len(profiles))
	for _, profile := range profiles {
		records = append(records, profile.ToRecord())
	}

	ranked := scoring.RankCandidates(records, query)

	if payload, jsonErr := json.Marshal(ranked); jsonErr == nil {
		if cacheErr := h.storage.Redis.SetSearchCache(ctx, queryMD5, string(payload)); cacheErr != nil {
			logger.Warn().Err(cacheErr).Msg("写入检索缓存失败")
		}
	}

	return ranked, nil
}

// HandleAnalytics 聚合候选人池的技能/学历/经验分布
func (h *CandidateHandler) HandleAnalytics(ctx context.Context) (*AnalyticsResponse, error) {
	profiles, err := h.storage.MySQL.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*types.CandidateRecord, 0, len(profiles))
	for _, profile := range profiles {
		records = append(records, profile.ToRecord())
	}

	total, err := h.storage.MySQL.CountProfiles(ctx)
	if err != nil {
		return nil, err
	}

	return &AnalyticsResponse{
		TotalCandidates: total,
		Skills:          analytics.SkillsDistribution(records),
		Education:       analytics.EducationDistribution(records),
		Experience:      analytics.BucketExperience(records),
	}, nil
}

// CollectRecordsForExport 取出全部候选人记录供CSV导出
func (h *CandidateHandler) CollectRecordsForExport(ctx context.Context) ([]*types.CandidateRecord, error) {
	profiles, err := h.storage.MySQL.ListProfiles(ctx)
	if err != nil {
		return nil, err
	}

	records := make([]*types.CandidateRecord, 0, len(profiles))
	for _, profile := range profiles {
		records = append(records, profile.ToRecord())
	}
	return records, nil
}

// normalizeQuery 检索缓存键对大小写和首尾空白不敏感
func normalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func summaryFromProfile(profile *models.CandidateProfile) *CandidateSummary {
	return &CandidateSummary{
		SubmissionUUID: profile.SubmissionUUID,
		Record:         profile.ToRecord(),
		FitScore:       profile.FitScore,
		CreatedAt:      profile.CreatedAt,
	}
}
