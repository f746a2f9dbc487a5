package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"cv-insight-go/internal/config"
	"cv-insight-go/internal/storage/models"
)

var mysqlTracer = otel.Tracer("cv-insight-go/storage/mysql")

// ErrProfileNotFound 查询的候选人档案不存在
var ErrProfileNotFound = errors.New("candidate profile not found")

// MySQL 候选人档案的持久化层
type MySQL struct {
	db *gorm.DB
}

// NewMySQL 建立MySQL连接并完成连接池与日志配置
func NewMySQL(cfg *config.MySQLConfig) (*MySQL, error) {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local&timeout=%ds&readTimeout=%ds&writeTimeout=%ds",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
		cfg.ConnectTimeoutSeconds, cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.LogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取底层sql.DB失败: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute)

	return &MySQL{db: db}, nil
}

// AutoMigrate 同步表结构
func (m *MySQL) AutoMigrate() error {
	return m.db.AutoMigrate(&models.CandidateProfile{})
}

// SaveProfile 写入或更新候选人档案（按SubmissionUUID幂等）
func (m *MySQL) SaveProfile(ctx context.Context, profile *models.CandidateProfile) error {
	ctx, span := mysqlTracer.Start(ctx, "mysql.SaveProfile")
	defer span.End()
	span.SetAttributes(attribute.String("submission.uuid", profile.SubmissionUUID))

	err := m.db.WithContext(ctx).Save(profile).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("保存候选人档案失败: %w", err)
	}
	return nil
}

// GetProfile 按提交UUID取单条档案
func (m *MySQL) GetProfile(ctx context.Context, submissionUUID string) (*models.CandidateProfile, error) {
	ctx, span := mysqlTracer.Start(ctx, "mysql.GetProfile")
	defer span.End()
	span.SetAttributes(attribute.String("submission.uuid", submissionUUID))

	var profile models.CandidateProfile
	err := m.db.WithContext(ctx).First(&profile, "submission_uuid = ?", submissionUUID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("查询候选人档案失败: %w", err)
	}
	return &profile, nil
}

// ListProfiles 按创建时间升序列出全部档案。
// 相关性排序依赖稳定的输入顺序，这里必须有确定的排序键。
func (m *MySQL) ListProfiles(ctx context.Context) ([]*models.CandidateProfile, error) {
	ctx, span := mysqlTracer.Start(ctx, "mysql.ListProfiles")
	defer span.End()

	var profiles []*models.CandidateProfile
	err := m.db.WithContext(ctx).Order("created_at ASC, submission_uuid ASC").Find(&profiles).Error
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("列出候选人档案失败: %w", err)
	}
	span.SetAttributes(attribute.Int("profiles.count", len(profiles)))
	return profiles, nil
}

// CountProfiles 档案总数
func (m *MySQL) CountProfiles(ctx context.Context) (int64, error) {
	ctx, span := mysqlTracer.Start(ctx, "mysql.CountProfiles")
	defer span.End()

	var count int64
	if err := m.db.WithContext(ctx).Model(&models.CandidateProfile{}).Count(&count).Error; err != nil {
		span.SetStatus(codes.Error, err.Error())
		return 0, fmt.Errorf("统计候选人档案失败: %w", err)
	}
	return count, nil
}

// Close 关闭底层连接池
func (m *MySQL) Close() error {
	sqlDB, err := m.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
