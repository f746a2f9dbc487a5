package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/minio/minio-go/v7/pkg/lifecycle"

	"cv-insight-go/internal/config"
	"cv-insight-go/internal/logger"
)

// ObjectStorage 对象存储接口，简历原文的归档与回读
type ObjectStorage interface {
	// UploadRawText 归档一份简历原文，返回对象路径
	UploadRawText(ctx context.Context, submissionUUID string, text string) (string, error)

	// GetRawText 按对象路径取回原文
	GetRawText(ctx context.Context, objectName string) (string, error)

	// DeleteObject 删除对象
	DeleteObject(ctx context.Context, objectName string) error
}

// 确保MinIO实现了ObjectStorage接口
var _ ObjectStorage = (*MinIO)(nil)

// MinIO 提供对象存储功能
type MinIO struct {
	client        *minio.Client
	cfg           *config.MinIOConfig
	rawTextBucket string
}

// NewMinIO 创建MinIO客户端并确保存储桶就绪
func NewMinIO(cfg *config.MinIOConfig) (*MinIO, error) {
	if cfg == nil {
		return nil, fmt.Errorf("MinIO配置不能为空")
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("创建MinIO客户端失败: %w", err)
	}

	bucket := cfg.RawTextBucket
	if bucket == "" {
		bucket = "resume-raw-text"
	}

	m := &MinIO{
		client:        client,
		cfg:           cfg,
		rawTextBucket: bucket,
	}

	if err := m.ensureBucketExists(bucket, cfg.Location); err != nil {
		return nil, fmt.Errorf("确保原文存储桶 %s 存在失败: %w", bucket, err)
	}

	if cfg.RawTextExpireDays > 0 {
		if err := m.setupLifecycleRules(context.Background()); err != nil {
			// 生命周期规则失败不影响主流程
			logger.Warn().Err(err).Msg("设置MinIO生命周期规则失败")
		}
	}

	logger.Info().Str("endpoint", cfg.Endpoint).Str("bucket", bucket).Msg("MinIO客户端初始化完成")
	return m, nil
}

func (m *MinIO) ensureBucketExists(bucketName, location string) error {
	ctx := context.Background()
	exists, err := m.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("检查存储桶 %s 是否存在时出错: %w", bucketName, err)
	}
	if !exists {
		err = m.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
		if err != nil {
			return fmt.Errorf("创建存储桶 %s 失败: %w", bucketName, err)
		}
	}
	return nil
}

func (m *MinIO) setupLifecycleRules(ctx context.Context) error {
	lc := lifecycle.NewConfiguration()
	lc.Rules = []lifecycle.Rule{
		{
			ID:     "expire-raw-text",
			Status: "Enabled",
			Expiration: lifecycle.Expiration{
				Days: lifecycle.ExpirationDays(m.cfg.RawTextExpireDays),
			},
		},
	}
	return m.client.SetBucketLifecycle(ctx, m.rawTextBucket, lc)
}

// UploadRawText 以 <uuid>/raw_text.txt 的路径归档简历原文
func (m *MinIO) UploadRawText(ctx context.Context, submissionUUID string, text string) (string, error) {
	objectName := fmt.Sprintf("%s/raw_text.txt", submissionUUID)
	data := []byte(text)

	_, err := m.client.PutObject(ctx, m.rawTextBucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/plain; charset=utf-8"})
	if err != nil {
		return "", fmt.Errorf("上传简历原文失败: %w", err)
	}
	return objectName, nil
}

// GetRawText 取回归档的简历原文
func (m *MinIO) GetRawText(ctx context.Context, objectName string) (string, error) {
	obj, err := m.client.GetObject(ctx, m.rawTextBucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("获取简历原文失败: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", fmt.Errorf("读取简历原文失败: %w", err)
	}
	return string(data), nil
}

// DeleteObject 删除指定对象
func (m *MinIO) DeleteObject(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.rawTextBucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("删除对象 %s 失败: %w", objectName, err)
	}
	return nil
}

// GetPresignedURL 生成下载用的预签名URL
func (m *MinIO) GetPresignedURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.rawTextBucket, objectName, expiry, nil)
	if err != nil {
		return "", fmt.Errorf("生成预签名URL失败: %w", err)
	}
	return u.String(), nil
}
