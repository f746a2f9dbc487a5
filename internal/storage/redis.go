package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"cv-insight-go/internal/config"
	"cv-insight-go/internal/constants"
)

// ErrNotFound Redis中不存在该键，包装redis.Nil做一层隔离
var ErrNotFound = redis.Nil

var redisTracer = otel.Tracer("cv-insight-go/storage/redis")

// Redis 封装go-redis客户端，承担上传去重与检索缓存两个职责
type Redis struct {
	Client *redis.Client
	config *config.RedisConfig
}

// NewRedisAdapter 建立Redis连接并验证连通性
func NewRedisAdapter(cfg *config.RedisConfig) (*Redis, error) {
	if cfg == nil {
		return nil, fmt.Errorf("redis config cannot be nil")
	}
	if cfg.Address == "" {
		return nil, fmt.Errorf("redis address is required")
	}

	opt := &redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,

		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,

		DialTimeout:  time.Duration(cfg.DialTimeoutSeconds) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,

		MaxRetries:      cfg.MaxRetries,
		MinRetryBackoff: time.Duration(cfg.MinRetryBackoffMS) * time.Millisecond,
		MaxRetryBackoff: time.Duration(cfg.MaxRetryBackoffMS) * time.Millisecond,

		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetimeMinutes) * time.Minute,
		ConnMaxIdleTime: time.Duration(cfg.ConnMaxIdleTimeMinutes) * time.Minute,
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("连接Redis失败: %w", err)
	}

	return &Redis{Client: client, config: cfg}, nil
}

// TextMD5Exists 判断简历文本MD5是否已上传过
func (r *Redis) TextMD5Exists(ctx context.Context, md5Hex string) (bool, error) {
	ctx, span := redisTracer.Start(ctx, "redis.TextMD5Exists")
	defer span.End()
	span.SetAttributes(attribute.String("text.md5", md5Hex))

	exists, err := r.Client.SIsMember(ctx, constants.RawTextMD5SetKey, md5Hex).Result()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return false, fmt.Errorf("查询文本MD5集合失败: %w", err)
	}
	return exists, nil
}

// RecordTextMD5 把文本MD5记入去重集合并续期
func (r *Redis) RecordTextMD5(ctx context.Context, md5Hex string) error {
	ctx, span := redisTracer.Start(ctx, "redis.RecordTextMD5")
	defer span.End()

	if err := r.Client.SAdd(ctx, constants.RawTextMD5SetKey, md5Hex).Err(); err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("记录文本MD5失败: %w", err)
	}

	expire := constants.RawTextMD5SetTTL
	if r.config.MD5RecordExpireDays > 0 {
		expire = time.Duration(r.config.MD5RecordExpireDays) * 24 * time.Hour
	}
	if err := r.Client.Expire(ctx, constants.RawTextMD5SetKey, expire).Err(); err != nil {
		return fmt.Errorf("设置MD5集合过期失败: %w", err)
	}
	return nil
}

// GetSearchCache 取检索结果缓存，未命中返回ErrNotFound
func (r *Redis) GetSearchCache(ctx context.Context, queryMD5 string) (string, error) {
	ctx, span := redisTracer.Start(ctx, "redis.GetSearchCache")
	defer span.End()

	val, err := r.Client.Get(ctx, constants.SearchCachePrefix+queryMD5).Result()
	if err == redis.Nil {
		return "", ErrNotFound
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("读取检索缓存失败: %w", err)
	}
	return val, nil
}

// SetSearchCache 写检索结果缓存
func (r *Redis) SetSearchCache(ctx context.Context, queryMD5, payload string) error {
	ctx, span := redisTracer.Start(ctx, "redis.SetSearchCache")
	defer span.End()

	err := r.Client.Set(ctx, constants.SearchCachePrefix+queryMD5, payload, constants.SearchCacheDuration).Err()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return fmt.Errorf("写入检索缓存失败: %w", err)
	}
	return nil
}

// InvalidateSearchCache 候选人集合变化后清掉全部检索缓存
func (r *Redis) InvalidateSearchCache(ctx context.Context) error {
	ctx, span := redisTracer.Start(ctx, "redis.InvalidateSearchCache")
	defer span.End()

	iter := r.Client.Scan(ctx, 0, constants.SearchCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := r.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("清理检索缓存失败: %w", err)
		}
	}
	return iter.Err()
}

// Close 关闭Redis连接
func (r *Redis) Close() error {
	return r.Client.Close()
}
