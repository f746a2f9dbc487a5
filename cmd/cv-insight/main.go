package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/spf13/pflag"

	"cv-insight-go/internal/api/handler"
	"cv-insight-go/internal/api/router"
	"cv-insight-go/internal/config"
	"cv-insight-go/internal/logger"
	"cv-insight-go/internal/registry"
	"cv-insight-go/internal/storage"
)

var (
	configPath   = pflag.String("config", "", "配置文件路径，留空时在常见位置查找")
	sampleConfig = pflag.String("gen-config", "", "生成示例配置文件到指定路径后退出")
)

func main() {
	pflag.Parse()

	if *sampleConfig != "" {
		if err := config.CreateSampleConfig(*sampleConfig); err != nil {
			fmt.Fprintf(os.Stderr, "生成示例配置失败: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("示例配置已写入 %s\n", *sampleConfig)
		return
	}

	// 初始化日志系统
	initLogger()

	// 1. 加载配置文件
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载配置文件失败")
	}

	// 2. 加载抽取词表（内置词表 + 可选的自定义YAML）
	reg, err := loadRegistry(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("加载抽取词表失败")
	}

	// 3. 初始化存储管理器
	ctx := context.Background()
	storageManager, err := storage.NewStorage(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("初始化存储管理器失败")
	}
	defer storageManager.Close()

	if err := checkStorage(storageManager); err != nil {
		logger.Fatal().Err(err).Msg("存储组件不完整")
	}

	// 4. 同步表结构
	if err := storageManager.MySQL.AutoMigrate(); err != nil {
		logger.Fatal().Err(err).Msg("同步MySQL表结构失败")
	}

	// 5. 初始化业务处理器
	candidateHandler := handler.NewCandidateHandler(cfg, storageManager, reg)
	logger.Info().Msg("候选人处理器初始化成功")

	// 6. 启动抽取消费者，broker未就绪时按配置的间隔重试
	go func() {
		retryInterval := config.GetDuration(cfg.RabbitMQ.RetryInterval, 5*time.Second)
		var err error
		for attempt := 0; attempt <= cfg.RabbitMQ.MaxRetries; attempt++ {
			if attempt > 0 {
				logger.Warn().
					Err(err).
					Int("attempt", attempt).
					Dur("retry_interval", retryInterval).
					Msg("启动抽取消费者失败，稍后重试")
				time.Sleep(retryInterval)
			}
			if err = candidateHandler.StartExtractionConsumer(context.Background()); err == nil {
				return
			}
		}
		logger.Fatal().Err(err).Msg("启动抽取消费者失败")
	}()

	// 7. 创建HTTP服务器并注册路由
	h := server.Default(
		server.WithHostPorts(cfg.Server.Address),
	)
	router.RegisterRoutes(h, candidateHandler)

	// 8. 启动HTTP服务器
	go func() {
		if err := h.Run(); err != nil {
			logger.Fatal().Err(err).Msg("启动HTTP服务器失败")
		}
	}()

	// 9. 等待终止信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("接收到终止信号，正在优雅退出...")

	// 10. 优雅关闭HTTP服务器
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := h.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("服务器关闭失败")
	}

	logger.Info().Msg("优雅退出完成")
}

// 初始化日志系统
func initLogger() {
	// 默认开发环境使用美化输出，生产环境使用JSON格式
	isProduction := os.Getenv("ENV") == "production"

	// 尝试加载配置文件
	cfg, err := config.LoadConfig(*configPath)

	logConfig := logger.Config{
		Level:        "debug",
		Format:       "pretty",
		TimeFormat:   time.RFC3339,
		ReportCaller: true,
	}

	// 如果配置文件成功加载，使用配置文件中的日志设置
	if err == nil && cfg != nil {
		logConfig.Level = cfg.Logger.Level
		logConfig.Format = cfg.Logger.Format
		logConfig.TimeFormat = cfg.Logger.TimeFormat
		logConfig.ReportCaller = cfg.Logger.ReportCaller
	} else if isProduction {
		logConfig.Level = "info"
		logConfig.Format = "json"
		logConfig.ReportCaller = false
	}

	logger.Init(logConfig)

	// 设置一些全局的字段
	logger.Logger = logger.Logger.With().
		Str("app", "cv-insight-go").
		Str("version", "1.0.0").
		Logger()
}

// loadRegistry 加载抽取词表。配置了自定义路径时从YAML加载，
// 否则使用内置词表。
func loadRegistry(cfg *config.Config) (*registry.Registry, error) {
	if cfg.Registry.Path != "" {
		reg, err := registry.LoadFromFile(cfg.Registry.Path)
		if err != nil {
			return nil, fmt.Errorf("从 %s 加载词表失败: %w", cfg.Registry.Path, err)
		}
		logger.Info().Str("path", cfg.Registry.Path).Msg("已加载自定义抽取词表")
		return reg, nil
	}
	return registry.Default(), nil
}

// checkStorage 核心流程依赖的存储组件必须全部就绪
func checkStorage(storageManager *storage.Storage) error {
	if storageManager.MinIO == nil {
		return fmt.Errorf("MinIO实例未初始化")
	}
	if storageManager.RabbitMQ == nil {
		return fmt.Errorf("RabbitMQ实例未初始化")
	}
	if storageManager.MySQL == nil {
		return fmt.Errorf("MySQL实例未初始化")
	}
	if storageManager.Redis == nil {
		return fmt.Errorf("Redis实例未初始化")
	}
	return nil
}
