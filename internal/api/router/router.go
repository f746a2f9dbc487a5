package router

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/utils"
	"github.com/cloudwego/hertz/pkg/protocol/consts"

	"cv-insight-go/internal/api/handler"
	"cv-insight-go/internal/exporter"
	"cv-insight-go/internal/storage"
)

// SearchRequest 候选人检索请求体
type SearchRequest struct {
	Query string `json:"query"`
}

// RegisterRoutes 注册 API 路由
func RegisterRoutes(h *server.Hertz, candidateHandler *handler.CandidateHandler) {
	api := h.Group("/api/v1")

	api.POST("/resume/upload", func(c context.Context, ctx *app.RequestContext) {
		// 获取上传的文本文件
		fileHeader, err := ctx.FormFile("file")
		if err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "文件未找到"})
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "打开文件失败"})
			return
		}
		defer file.Close()

		textBytes, err := io.ReadAll(file)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": "读取文件内容失败"})
			return
		}

		resp, err := candidateHandler.HandleResumeUpload(c, string(textBytes), fileHeader.Filename)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/candidates", func(c context.Context, ctx *app.RequestContext) {
		summaries, err := candidateHandler.HandleListCandidates(c)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"candidates": summaries, "count": len(summaries)})
	})

	api.GET("/candidates/detail/:submission_uuid", func(c context.Context, ctx *app.RequestContext) {
		submissionUUID := ctx.Param("submission_uuid")
		summary, err := candidateHandler.HandleGetCandidate(c, submissionUUID)
		if errors.Is(err, storage.ErrProfileNotFound) {
			ctx.JSON(consts.StatusNotFound, utils.H{"error": "候选人档案不存在"})
			return
		}
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, summary)
	})

	api.POST("/candidates/search", func(c context.Context, ctx *app.RequestContext) {
		var req SearchRequest
		if err := ctx.BindJSON(&req); err != nil {
			ctx.JSON(consts.StatusBadRequest, utils.H{"error": "请求体格式错误"})
			return
		}

		ranked, err := candidateHandler.HandleSearch(c, req.Query)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, utils.H{"results": ranked, "count": len(ranked)})
	})

	api.GET("/candidates/analytics", func(c context.Context, ctx *app.RequestContext) {
		resp, err := candidateHandler.HandleAnalytics(c)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}
		ctx.JSON(consts.StatusOK, resp)
	})

	api.GET("/candidates/export", func(c context.Context, ctx *app.RequestContext) {
		records, err := candidateHandler.CollectRecordsForExport(c)
		if err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		var buf bytes.Buffer
		if err := exporter.WriteCSV(&buf, records); err != nil {
			ctx.JSON(consts.StatusInternalServerError, utils.H{"error": err.Error()})
			return
		}

		ctx.Response.Header.Set("Content-Disposition", `attachment; filename="candidates.csv"`)
		ctx.Data(consts.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	})

	// 添加健康检查
	api.GET("/health", func(c context.Context, ctx *app.RequestContext) {
		ctx.JSON(consts.StatusOK, utils.H{"status": "ok"})
	})
}
