package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// RequestID 为每个请求分配 ID，并把带 request_id 字段的 logger 注入 request context
// 调用方传入的 X-Request-ID 会被透传，方便跨服务追踪
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Header(requestIDHeader, requestID)

		base := zerolog.DefaultContextLogger
		if base == nil {
			nop := zerolog.Nop()
			base = &nop
		}
		logger := base.With().Str("request_id", requestID).Logger()
		ctx.Request = ctx.Request.WithContext(logger.WithContext(ctx.Request.Context()))

		ctx.Next()
	}
}

// RequestLogger 记录每个请求的访问日志
func RequestLogger() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()

		zerolog.Ctx(ctx.Request.Context()).Info().
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status", ctx.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	}
}
