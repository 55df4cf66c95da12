package ginx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vml/pkg/apierror"
	"github.com/rs/zerolog"
)

// renderResponse 渲染成功响应
func renderResponse(ctx *gin.Context, status int, response any) {
	if response == nil {
		ctx.Status(http.StatusNoContent)
		return
	}
	ctx.JSON(status, response)
}

// renderError 渲染错误响应
// *apierror.Error 使用其自带的 HTTP 状态码和错误码；
// 其他错误统一渲染为 500 INTERNAL_ERROR，原始错误只记录到日志，不透出给调用方
func renderError(ctx *gin.Context, err error) {
	logger := zerolog.Ctx(ctx)

	var apiErr *apierror.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierror.WrapError(apierror.ErrInternalError, apierror.ErrInternalError.Message, err)
	}

	statusCode := apiErr.HTTPStatus
	if statusCode == 0 {
		statusCode = http.StatusInternalServerError
	}

	event := logger.Warn()
	if statusCode >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.
		Err(err).
		Str("error_code", apiErr.Code).
		Int("status_code", statusCode).
		Str("path", ctx.Request.URL.Path).
		Msg("Request failed")

	// 5xx 响应对调用方保持不透明，细节只保留在日志中
	if statusCode >= http.StatusInternalServerError {
		apiErr = apierror.NewErrorWithStatus(apiErr.Code, apierror.ErrInternalError.Message, statusCode)
	}

	ctx.JSON(statusCode, apierror.NewErrorResponse(apiErr))
}
