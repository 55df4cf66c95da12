package ginx

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/jimyag/vml/pkg/apierror"
)

// Adapt4 适配有参数、只有 error 的 handler
// 成功时返回 204 No Content
func Adapt4[T any](fn func(*gin.Context, *T) error) gin.HandlerFunc {
	var argsType T
	argsTypeValue := reflect.TypeOf(argsType)

	return func(ctx *gin.Context) {
		argsValue := reflect.New(argsTypeValue)
		args := argsValue.Interface()

		if err := bindArgs(ctx, args); err != nil {
			renderError(ctx, apierror.Validation(err.Error()))
			return
		}

		// 验证参数（如果实现了 IsValid 方法）
		if validator, ok := args.(interface{ IsValid() error }); ok {
			if err := validator.IsValid(); err != nil {
				renderError(ctx, apierror.Validation(err.Error()))
				return
			}
		}

		if err := fn(ctx, args.(*T)); err != nil {
			renderError(ctx, err)
			return
		}

		ctx.Status(http.StatusNoContent)
	}
}

// Adapt5 适配有参数、有返回值和 error 的 handler
// 成功时返回 200 OK
func Adapt5[TArgs any, TResp any](fn func(*gin.Context, *TArgs) (TResp, error)) gin.HandlerFunc {
	return Adapt5Status(http.StatusOK, fn)
}

// Adapt5Status 同 Adapt5，但成功时使用指定的状态码（如 201、202）
func Adapt5Status[TArgs any, TResp any](status int, fn func(*gin.Context, *TArgs) (TResp, error)) gin.HandlerFunc {
	var argsType TArgs
	argsTypeValue := reflect.TypeOf(argsType)

	return func(ctx *gin.Context) {
		argsValue := reflect.New(argsTypeValue)
		args := argsValue.Interface()

		if err := bindArgs(ctx, args); err != nil {
			renderError(ctx, apierror.Validation(err.Error()))
			return
		}

		// 验证参数（如果实现了 IsValid 方法）
		if validator, ok := args.(interface{ IsValid() error }); ok {
			if err := validator.IsValid(); err != nil {
				renderError(ctx, apierror.Validation(err.Error()))
				return
			}
		}

		result, err := fn(ctx, args.(*TArgs))
		if err != nil {
			renderError(ctx, err)
			return
		}

		renderResponse(ctx, status, result)
	}
}
