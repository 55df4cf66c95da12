package ginx

import (
	"github.com/gin-gonic/gin"
)

// bindArgs 绑定请求参数到 args 结构体
// URI 参数最先绑定，这样 body 校验时路径参数已经就位，
// body 和 query 里的同名字段也不会覆盖路径参数
func bindArgs(ctx *gin.Context, args interface{}) error {
	if len(ctx.Params) > 0 {
		if err := ctx.ShouldBindUri(args); err != nil {
			return err
		}
	}

	// 带 body 的请求从 JSON 绑定
	// 解析失败或字段校验失败直接报错，而不是静默回退到 query 绑定
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(args); err != nil {
			return err
		}
		_ = ctx.ShouldBindQuery(args)
		return nil
	}

	// 无 body 的请求从 query 绑定
	return ctx.ShouldBindQuery(args)
}
