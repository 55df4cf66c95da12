// Package ginx 提供 gin 框架的 handler 适配器，支持自动参数绑定和统一的错误渲染
//
// 参数绑定顺序：URI 参数最先绑定，之后是 JSON Body（有 body 时）或 Query 参数，
// body 和 query 不会覆盖路径参数。
// 绑定失败或 IsValid() 校验失败统一渲染为 422 VALIDATION_ERROR；
// handler 返回的 *apierror.Error 使用其自带的 HTTP 状态码渲染；
// 其他错误渲染为不透出细节的 500 INTERNAL_ERROR，原始错误只记录到日志。
//
// 支持的 handler 函数签名：
//
//	// 1. 有参数，有返回值，有 error（成功返回 200）
//	func(c *gin.Context, args *Args) (resp, error)
//
//	// 2. 有参数，只有 error（成功返回 204）
//	func(c *gin.Context, args *Args) error
//
// 使用示例：
//
//	router := gin.New()
//
//	router.GET("/servers/:server_id", ginx.Adapt5(func(c *gin.Context, args *GetServerArgs) (*Server, error) {
//	    return service.Get(c, args.ServerID)
//	}))
//
//	// 指定成功状态码（创建 201、异步动作 202）
//	router.POST("/servers", ginx.Adapt5Status(http.StatusCreated, createHandler))
//
//	router.DELETE("/servers/:server_id", ginx.Adapt4(deleteHandler))
package ginx
