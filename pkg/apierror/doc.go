// Package apierror 提供带 HTTP 状态码的类型化错误，用于所有服务的统一错误处理
//
// 错误响应格式：
//
//	{
//	    "error": {
//	        "code": "SERVER_NOT_FOUND",
//	        "message": "Server srv-123 not found",
//	        "details": null
//	    }
//	}
//
// 预定义的错误变量（可在代码中直接使用，errors.Is 按 Code 匹配）：
//
//   - ErrServerNotFound: 服务器不存在（404）
//   - ErrFlavorNotFound: 规格不存在（404）
//   - ErrImageNotFound: 镜像不存在（404）
//   - ErrInvalidStateTransition: 当前状态不允许该操作（409）
//   - ErrServerDeleted: 服务器已删除，不可修改（409）
//   - ErrConcurrentUpdate: 并发更新冲突（409）
//   - ErrValidation: 请求参数校验失败（422）
//   - ErrNotImplemented: 功能未实现（501）
//   - ErrInternalError: 内部错误（500）
//
// 使用示例：
//
//	// 携带资源 ID 的错误
//	err := apierror.ServerNotFound("srv-123")
//
//	// 包装底层错误（RawError 仅用于服务端日志，不会序列化）
//	err := apierror.WrapError(apierror.ErrInternalError, "query servers", rawErr)
//
//	// 判断错误类型
//	if errors.Is(err, apierror.ErrServerNotFound) { ... }
package apierror
