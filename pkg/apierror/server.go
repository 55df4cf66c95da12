package apierror

import (
	"fmt"
	"net/http"
)

// 服务端错误变量，按错误码定义
// errors.Is 按 Code 匹配，因此携带具体资源 ID 的错误实例
// 仍然可以和这里的基础变量比较
var (
	// ErrServerNotFound 服务器不存在，或已被删除（墓碑对查询不可见）
	ErrServerNotFound = &Error{
		Code:       "SERVER_NOT_FOUND",
		Message:    "Server not found",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrFlavorNotFound 规格不存在
	ErrFlavorNotFound = &Error{
		Code:       "FLAVOR_NOT_FOUND",
		Message:    "Flavor not found",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrImageNotFound 镜像不存在
	ErrImageNotFound = &Error{
		Code:       "IMAGE_NOT_FOUND",
		Message:    "Image not found",
		HTTPStatus: http.StatusNotFound,
	}

	// ErrInvalidStateTransition 当前状态不允许执行该操作
	// Details 携带 current_status 和 action
	ErrInvalidStateTransition = &Error{
		Code:       "INVALID_STATE_TRANSITION",
		Message:    "Action is not allowed in the current server status",
		HTTPStatus: http.StatusConflict,
	}

	// ErrServerDeleted 服务器已删除，存在但不可修改
	// 与 SERVER_NOT_FOUND 区分：404 表示可以换 ID 重试，409 表示应放弃修改
	ErrServerDeleted = &Error{
		Code:       "SERVER_DELETED",
		Message:    "Server has been deleted and cannot be modified",
		HTTPStatus: http.StatusConflict,
	}

	// ErrConcurrentUpdate 乐观并发冲突，另一个请求先完成了对同一服务器的变更
	ErrConcurrentUpdate = &Error{
		Code:       "CONCURRENT_UPDATE",
		Message:    "Server was modified by a concurrent request, retry the operation",
		HTTPStatus: http.StatusConflict,
	}

	// ErrValidation 请求参数校验失败，在进入业务层之前拦截
	ErrValidation = &Error{
		Code:       "VALIDATION_ERROR",
		Message:    "Request validation failed",
		HTTPStatus: http.StatusUnprocessableEntity,
	}

	// ErrNotImplemented 功能未实现（真实云后端的占位实现）
	ErrNotImplemented = &Error{
		Code:       "NOT_IMPLEMENTED",
		Message:    "This operation is not implemented by the configured compute backend",
		HTTPStatus: http.StatusNotImplemented,
	}

	// ErrInternalError 内部错误，对调用方不透出细节
	ErrInternalError = &Error{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
	}
)

// ServerNotFound 创建携带服务器 ID 的 SERVER_NOT_FOUND 错误
func ServerNotFound(serverID string) *Error {
	return &Error{
		Code:       ErrServerNotFound.Code,
		Message:    fmt.Sprintf("Server %s not found", serverID),
		HTTPStatus: ErrServerNotFound.HTTPStatus,
	}
}

// FlavorNotFound 创建携带规格 ID 的 FLAVOR_NOT_FOUND 错误
func FlavorNotFound(flavorID string) *Error {
	return &Error{
		Code:       ErrFlavorNotFound.Code,
		Message:    fmt.Sprintf("Flavor %s not found", flavorID),
		HTTPStatus: ErrFlavorNotFound.HTTPStatus,
	}
}

// ImageNotFound 创建携带镜像 ID 的 IMAGE_NOT_FOUND 错误
func ImageNotFound(imageID string) *Error {
	return &Error{
		Code:       ErrImageNotFound.Code,
		Message:    fmt.Sprintf("Image %s not found", imageID),
		HTTPStatus: ErrImageNotFound.HTTPStatus,
	}
}

// ServerDeleted 创建携带服务器 ID 的 SERVER_DELETED 错误
func ServerDeleted(serverID string) *Error {
	return &Error{
		Code:       ErrServerDeleted.Code,
		Message:    fmt.Sprintf("Server %s has been deleted and cannot be modified", serverID),
		HTTPStatus: ErrServerDeleted.HTTPStatus,
	}
}

// InvalidStateTransition 创建 INVALID_STATE_TRANSITION 错误
// Details 携带 current_status 和 action，便于调用方定位非法组合
func InvalidStateTransition(currentStatus, action string) *Error {
	return &Error{
		Code:       ErrInvalidStateTransition.Code,
		Message:    fmt.Sprintf("Cannot perform action '%s' on server in status '%s'", action, currentStatus),
		HTTPStatus: ErrInvalidStateTransition.HTTPStatus,
		Details: map[string]string{
			"current_status": currentStatus,
			"action":         action,
		},
	}
}

// ConcurrentUpdate 创建携带服务器 ID 的 CONCURRENT_UPDATE 错误
func ConcurrentUpdate(serverID string) *Error {
	return &Error{
		Code:       ErrConcurrentUpdate.Code,
		Message:    fmt.Sprintf("Server %s was modified by a concurrent request, retry the operation", serverID),
		HTTPStatus: ErrConcurrentUpdate.HTTPStatus,
	}
}

// Validation 创建携带校验细节的 VALIDATION_ERROR 错误
func Validation(details any) *Error {
	return &Error{
		Code:       ErrValidation.Code,
		Message:    ErrValidation.Message,
		HTTPStatus: ErrValidation.HTTPStatus,
		Details:    details,
	}
}
