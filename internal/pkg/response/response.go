package response

import (
	"Kajoogram/internal/api/dto"
	"Kajoogram/internal/pkg/identity"
	"Kajoogram/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

const (
	Ok                  = 200
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

// Success 成功返回封装
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, dto.Response{
		Code:    Ok,
		Message: "success",
		Data:    data,
	})
}

// Fail 失败返回封装
func Fail(c *gin.Context, businessCode int, message string) {
	c.JSON(http.StatusOK, dto.Response{
		Code:    businessCode,
		Message: message,
		Data:    nil,
	})
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, BadRequest, "参数错误")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, BadRequest, "Json错误")
		return
	}

	// 身份提供方的错误原样透出
	if authErr, ok := identity.AsAuthError(err); ok {
		code := authErr.Status
		if code < BadRequest || code >= InternalServerError {
			code = BadRequest
		}
		Fail(c, code, authErr.Message)
		return
	}
	if errors.Is(err, identity.ErrUnauthenticated) {
		Fail(c, Unauthorized, service.UnauthorizedError.Error())
		return
	}

	if code, ok := lookup(err); ok {
		Fail(c, code, err.Error())
		return
	}
	log.ErrorContext(c.Request.Context(), "Error", "err", err)
	Fail(c, InternalServerError, service.UnExpectedError.Error())
}

func lookup(err error) (int, bool) {
	if code, ok := service.ErrorMap[err]; ok {
		return code, true
	}
	for target, code := range service.ErrorMap {
		if errors.Is(err, target) {
			return code, true
		}
	}
	return 0, false
}
