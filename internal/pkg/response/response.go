package response

import (
	"Blogly/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	NotFoundPage = "404.html"
	ErrorPage    = "error.html"
)

// Page 渲染页面
func Page(c *gin.Context, name string, data gin.H) {
	c.HTML(http.StatusOK, name, data)
}

// Redirect 写操作完成后跳转到 GET 页面
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
}

// NotFound 渲染 404 页面
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, NotFoundPage, gin.H{"Title": "Not Found"})
	c.Abort()
}

// Fail 渲染通用错误页
func Fail(c *gin.Context, code int, message string) {
	c.HTML(code, ErrorPage, gin.H{
		"Title":   http.StatusText(code),
		"Code":    code,
		"Status":  http.StatusText(code),
		"Message": message,
	})
	c.Abort()
}

// Error 处理错误
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	code, ok := service.CodeOf(err)
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		_ = c.Error(err)
		Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
		return
	}
	if code == http.StatusNotFound {
		NotFound(c)
		return
	}
	Fail(c, code, err.Error())
}

// BindError 表单绑定失败（缺少必填字段或字段类型错误）
func BindError(c *gin.Context, err error) {
	log.InfoContext(c.Request.Context(), "Bind form failed", "err", err)
	Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
}

// Recovery panic 时渲染 500 页面
func Recovery(c *gin.Context, recovered any) {
	log.ErrorContext(c.Request.Context(), "Panic recovered", "panic", recovered)
	Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
}
