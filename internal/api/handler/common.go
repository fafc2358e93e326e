package handler

import (
	"Blogly/internal/pkg/response"
	"Blogly/internal/pkg/util"

	"github.com/gin-gonic/gin"
)

// pathID 解析路径参数，非法 id 与不存在的资源一样返回 404
func pathID(c *gin.Context, key string) (uint64, bool) {
	id, ok := util.ParseID(c.Param(key))
	if !ok {
		response.NotFound(c)
	}
	return id, ok
}
