package handler

import (
	"ImpulseGuard/internal/api/dto"
	"ImpulseGuard/internal/pkg/llm"
	"ImpulseGuard/internal/pkg/response"
	"ImpulseGuard/internal/pkg/util"

	"github.com/gin-gonic/gin"
)

type RewriteHandler struct{}

func NewRewriteHandler() *RewriteHandler {
	return &RewriteHandler{}
}

// Rewrite 文本改写 外部失败在服务内部降级 始终返回200
func (s *RewriteHandler) Rewrite(c *gin.Context) {
	var rewriteDTO dto.RewriteDTO
	err := c.ShouldBind(&rewriteDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&rewriteDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}

	variants := llm.Rewrite(c.Request.Context(), rewriteDTO.Text)
	response.Success(c, dto.RewriteRespDTO{Variants: variants})
}
