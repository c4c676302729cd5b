package handler

import (
	"ImpulseGuard/internal/api/dto"
	"ImpulseGuard/internal/pkg/response"
	"ImpulseGuard/internal/pkg/util"
	"ImpulseGuard/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{
		eventSvc: eventSvc,
	}
}

// SaveEvent 事件上报
func (s *EventHandler) SaveEvent(c *gin.Context) {
	userID := c.GetUint64("user_id")
	var eventDTO dto.EventDTO
	err := c.ShouldBind(&eventDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&eventDTO); err != nil {
		response.Fail(c, response.BadRequest, err.Error())
		return
	}
	err = s.eventSvc.SaveEvent(c.Request.Context(), userID, &eventDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.OkDTO{Ok: true})
}

// GetSummary 基础汇总
func (s *EventHandler) GetSummary(c *gin.Context) {
	userID := c.GetUint64("user_id")
	summary, err := s.eventSvc.GetSummary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

// GetFullSummary 增强汇总 含时间线/风险/趋势
func (s *EventHandler) GetFullSummary(c *gin.Context) {
	userID := c.GetUint64("user_id")
	summary, err := s.eventSvc.GetFullSummary(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, summary)
}

// SeedDemo 生成演示数据
func (s *EventHandler) SeedDemo(c *gin.Context) {
	userID := c.GetUint64("user_id")
	seeded, err := s.eventSvc.SeedDemo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.SeedRespDTO{Ok: true, Seeded: seeded})
}
