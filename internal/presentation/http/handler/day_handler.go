package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/application/service"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/request"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/response"
)

// DayHandler exposes the daily sales ledger
type DayHandler struct {
	registerService *service.RegisterService
}

// NewDayHandler creates a new day handler
func NewDayHandler(registerService *service.RegisterService) *DayHandler {
	return &DayHandler{registerService: registerService}
}

// Summary returns today's per-method totals, discount aggregates and
// transaction count.
func (h *DayHandler) Summary(c *gin.Context) {
	response.OK(c, "Daily summary retrieved", gin.H{
		"summary": h.registerService.DaySummary(),
	})
}

// Reset zeroes the daily aggregates. The confirm flag stands in for
// the operator's confirmation prompt.
func (h *DayHandler) Reset(c *gin.Context) {
	var req request.ResetDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if !req.Confirm {
		response.BadRequest(c, "Reset requires confirmation")
		return
	}

	h.registerService.ResetDay()
	response.OK(c, "Daily sales reset", gin.H{
		"summary": h.registerService.DaySummary(),
	})
}
