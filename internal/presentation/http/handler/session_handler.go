package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/application/service"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/response"
)

// SessionHandler exposes the register session state
type SessionHandler struct {
	registerService *service.RegisterService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(registerService *service.RegisterService) *SessionHandler {
	return &SessionHandler{registerService: registerService}
}

// GetSession returns the signed-in cashier and the current screen,
// including any in-flight screen handoff.
func (h *SessionHandler) GetSession(c *gin.Context) {
	screen := h.registerService.ScreenState()
	response.OK(c, "Session retrieved", gin.H{
		"cashier": h.registerService.CashierName(),
		"screen":  screen,
	})
}
