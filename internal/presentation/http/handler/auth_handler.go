package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Amankewlld/swift-register/internal/application/service"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/request"
	"github.com/Amankewlld/swift-register/internal/presentation/http/dto/response"
	"github.com/Amankewlld/swift-register/pkg/utils"
)

// AuthHandler handles cashier sign-in and sign-out
type AuthHandler struct {
	registerService *service.RegisterService
	jwtManager      *utils.JWTManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(registerService *service.RegisterService, jwtManager *utils.JWTManager) *AuthHandler {
	return &AuthHandler{registerService: registerService, jwtManager: jwtManager}
}

// SignIn starts a cashier shift
// @Summary Sign in
// @Description Start a shift and receive a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body request.SignInRequest true "Cashier name"
// @Success 200 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /auth/sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req request.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cashierID, err := h.registerService.SignIn(req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateSessionToken(cashierID, h.registerService.CashierName())
	if err != nil {
		response.InternalServerError(c, "Failed to issue session token")
		return
	}

	response.OK(c, "Welcome, "+h.registerService.CashierName()+"!", gin.H{
		"cashier": gin.H{
			"id":   cashierID,
			"name": h.registerService.CashierName(),
		},
		"access_token": token,
		"token_type":   "Bearer",
		"screen":       h.registerService.ScreenState(),
	})
}
