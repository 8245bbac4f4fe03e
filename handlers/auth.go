package handlers

import (
	"net/http"

	"stayhaven/middleware"
	userSvc "stayhaven/services/user"
	"stayhaven/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and logout endpoints.
type AuthHandler struct {
	Svc userSvc.UserService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(svc userSvc.UserService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// RegisterHandler handles POST /auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req struct {
		UserName string `json:"userName"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resp, err := h.Svc.Register(userSvc.RegisterInput{
		UserName: req.UserName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": resp.User, "token": resp.Token})
}

// LoginHandler handles POST /auth/login. The identifier field matches either
// email or username.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Identifier string `json:"identifier"`
		Email      string `json:"email"`
		Password   string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}
	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}

	resp, err := h.Svc.Authenticate(identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": resp.User, "token": resp.Token})
}

// LogoutHandler handles POST /auth/logout by denylisting the bearer token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token := middleware.CurrentToken(c)
	if token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	if err := h.Svc.Logout(c.Request.Context(), token); err != nil {
		respondError(c, err)
		return
	}

	actor, _ := middleware.CurrentActor(c)
	utils.GetLogger().Info("user logged out", zap.String("userId", actor.ID))
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// MeHandler handles GET /auth/me, returning the authenticated profile.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}

	u, err := h.Svc.GetUserByID(actor.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}
