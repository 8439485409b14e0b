package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	// Public Routes
	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register", handler.Register)
		publicAuth.GET("/activate", handler.Activate)
		publicAuth.POST("/login", handler.Login)
		publicAuth.POST("/2fa/verify", handler.VerifyTwoFactor)
		publicAuth.POST("/forgot-password", handler.ForgotPassword)
		publicAuth.POST("/reset-password", handler.ResetPassword)
	}

	// Protected Routes
	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
		protectedAuth.POST("/logout", handler.Logout)
	}
}

type RegisterRequest struct {
	FirstName string `json:"first_name" binding:"required,min=2,max=50,valid_name"`
	LastName  string `json:"last_name" binding:"max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,strong_password"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account. The account stays inactive until the emailed activation link is used.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.authUC.Register(c.Request.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful. Please check your email to activate your account.", gin.H{
		"user": user,
	})
}

// Activate godoc
// @Summary      Account Activation
// @Description  Activate an account using the token from the activation email link.
// @Tags         auth
// @Produce      json
// @Param        token  query     string  true  "Activation token"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/activate [get]
func (h *AuthHandler) Activate(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.Error(apperror.BadRequest("Missing activation token"))
		return
	}

	if err := h.authUC.Activate(c.Request.Context(), tokenString); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Account activated. You can now log in.", nil)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary      User Login
// @Description  Check credentials and open a two-factor challenge. A verification code is emailed; no session token is returned until it is verified.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      202    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	// 202: credentials accepted, the login itself is still pending 2FA
	response.Success(c, http.StatusAccepted, "Verification code sent. Check your email.", result)
}

type VerifyTwoFactorRequest struct {
	ChallengeID string `json:"challenge_id" binding:"required,uuid"`
	Code        string `json:"code" binding:"required,len=6,numeric"`
}

// VerifyTwoFactor godoc
// @Summary      Verify Two-Factor Code
// @Description  Exchange a pending challenge and its emailed code for a session token. Each challenge can be redeemed once.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        verify  body      VerifyTwoFactorRequest  true  "Challenge and code"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/2fa/verify [post]
func (h *AuthHandler) VerifyTwoFactor(c *gin.Context) {
	var req VerifyTwoFactorRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authUC.VerifyTwoFactor(c.Request.Context(), req.ChallengeID, req.Code)
	if err != nil {
		c.Error(err)
		return
	}

	// Also set the token as an httpOnly cookie for browser clients
	secure := h.config.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", result.Token, 0, "/", "", secure, true)

	response.Success(c, http.StatusOK, "Login successful", result)
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword godoc
// @Summary      Request Password Reset
// @Description  Send a password reset link. The response is the same whether or not the email is registered.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ForgotPasswordRequest  true  "Email address"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUC.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "If an account with that email exists, a password reset link has been sent.", nil)
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,strong_password"`
}

// ResetPassword godoc
// @Summary      Reset Password
// @Description  Set a new password using the token from the reset email.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      ResetPasswordRequest  true  "Reset password details"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUC.ResetPassword(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Password has been reset successfully. You can now log in with your new password.", nil)
}

// Me godoc
// @Summary      Current User
// @Description  Return the authenticated user's account details.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details", gin.H{"user": user})
}

// Logout godoc
// @Summary      Logout
// @Description  Clear the session cookie. Bearer clients simply discard the token.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	secure := h.config.IsProduction()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", "", -1, "/", "", secure, true)
	response.Success(c, http.StatusOK, "Logged out", nil)
}
