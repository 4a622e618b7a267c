// File: studiobook/devserver/auth.go
package devserver

import (
	"net/http"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// tokenResponse issues a bearer token for the account, mirroring the
// backend's login/register envelope.
func (s *Server) tokenResponse(c *gin.Context, user models.User) {
	token, err := utils.GenerateToken(user.ID, user.Email, tokenTTL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue access token")
		return
	}
	c.JSON(http.StatusOK, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(tokenTTL.Seconds()),
		User:        user,
	})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	s.state.mu.Lock()
	if s.state.userByEmail(req.Email) != nil {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Email already registered")
		return
	}
	user := &models.User{
		ID:        utils.GenerateID(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Timezone:  timezone,
		Role:      models.RoleCustomer,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	s.state.users = append(s.state.users, user)
	s.state.passwords[user.ID] = string(hash)
	out := *user
	s.state.mu.Unlock()

	s.tokenResponse(c, out)
}

func (s *Server) handleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	s.state.mu.Lock()
	user := s.state.userByEmail(req.Email)
	var hash string
	if user != nil {
		hash = s.state.passwords[user.ID]
	}
	var out models.User
	active := false
	if user != nil {
		out = *user
		active = user.IsActive
	}
	s.state.mu.Unlock()

	// Walk-in customers carry no hash and cannot log in with a password.
	if user == nil || hash == "" || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	if !active {
		utils.JSONError(c, http.StatusForbidden, "Account is deactivated")
		return
	}

	s.tokenResponse(c, out)
}

func (s *Server) handleGetMe(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	out := *user
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateMe(c *gin.Context) {
	var update models.UserUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := currentUser(c)

	s.state.mu.Lock()
	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Phone != nil {
		user.Phone = *update.Phone
	}
	if update.Timezone != nil {
		user.Timezone = *update.Timezone
	}
	if update.AvatarURL != nil {
		user.AvatarURL = *update.AvatarURL
	}
	out := *user
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handlePromote(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	if user.Role != models.RoleCustomer {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Only customers can be promoted to studio owners")
		return
	}
	user.Role = models.RoleStudioOwner
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Successfully promoted to studio owner! You can now create and manage studios.",
		Status:  "success",
	})
}

func (s *Server) handleVerifyEmail(c *gin.Context) {
	user := currentUser(c)

	s.state.mu.Lock()
	if user.IsVerified {
		s.state.mu.Unlock()
		utils.JSONError(c, http.StatusBadRequest, "Email is already verified")
		return
	}
	user.IsVerified = true
	s.state.mu.Unlock()

	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Email verified successfully!",
		Status:  "success",
	})
}

// handleLogout exists for wire compatibility; tokens are stateless, so
// dropping the token client-side is the whole operation.
func (s *Server) handleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Logged out successfully",
		Status:  "success",
	})
}
