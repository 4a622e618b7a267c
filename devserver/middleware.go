// File: studiobook/devserver/middleware.go
package devserver

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"studiobook/models"
	"studiobook/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const currentUserKey = "currentUser"

// requireAuth resolves the bearer token to an account and stores it on
// the context. Failures use the backend's exact wording so the client's
// error normalization sees the same strings in tests as in production.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Detail: "Could not validate credentials"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Detail: "Could not validate credentials"})
			return
		}

		s.state.mu.Lock()
		user := s.state.userByID(userID)
		s.state.mu.Unlock()

		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Detail: "Could not validate credentials"})
			return
		}
		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Detail: "Inactive user"})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// requireStudioOwner gates the management endpoints.
func (s *Server) requireStudioOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Detail: "Could not validate credentials"})
			return
		}
		if user.Role != models.RoleStudioOwner && user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Detail: "Not enough permissions"})
			return
		}
		c.Next()
	}
}

// currentUser returns the account requireAuth resolved, or nil.
func currentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// rateLimiterStore holds a map of client IPs to their rate limiters.
type rateLimiterStore struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perMin   int
}

// getLimiter returns the limiter for an IP, creating one if needed.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)
		s.limiters[ip] = limiter
	}
	return limiter
}

// rateLimitMiddleware limits requests per client IP. The stub only
// carries this so clients can exercise 429 handling; the real limits
// live server-side.
func rateLimitMiddleware(perMin int) gin.HandlerFunc {
	limiterStore := &rateLimiterStore{
		limiters: make(map[string]*rate.Limiter),
		perMin:   perMin,
	}
	return func(c *gin.Context) {
		limiter := limiterStore.getLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, utils.ErrorResponse{Detail: "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
