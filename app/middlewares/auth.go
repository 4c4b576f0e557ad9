package middlewares

import (
	"net/http"
	"strings"

	"task-manager/domain/repos"
	"task-manager/domain/services"

	"github.com/gin-gonic/gin"
)

type JwtHeaderAuthenticator struct {
	AuthHeader       string
	AuthHeaderPrefix string
	AuthCtxKey       string
	Handler          gin.HandlerFunc
}

type JwtCookieAuthenticator struct {
	AuthCookieKey string
	AuthCtxKey    string
	Handler       gin.HandlerFunc
}

func authenticate(c *gin.Context, tokenString string, ctxKey string, tp *services.JwtTokenProvider, usersRepo *repos.UsersRepo) {
	email, err := tp.ParseEmail(tokenString)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userData, found, err := usersRepo.GetByEmail(c, email)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	c.Set(ctxKey, userData)
	c.Next()
}

func NewJwtHeaderAuthenticator(tp *services.JwtTokenProvider, usersRepo *repos.UsersRepo) *JwtHeaderAuthenticator {
	const (
		authHeader       = "Authorization"
		authHeaderPrefix = "Bearer"
		authCtxKey       = "User"
	)
	return &JwtHeaderAuthenticator{
		AuthHeader:       authHeader,
		AuthHeaderPrefix: authHeaderPrefix,
		AuthCtxKey:       authCtxKey,
		Handler: func(c *gin.Context) {
			headerValue := c.Request.Header.Get(authHeader)
			if headerValue == "" {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			headerParts := strings.Split(headerValue, " ")
			if len(headerParts) != 2 || headerParts[0] != authHeaderPrefix {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			authenticate(c, headerParts[1], authCtxKey, tp, usersRepo)
		},
	}
}

func NewJwtCookieAuthenticator(tp *services.JwtTokenProvider, usersRepo *repos.UsersRepo) *JwtCookieAuthenticator {
	const (
		authCookieKey = "auth_token"
		authCtxKey    = "User"
	)
	return &JwtCookieAuthenticator{
		AuthCookieKey: authCookieKey,
		AuthCtxKey:    authCtxKey,
		Handler: func(c *gin.Context) {
			tokenString, err := c.Cookie(authCookieKey)
			if tokenString == "" || err != nil {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}

			authenticate(c, tokenString, authCtxKey, tp, usersRepo)
		},
	}
}
