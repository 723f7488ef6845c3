package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"ecommerce-api/internal/domain"
	cartsvc "ecommerce-api/internal/service/cart"
	"github.com/gin-gonic/gin"
)

const (
	claimsKey = "auth.claims"
	cartIDKey = "cart.id"
)

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// requireAuth rejects requests without a valid bearer token and stores the
// verified claims for downstream handlers.
func requireAuth(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied, no token provided."})
			return
		}
		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token."})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// cartIdentity resolves the open cart for the request's identity before the
// handler runs. A valid bearer token wins over any session identifier; the
// X-Session-Id header and the session_id cookie are only consulted when no
// token is presented. Neither identity yields a 400.
func cartIdentity(auth AuthService, carts CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var owner cartsvc.Owner

		if token := bearerToken(c); token != "" {
			claims, err := auth.VerifyToken(token)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Invalid or expired token."})
				return
			}
			c.Set(claimsKey, claims)
			owner.UserID = &claims.UserID
		} else {
			sessionID := strings.TrimSpace(c.GetHeader("X-Session-Id"))
			if sessionID == "" {
				if cookie, err := c.Cookie("session_id"); err == nil {
					sessionID = strings.TrimSpace(cookie)
				}
			}
			owner.SessionID = sessionID
		}

		cart, err := carts.Resolve(c.Request.Context(), owner)
		if err != nil {
			if errors.Is(err, domain.ErrIdentityMissing) {
				c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "No user or session identifier found."})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Set(cartIDKey, cart.ID)
		c.Next()
	}
}

func cartIDFromContext(c *gin.Context) int64 {
	v, ok := c.Get(cartIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(int64)
	return id
}
