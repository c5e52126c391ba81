package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/cafe_ledger/internal/core/domain"
	"github.com/SscSPs/cafe_ledger/internal/dto"
	"github.com/SscSPs/cafe_ledger/internal/tenancy"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the bearer token payload. Subject carries the user id.
type Claims struct {
	TenantID    string   `json:"tenant,omitempty"`
	Permissions []string `json:"perms,omitempty"`
	jwt.RegisteredClaims
}

// Principal converts the claims to the domain principal.
func (c *Claims) Principal() domain.Principal {
	perms := make([]domain.Permission, len(c.Permissions))
	for i, p := range c.Permissions {
		perms[i] = domain.Permission(p)
	}
	return domain.Principal{UserID: c.Subject, TenantID: c.TenantID, Permissions: perms}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.APIResponse{Success: false, Message: msg})
}

// AuthMiddleware validates the bearer JWT and stores the principal and its
// tenant in the request context. An empty issuer disables the issuer check.
func AuthMiddleware(jwtSecret, issuer string) gin.HandlerFunc {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			unauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			logger.Warn("Authorization header format invalid")
			unauthorized(c, "Authorization header format must be Bearer {token}")
			return
		}

		claims := &Claims{}
		token, err := parser.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (any, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			logger.Warn("Invalid token", slog.Any("error", err))
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			unauthorized(c, msg)
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			unauthorized(c, "Invalid token claims")
			return
		}

		principal := claims.Principal()
		enrichedLogger := logger.With(
			slog.String("user_id", principal.UserID),
			slog.String("tenant_id", principal.TenantID),
		)

		ctx := WithPrincipal(c.Request.Context(), principal)
		ctx = tenancy.WithTenant(ctx, principal.TenantID)
		ctx = WithLogger(ctx, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// IssueToken signs claims with HS256. Used by the operator CLI for local tokens and by tests.
func IssueToken(secret string, claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
