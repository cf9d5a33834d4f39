package middleware

import (
	"net/http"
	"strings"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/data/repository"
	"ecommerce-api/pkg/token"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Authenticate gates a route behind a signed bearer token and a set of
// allowed roles. An empty role set admits any authenticated role.
// A role outside the allowed set answers 400, not 403; existing clients
// depend on that status.
func Authenticate(
	userRepo repository.UserRepository,
	jwtCfg utils.JWTConfig,
	logger *zap.Logger,
	roles ...entity.Role,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := token.Parse(jwtCfg, parts[1])
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if !claims.Role.OneOf(roles...) {
				logger.Warn("Role not permitted for route",
					zap.String("role", string(claims.Role)),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseBadRequest(w, "Access denied. You do not have "+string(claims.Role)+" privileges.", nil)
				return
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				logger.Warn("Malformed subject in token", zap.String("subject", claims.Subject))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			// Cross-check the claimed identity against the store
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to look up token identity",
					zap.Error(err),
					zap.String("user_id", userID.String()),
				)
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || user.Role != claims.Role {
				logger.Warn("Token identity not found",
					zap.String("user_id", userID.String()),
					zap.String("claimed_role", string(claims.Role)),
				)
				utils.ResponseBadRequest(w, "Unauthorized", nil)
				return
			}

			ctx := utils.SetUserContext(r.Context(), &utils.AuthUser{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role,
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
