package api

import (
	"hotel-booking-api/internal/domain/user"
	"hotel-booking-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// actorFrom reads the authenticated actor placed in the context by the
// auth middleware.
func actorFrom(c *gin.Context) (uuid.UUID, user.Role, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return uuid.Nil, "", false
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		return uuid.Nil, "", false
	}
	return userID, role, true
}

func isAdmin(role user.Role) bool {
	return role == user.RoleAdmin
}
