package actions

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gitlab.com/digitory/partner_portal_api/logger"
	"gitlab.com/digitory/partner_portal_api/model"
	"gitlab.com/digitory/partner_portal_api/service/auth_service"
)

// Restrict allows only requests carrying a valid bearer token, loading the
// user id and role on the request context
func (actions *Actions) Restrict() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			log := logger.GetLogger(c)
			log.Debug().Str("section", "restrict").Msg("Missing token")
			abortWithError(c, Unauthorized, "Unauthorized")
			return
		}
		actions.restrictByToken(c, token)
		if c.IsAborted() {
			return
		}
		c.Next()
	}
}

// RestrictRole allows only authenticated users carrying the given role
func (actions *Actions) RestrictRole(role model.UserRole) gin.HandlerFunc {
	restrict := actions.Restrict()
	return func(c *gin.Context) {
		restrict(c)
		if c.IsAborted() {
			return
		}
		iRole, _ := c.Get("auth_role")
		if iRole != role.String() {
			log := logger.GetLogger(c)
			log.Debug().
				Str("section", "restrict").
				Str("required_role", role.String()).
				Msg("Invalid access to restricted resource")
			abortWithError(c, AccessDenied, "Access denied")
			return
		}
		c.Next()
	}
}

func (actions *Actions) restrictByToken(c *gin.Context, token string) {
	log := logger.GetLogger(c)
	claims, err := auth_service.ParseToken(token, actions.jwtTokenSecret)
	// check that the token is valid
	if err != nil {
		_ = c.Error(err)
		log.Warn().Err(err).Str("section", "restrict:token").Msg("Invalid token received")
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	// load the ID of the user from the token
	sub, _ := claims["sub"].(string)
	userID, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		_ = c.Error(err)
		log.Warn().Err(err).Str("section", "restrict:token").Msg("Unable to load user id from token 'sub' claim")
		abortWithError(c, AccessDenied, "Access denied")
		return
	}
	role, _ := claims["role"].(string)
	if !model.UserRole(role).IsValid() {
		log.Warn().Uint64("user_id", userID).Str("section", "restrict:token").Msg("Invalid role claim")
		abortWithError(c, AccessDenied, "Access denied")
		return
	}
	c.Set("auth_user_id", userID)
	c.Set("auth_role", role)
}

// getReseller resolves the reseller profile of the authenticated user
func (actions *Actions) getReseller(c *gin.Context) (*model.Reseller, bool) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return nil, false
	}
	reseller, err := actions.service.GetResellerByUserID(userID)
	if err != nil {
		abortServiceError(c, err)
		return nil, false
	}
	return reseller, true
}
