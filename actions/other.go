package actions

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"gitlab.com/digitory/partner_portal_api/logger"
	"gitlab.com/digitory/partner_portal_api/service"
)

// RequestError is the json error envelope returned on aborted requests
type RequestError struct {
	Error string `json:"error"`
}

// Ping godoc
func Ping(c *gin.Context) {
	c.JSON(OK, "pong")
}

func abortWithError(c *gin.Context, code int, message string) {
	l := getlog(c)
	l.Debug().Int("resp_code", code).Msg(message)
	c.AbortWithStatusJSON(code, RequestError{Error: message})
}

// abortServiceError maps service layer sentinels onto response codes
func abortServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrUserNotFound, service.ErrResellerNotFound,
		service.ErrReferralNotFound, service.ErrCommissionNotFound:
		abortWithError(c, NotFound, err.Error())
	case service.ErrInvalidStatus, service.ErrInvalidInput:
		abortWithError(c, ValidationFailed, err.Error())
	case service.ErrInvalidCredentials:
		abortWithError(c, Unauthorized, err.Error())
	case service.ErrEmailTaken:
		abortWithError(c, BadRequest, err.Error())
	default:
		l := getlog(c)
		l.Error().Err(err).Msg("Request failed")
		abortWithError(c, ServerError, "Something went wrong, please try again later")
	}
}

func getlog(c *gin.Context) zerolog.Logger {
	return logger.GetLogger(c)
}

func getUserID(c *gin.Context) (uint64, bool) {
	iUserID, ok := c.Get("auth_user_id")
	if !ok {
		return 0, false
	}
	return iUserID.(uint64), true
}

func getQueryAsInt(c *gin.Context, name string, def int) int {
	val := c.Query(name)
	if val == "" {
		return def
	}
	param, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return param
}

func getPagination(c *gin.Context) (int, int) {
	page := getQueryAsInt(c, "page", 1)
	limit := getQueryAsInt(c, "limit", 10)
	return page, limit
}

func getParamAsUint64(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
