package actions

import (
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a user and returns a bearer token with the profile
func (actions *Actions) Login(c *gin.Context) {
	request := loginRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid login request")
		return
	}
	token, user, err := actions.service.Login(request.Email, request.Password)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, gin.H{
		"token": token,
		"user":  user,
	})
}

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`
	Phone       string `json:"phone"`
}

// Register creates a partner account with its reseller profile
func (actions *Actions) Register(c *gin.Context) {
	request := registerRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid registration request")
		return
	}
	user, reseller, err := actions.service.Register(request.Name, request.Email, request.Password, request.CompanyName, request.Phone)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(Created, gin.H{
		"user":     user,
		"reseller": reseller,
	})
}

// GetProfile returns the authenticated account, with the reseller profile
// attached for partner users
func (actions *Actions) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	user, err := actions.service.GetUserByID(userID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	response := gin.H{"user": user}
	if reseller, err := actions.service.GetResellerByUserID(userID); err == nil {
		response["reseller"] = reseller
	}
	c.JSON(OK, response)
}

type profileUpdateRequest struct {
	Name            string `json:"name"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// UpdateProfile changes the account name or rotates the password
func (actions *Actions) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	request := profileUpdateRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid profile request")
		return
	}
	user, err := actions.service.UpdateProfile(userID, request.Name, request.CurrentPassword, request.NewPassword)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, user)
}
