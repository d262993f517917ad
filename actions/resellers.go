package actions

import (
	"github.com/gin-gonic/gin"

	"gitlab.com/digitory/partner_portal_api/model"
	"gitlab.com/digitory/partner_portal_api/service"
)

// GetResellers returns all partners, filterable by status and free text
// search
func (actions *Actions) GetResellers(c *gin.Context) {
	page, limit := getPagination(c)
	status := model.ResellerStatus(c.Query("status"))
	list, err := actions.service.ListResellers(status, c.Query("query"), limit, page)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, list)
}

type resellerCreateRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required"`
	Password       string   `json:"password" binding:"required"`
	CompanyName    string   `json:"company_name" binding:"required"`
	Phone          string   `json:"phone"`
	CommissionRate *float64 `json:"commission_rate"`
}

// CreateReseller onboards a partner account on behalf of an admin
func (actions *Actions) CreateReseller(c *gin.Context) {
	request := resellerCreateRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid reseller request")
		return
	}
	user, reseller, err := actions.service.CreateReseller(
		request.Name,
		request.Email,
		request.Password,
		request.CompanyName,
		request.Phone,
		request.CommissionRate,
	)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(Created, gin.H{
		"user":     user,
		"reseller": reseller,
	})
}

// GetReseller returns one partner with account and tier standing
func (actions *Actions) GetReseller(c *gin.Context) {
	id, ok := getParamAsUint64(c, "reseller_id")
	if !ok {
		abortWithError(c, BadRequest, "Invalid reseller id")
		return
	}
	reseller, err := actions.service.GetReseller(id)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	user, err := actions.service.GetUserByID(reseller.UserID)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	progress, err := actions.service.ComputeTierProgress(reseller)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, gin.H{
		"reseller":      reseller,
		"user":          user,
		"tier_progress": progress,
	})
}

// UpdateReseller applies an admin edit to a partner profile
func (actions *Actions) UpdateReseller(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	id, ok := getParamAsUint64(c, "reseller_id")
	if !ok {
		abortWithError(c, BadRequest, "Invalid reseller id")
		return
	}
	request := service.ResellerUpdate{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid reseller request")
		return
	}
	reseller, err := actions.service.UpdateReseller(userID, id, request)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, reseller)
}
