package actions

import (
	"github.com/gin-gonic/gin"

	"gitlab.com/digitory/partner_portal_api/model"
)

// GetReferrals returns referrals across all partners, filterable by status
// and free text search
func (actions *Actions) GetReferrals(c *gin.Context) {
	page, limit := getPagination(c)
	status := model.ReferralStatus(c.Query("status"))
	list, err := actions.service.ListReferrals(0, status, c.Query("query"), limit, page)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, list)
}

type referralStatusRequest struct {
	Status    string   `json:"status" binding:"required"`
	DealValue *float64 `json:"deal_value"`
}

// UpdateReferralStatus moves a referral through the pipeline. Closing a
// referral won with a positive deal value also derives its commission.
func (actions *Actions) UpdateReferralStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	id, ok := getParamAsUint64(c, "referral_id")
	if !ok {
		abortWithError(c, BadRequest, "Invalid referral id")
		return
	}
	request := referralStatusRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid status request")
		return
	}
	referral, err := actions.service.TransitionReferral(userID, id, model.ReferralStatus(request.Status), request.DealValue)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, referral)
}

// GetOwnReferrals returns the authenticated partner's referrals
func (actions *Actions) GetOwnReferrals(c *gin.Context) {
	reseller, ok := actions.getReseller(c)
	if !ok {
		return
	}
	page, limit := getPagination(c)
	status := model.ReferralStatus(c.Query("status"))
	list, err := actions.service.ListReferrals(reseller.ID, status, c.Query("query"), limit, page)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, list)
}

type referralCreateRequest struct {
	CompanyName     string   `json:"company_name" binding:"required"`
	ContactName     string   `json:"contact_name" binding:"required"`
	ContactEmail    string   `json:"contact_email" binding:"required"`
	ContactPhone    string   `json:"contact_phone"`
	ProductInterest string   `json:"product_interest"`
	EstimatedValue  *float64 `json:"estimated_value"`
	Notes           string   `json:"notes"`
}

// CreateReferral submits a new referral for the authenticated partner
func (actions *Actions) CreateReferral(c *gin.Context) {
	reseller, ok := actions.getReseller(c)
	if !ok {
		return
	}
	request := referralCreateRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid referral request")
		return
	}
	referral, err := actions.service.CreateReferral(
		reseller,
		request.CompanyName,
		request.ContactName,
		request.ContactEmail,
		request.ContactPhone,
		model.ProductInterest(request.ProductInterest),
		request.EstimatedValue,
		request.Notes,
	)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(Created, referral)
}

// ImportReferrals bulk creates referrals from an uploaded CSV file
func (actions *Actions) ImportReferrals(c *gin.Context) {
	reseller, ok := actions.getReseller(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, BadRequest, "Missing csv file")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		abortWithError(c, BadRequest, "Unable to read csv file")
		return
	}
	defer file.Close()
	result, err := actions.service.ImportReferrals(reseller, file)
	if err != nil {
		abortWithError(c, ValidationFailed, err.Error())
		return
	}
	c.JSON(OK, result)
}
