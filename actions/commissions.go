package actions

import (
	"github.com/gin-gonic/gin"

	"gitlab.com/digitory/partner_portal_api/model"
)

// GetCommissions returns commissions across all partners with per-status
// totals
func (actions *Actions) GetCommissions(c *gin.Context) {
	page, limit := getPagination(c)
	status := model.CommissionStatus(c.Query("status"))
	list, err := actions.service.ListCommissions(0, status, limit, page)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, list)
}

type commissionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateCommissionStatus moves a commission through the payout flow. Marking
// it paid credits the partner's accumulated earnings once.
func (actions *Actions) UpdateCommissionStatus(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	id, ok := getParamAsUint64(c, "commission_id")
	if !ok {
		abortWithError(c, BadRequest, "Invalid commission id")
		return
	}
	request := commissionStatusRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid status request")
		return
	}
	commission, err := actions.service.SetCommissionStatus(userID, id, model.CommissionStatus(request.Status))
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, commission)
}

// GetOwnCommissions returns the authenticated partner's commissions
func (actions *Actions) GetOwnCommissions(c *gin.Context) {
	reseller, ok := actions.getReseller(c)
	if !ok {
		return
	}
	page, limit := getPagination(c)
	status := model.CommissionStatus(c.Query("status"))
	list, err := actions.service.ListCommissions(reseller.ID, status, limit, page)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, list)
}
