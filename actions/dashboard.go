package actions

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// GetAdminDashboard returns the portal wide dashboard numbers
func (actions *Actions) GetAdminDashboard(c *gin.Context) {
	dashboard, err := actions.service.GetAdminDashboard()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, dashboard)
}

// GetResellerDashboard returns the authenticated partner's dashboard
func (actions *Actions) GetResellerDashboard(c *gin.Context) {
	reseller, ok := actions.getReseller(c)
	if !ok {
		return
	}
	dashboard, err := actions.service.GetResellerDashboard(reseller)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, dashboard)
}

// GetReports returns the admin reporting aggregates
func (actions *Actions) GetReports(c *gin.Context) {
	reports, err := actions.service.GetReports()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, reports)
}

// ExportReports downloads the reseller performance report as csv or pdf
func (actions *Actions) ExportReports(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	file, err := actions.service.ExportResellerPerformance(format)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	filename := fmt.Sprintf("reseller_performance_%s.%s", time.Now().Format("20060102"), file.Type)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(OK, file.DataType, file.Data)
}
