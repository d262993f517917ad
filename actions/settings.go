package actions

import (
	"github.com/gin-gonic/gin"

	"gitlab.com/digitory/partner_portal_api/currency"
	"gitlab.com/digitory/partner_portal_api/model"
)

// GetCurrencySettings returns the configured display locale and the list of
// selectable countries
func (actions *Actions) GetCurrencySettings(c *gin.Context) {
	country := currency.GetCountryByCode(actions.service.DisplayCountry())
	c.JSON(OK, gin.H{
		"country":   country,
		"countries": currency.Countries,
	})
}

// GetSettings returns the system settings together with the tier ladder
func (actions *Actions) GetSettings(c *gin.Context) {
	settings, err := actions.service.GetSystemSettings()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	tiers, err := actions.service.GetTierConfigs()
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, gin.H{
		"settings": settings,
		"tiers":    tiers,
	})
}

type settingsUpdateRequest struct {
	Settings map[string]string  `json:"settings"`
	Tiers    []model.TierConfig `json:"tiers"`
}

// UpdateSettings upserts system settings and tier ladder rows and audits
// the change
func (actions *Actions) UpdateSettings(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		abortWithError(c, Unauthorized, "Unauthorized")
		return
	}
	request := settingsUpdateRequest{}
	if err := c.ShouldBindJSON(&request); err != nil {
		abortWithError(c, BadRequest, "Invalid settings request")
		return
	}
	if len(request.Settings) > 0 {
		if err := actions.service.UpdateSystemSettings(request.Settings); err != nil {
			abortServiceError(c, err)
			return
		}
	}
	if len(request.Tiers) > 0 {
		if err := actions.service.UpdateTierConfigs(request.Tiers); err != nil {
			abortServiceError(c, err)
			return
		}
	}
	if err := actions.service.AuditSettingsUpdate(userID, request.Settings); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(OK, gin.H{"updated": true})
}
