package commands

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	cfg "gitlab.com/digitory/partner_portal_api/config"
	"gitlab.com/digitory/partner_portal_api/model"
	"gitlab.com/digitory/partner_portal_api/queries"
)

type seedReferral struct {
	reseller        int
	companyName     string
	contactName     string
	contactEmail    string
	contactPhone    string
	productInterest model.ProductInterest
	estimatedValue  float64
	dealValue       float64
	status          model.ReferralStatus
}

// Seed fills an empty database with a demo data set: one admin, three
// partners with a populated pipeline, commissions for the won deals, the
// tier ladder and the default settings. Running it twice is a no-op.
func Seed(config cfg.Config) {
	repo := queries.NewRepo(config.DatabaseCluster)

	var admins int64
	if db := repo.ConnReader.Table("users").Where("role = ?", model.UserRoleAdmin).Count(&admins); db.Error != nil {
		log.Fatal().Err(db.Error).Str("section", "seed").Msg("Unable to inspect the database")
	}
	if admins > 0 {
		log.Info().Str("section", "seed").Msg("Database already seeded, nothing to do")
		return
	}

	err := repo.Conn.Transaction(func(tx *gorm.DB) error {
		admin := model.NewUser("Digitory Admin", "admin@digitory.com", "admin123", model.UserRoleAdmin)
		if err := admin.EncodePass(); err != nil {
			return err
		}
		if db := tx.Table("users").Create(admin); db.Error != nil {
			return db.Error
		}

		type partner struct {
			name, email, company, phone string
			rate                        float64
			tier                        model.ResellerTier
			earnings                    float64
		}
		partners := []partner{
			{"John Smith", "john@techpartners.com", "Tech Partners Inc", "+1-555-0101", 15, model.ResellerTierGold, 45000},
			{"Sarah Johnson", "sarah@digitalagency.com", "Digital Agency Co", "+1-555-0102", 12, model.ResellerTierSilver, 18000},
			{"Mike Chen", "mike@cloudresellers.com", "Cloud Resellers LLC", "+1-555-0103", 10, model.ResellerTierBronze, 5000},
		}
		resellers := make([]*model.Reseller, 0, len(partners))
		for _, p := range partners {
			user := model.NewUser(p.name, p.email, "reseller123", model.UserRoleReseller)
			if err := user.EncodePass(); err != nil {
				return err
			}
			if db := tx.Table("users").Create(user); db.Error != nil {
				return db.Error
			}
			reseller := model.NewReseller(user.ID, p.company, p.phone, p.rate)
			reseller.Tier = p.tier
			reseller.TotalEarnings = model.WrapMoney(model.MoneyFromFloat(p.earnings))
			if db := tx.Table("resellers").Create(reseller); db.Error != nil {
				return db.Error
			}
			resellers = append(resellers, reseller)
		}

		seedReferrals := []seedReferral{
			{0, "Acme Corporation", "Bob Williams", "bob@acme.com", "+1-555-1001", model.ProductInterestEnterprise, 50000, 48000, model.ReferralStatusWon},
			{0, "Global Tech Ltd", "Alice Brown", "alice@globaltech.com", "", model.ProductInterestProfessional, 25000, 0, model.ReferralStatusProposal},
			{0, "StartupXYZ", "Dave Lee", "dave@startupxyz.com", "", model.ProductInterestStarter, 5000, 0, model.ReferralStatusContacted},
			{1, "MegaCorp Industries", "Emma Davis", "emma@megacorp.com", "+1-555-1004", model.ProductInterestEnterprise, 80000, 75000, model.ReferralStatusWon},
			{1, "Innovation Labs", "Frank Garcia", "frank@innovationlabs.com", "", model.ProductInterestProfessional, 30000, 0, model.ReferralStatusQualified},
			{2, "SmallBiz Solutions", "Grace Kim", "grace@smallbiz.com", "", model.ProductInterestStarter, 8000, 8000, model.ReferralStatusWon},
			{2, "RetailMax", "Henry Taylor", "henry@retailmax.com", "", model.ProductInterestProfessional, 20000, 0, model.ReferralStatusNew},
			{0, "DataFlow Inc", "Ivy Zhang", "ivy@dataflow.com", "", model.ProductInterestEnterprise, 60000, 0, model.ReferralStatusNegotiation},
		}
		for _, s := range seedReferrals {
			reseller := resellers[s.reseller]
			referral := model.Referral{
				ResellerID:      reseller.ID,
				CompanyName:     s.companyName,
				ContactName:     s.contactName,
				ContactEmail:    s.contactEmail,
				ContactPhone:    s.contactPhone,
				ProductInterest: s.productInterest,
				EstimatedValue:  model.WrapMoney(model.MoneyFromFloat(s.estimatedValue)),
				DealValue:       model.NullMoneyColumn(),
				Status:          s.status,
			}
			if s.dealValue > 0 {
				referral.DealValue = model.WrapMoney(model.MoneyFromFloat(s.dealValue))
			}
			if db := tx.Table("referrals").Create(&referral); db.Error != nil {
				return db.Error
			}
			if s.status != model.ReferralStatusWon {
				continue
			}
			commission := model.NewCommission(referral.ID, reseller.ID, model.MoneyColumnValue(referral.DealValue), reseller.CommissionRate)
			if s.reseller == 0 {
				now := time.Now()
				commission.Status = model.CommissionStatusPaid
				commission.PaidAt = &now
			} else {
				commission.Status = model.CommissionStatusApproved
			}
			if db := tx.Table("commissions").Create(commission); db.Error != nil {
				return db.Error
			}
		}

		ladder := []model.TierConfig{
			{Tier: model.ResellerTierBronze, MinReferrals: 0, MinRevenue: model.WrapMoney(model.MoneyFromFloat(0)), BonusRate: 0},
			{Tier: model.ResellerTierSilver, MinReferrals: 10, MinRevenue: model.WrapMoney(model.MoneyFromFloat(50000)), BonusRate: 2},
			{Tier: model.ResellerTierGold, MinReferrals: 25, MinRevenue: model.WrapMoney(model.MoneyFromFloat(150000)), BonusRate: 5},
			{Tier: model.ResellerTierPlatinum, MinReferrals: 50, MinRevenue: model.WrapMoney(model.MoneyFromFloat(500000)), BonusRate: 8},
		}
		if db := tx.Table("tier_configs").Create(&ladder); db.Error != nil {
			return db.Error
		}

		notifications := []model.Notification{
			{
				UserID:  resellers[0].UserID,
				Title:   model.NotificationTitleReferralWon.String(),
				Message: "Congratulations! Your referral for Acme Corporation closed. You earned $7,200.00 in commission.",
				Link:    model.NotificationLinkResellerReferrals,
			},
			{
				UserID:  resellers[0].UserID,
				Title:   model.NotificationTitleCommissionPaid.String(),
				Message: "Your commission of $7,200.00 has been paid.",
				Link:    model.NotificationLinkResellerCommissions,
			},
			{
				UserID:  admin.ID,
				Title:   model.NotificationTitleReferralReceived.String(),
				Message: "Cloud Resellers LLC submitted a new referral for RetailMax.",
				Link:    model.NotificationLinkAdminReferrals,
			},
		}
		if db := tx.Table("notifications").Create(&notifications); db.Error != nil {
			return db.Error
		}

		settings := []model.SystemSetting{
			{Key: model.SettingKeyDefaultCommissionRate, Value: "10"},
			{Key: model.SettingKeyCompanyName, Value: "Digitory"},
			{Key: model.SettingKeyCompanyEmail, Value: "contact@digitory.com"},
			{Key: model.SettingKeyCountry, Value: "US"},
		}
		if db := tx.Table("system_settings").Create(&settings); db.Error != nil {
			return db.Error
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Str("section", "seed").Msg("Unable to seed the database")
	}
	log.Info().Str("section", "seed").Msg("Seed completed successfully")
	log.Info().Str("section", "seed").Msg("Admin login: admin@digitory.com / admin123")
	log.Info().Str("section", "seed").Msg("Reseller login: john@techpartners.com / reseller123")
}
