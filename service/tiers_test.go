package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/digitory/partner_portal_api/model"
)

func tierConfigRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "tier", "min_referrals", "min_revenue", "bonus_rate"}).
		AddRow(1, "bronze", 0, "0.00", 0.0).
		AddRow(2, "silver", 10, "50000.00", 2.0).
		AddRow(3, "gold", 25, "150000.00", 5.0).
		AddRow(4, "platinum", 50, "500000.00", 8.0)
}

func TestComputeTierProgress(t *testing.T) {
	Convey("Given a mid ladder reseller", t, func() {
		srv, mock := setupService()
		reseller := &model.Reseller{
			ID:            3,
			Tier:          model.ResellerTierSilver,
			TotalEarnings: model.WrapMoney(model.MoneyFromFloat(45000)),
		}
		mock.ExpectQuery(`SELECT (.+) FROM "tier_configs"`).WillReturnRows(tierConfigRows())
		mock.ExpectQuery(`SELECT count(.+) FROM "referrals"`).
			WithArgs(reseller.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

		progress, err := srv.ComputeTierProgress(reseller)

		Convey("It should average the capped referral and revenue percentages", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, progress.CurrentTier, model.ResellerTierSilver)
			So(progress.NextTier, ShouldNotBeNil)
			assert.Equal(t, *progress.NextTier, model.ResellerTierGold)
			// 10/25 referrals = 40, 45000/150000 revenue = 30, average 35
			assert.Equal(t, progress.Progress, 35)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})

	Convey("Given a reseller far past both thresholds", t, func() {
		srv, mock := setupService()
		reseller := &model.Reseller{
			ID:            4,
			Tier:          model.ResellerTierBronze,
			TotalEarnings: model.WrapMoney(model.MoneyFromFloat(900000)),
		}
		mock.ExpectQuery(`SELECT (.+) FROM "tier_configs"`).WillReturnRows(tierConfigRows())
		mock.ExpectQuery(`SELECT count(.+) FROM "referrals"`).
			WithArgs(reseller.ID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(200))

		progress, err := srv.ComputeTierProgress(reseller)

		Convey("Both percentages should be capped at 100", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, progress.Progress, 100)
		})
	})

	Convey("Given a reseller on the top tier", t, func() {
		srv, mock := setupService()
		reseller := &model.Reseller{ID: 5, Tier: model.ResellerTierPlatinum}

		progress, err := srv.ComputeTierProgress(reseller)

		Convey("It should report 100 with no next tier and touch nothing", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, progress.Progress, 100)
			So(progress.NextTier, ShouldBeNil)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestCappedPercent(t *testing.T) {
	Convey("Given progress thresholds", t, func() {
		Convey("A zero threshold should count as already met", func() {
			So(cappedPercent(0, 0), ShouldEqual, 100)
			So(cappedPercent(5, 0), ShouldEqual, 100)
		})
		Convey("The percentage should be capped at 100", func() {
			So(cappedPercent(200, 50), ShouldEqual, 100)
			So(cappedPercent(25, 50), ShouldEqual, 50)
			So(cappedPercent(0, 50), ShouldEqual, 0)
		})
	})
}
