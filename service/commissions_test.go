package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/digitory/partner_portal_api/model"
)

func commissionRow(id, referralID, resellerID uint64, status model.CommissionStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "referral_id", "reseller_id", "deal_value", "commission_rate", "commission_amount", "status"}).
		AddRow(id, referralID, resellerID, "48000.00", 15.0, "7200.00", status.String())
}

func TestSetCommissionStatusPaid(t *testing.T) {
	Convey("Given a pending commission marked paid", t, func() {
		srv, mock := setupService()

		mock.ExpectQuery(`SELECT (.+) FROM "commissions"`).
			WillReturnRows(commissionRow(5, 7, 3, model.CommissionStatusPending))
		mock.ExpectQuery(`SELECT (.+) FROM "resellers"`).
			WillReturnRows(resellerRow(3, 12, 15))
		mock.ExpectQuery(`SELECT (.+) FROM "referrals"`).
			WillReturnRows(referralRow(7, 3, model.ReferralStatusWon))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "commissions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectExec(`UPDATE "resellers"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("country", "US"))
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		commission, err := srv.SetCommissionStatus(1, 5, model.CommissionStatusPaid)

		Convey("It should stamp the payout date and credit the earnings once", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, commission.Status, model.CommissionStatusPaid)
			So(commission.PaidAt, ShouldNotBeNil)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestSetCommissionStatusPaidTwice(t *testing.T) {
	Convey("Given a commission already paid and marked paid again", t, func() {
		srv, mock := setupService()

		mock.ExpectQuery(`SELECT (.+) FROM "commissions"`).
			WillReturnRows(commissionRow(5, 7, 3, model.CommissionStatusPaid))
		mock.ExpectQuery(`SELECT (.+) FROM "resellers"`).
			WillReturnRows(resellerRow(3, 12, 15))
		mock.ExpectQuery(`SELECT (.+) FROM "referrals"`).
			WillReturnRows(referralRow(7, 3, model.ReferralStatusWon))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "commissions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("country", "US"))
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		commission, err := srv.SetCommissionStatus(1, 5, model.CommissionStatusPaid)

		Convey("It should never credit the earnings a second time", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, commission.Status, model.CommissionStatusPaid)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestSetCommissionStatusApproved(t *testing.T) {
	Convey("Given a pending commission marked approved", t, func() {
		srv, mock := setupService()

		mock.ExpectQuery(`SELECT (.+) FROM "commissions"`).
			WillReturnRows(commissionRow(5, 7, 3, model.CommissionStatusPending))
		mock.ExpectQuery(`SELECT (.+) FROM "resellers"`).
			WillReturnRows(resellerRow(3, 12, 15))
		mock.ExpectQuery(`SELECT (.+) FROM "referrals"`).
			WillReturnRows(referralRow(7, 3, model.ReferralStatusWon))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "commissions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("country", "US"))
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		commission, err := srv.SetCommissionStatus(1, 5, model.CommissionStatusApproved)

		Convey("It should notify the partner without touching the earnings", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, commission.Status, model.CommissionStatusApproved)
			So(commission.PaidAt, ShouldBeNil)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestSetCommissionStatusRejectsUnknown(t *testing.T) {
	Convey("Given a transition to an unknown payout status", t, func() {
		srv, mock := setupService()

		_, err := srv.SetCommissionStatus(1, 5, model.CommissionStatus("refunded"))

		Convey("It should be rejected before touching the store", func() {
			assert.Equal(t, err, ErrInvalidStatus)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestDeriveOnWinIsIdempotent(t *testing.T) {
	Convey("Given a referral that already has a commission", t, func() {
		srv, mock := setupService()
		referral := &model.Referral{ID: 7, ResellerID: 3, CompanyName: "Acme Corporation"}
		reseller := &model.Reseller{ID: 3, UserID: 12, CommissionRate: 15}

		// conflicting insert derives nothing
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "commissions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectCommit()

		err := srv.deriveOnWin(srv.repo.Conn, referral, reseller, model.MoneyFromFloat(48000))

		Convey("The insert should be skipped with no notification", func() {
			So(err, ShouldBeNil)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}
