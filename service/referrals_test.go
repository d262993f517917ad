package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/digitory/partner_portal_api/model"
)

func referralRow(id, resellerID uint64, status model.ReferralStatus) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "reseller_id", "company_name", "contact_name", "contact_email", "status"}).
		AddRow(id, resellerID, "Acme Corporation", "Bob Williams", "bob@acme.com", status.String())
}

func resellerRow(id, userID uint64, rate float64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "user_id", "company_name", "commission_rate", "tier", "status", "total_earnings"}).
		AddRow(id, userID, "Tech Partners Inc", rate, "gold", "active", "45000.00")
}

func TestTransitionReferralRejectsUnknownStage(t *testing.T) {
	Convey("Given a transition to an unknown stage", t, func() {
		srv, mock := setupService()

		_, err := srv.TransitionReferral(1, 7, model.ReferralStatus("archived"), nil)

		Convey("It should be rejected before touching the store", func() {
			assert.Equal(t, err, ErrInvalidStatus)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestTransitionReferralLost(t *testing.T) {
	Convey("Given a referral moved to lost", t, func() {
		srv, mock := setupService()

		mock.ExpectQuery(`SELECT (.+) FROM "referrals"`).
			WillReturnRows(referralRow(7, 3, model.ReferralStatusProposal))
		mock.ExpectQuery(`SELECT (.+) FROM "resellers"`).
			WillReturnRows(resellerRow(3, 12, 15))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "referrals"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		referral, err := srv.TransitionReferral(1, 7, model.ReferralStatusLost, nil)

		Convey("It should update the stage and notify the partner with no commission", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, referral.Status, model.ReferralStatusLost)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestTransitionReferralWon(t *testing.T) {
	Convey("Given a referral closed won with a deal value", t, func() {
		srv, mock := setupService()
		dealValue := 48000.0

		mock.ExpectQuery(`SELECT (.+) FROM "referrals"`).
			WillReturnRows(referralRow(7, 3, model.ReferralStatusProposal))
		mock.ExpectQuery(`SELECT (.+) FROM "resellers"`).
			WillReturnRows(resellerRow(3, 12, 15))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "referrals"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "commissions"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("country", "US"))
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectCommit()

		referral, err := srv.TransitionReferral(1, 7, model.ReferralStatusWon, &dealValue)

		Convey("It should derive the commission inside the same transaction", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, referral.Status, model.ReferralStatusWon)
			So(referral.DealValue.V.String(), ShouldEqual, "48000.00")
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})

	Convey("Given a referral closed won without a deal value", t, func() {
		srv, mock := setupService()

		mock.ExpectQuery(`SELECT (.+) FROM "referrals"`).
			WillReturnRows(referralRow(8, 3, model.ReferralStatusNegotiation))
		mock.ExpectQuery(`SELECT (.+) FROM "resellers"`).
			WillReturnRows(resellerRow(3, 12, 15))
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "referrals"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		referral, err := srv.TransitionReferral(1, 8, model.ReferralStatusWon, nil)

		Convey("It should update the stage only, derive nothing and notify nobody", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, referral.Status, model.ReferralStatusWon)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestCreateReferralWithoutEstimatedValue(t *testing.T) {
	Convey("Given a referral submitted without an estimated value", t, func() {
		srv, mock := setupService()
		reseller := &model.Reseller{ID: 3, UserID: 12, CompanyName: "Tech Partners Inc"}

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "referrals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		referral, err := srv.CreateReferral(reseller, "Acme Corporation", "Bob Williams", "bob@acme.com", "", model.ProductInterestEnterprise, nil, "")

		Convey("The absent money columns should persist as NULL", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, referral.ID, uint64(7))
			So(referral.EstimatedValue, ShouldNotBeNil)
			So(referral.EstimatedValue.V, ShouldBeNil)
			So(referral.DealValue, ShouldNotBeNil)
			So(referral.DealValue.V, ShouldBeNil)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}
