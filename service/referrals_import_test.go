package service

import (
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/digitory/partner_portal_api/model"
)

func TestImportReferralsMissingHeader(t *testing.T) {
	Convey("Given a csv without the required columns", t, func() {
		srv, mock := setupService()
		reseller := &model.Reseller{ID: 3, UserID: 12, CompanyName: "Tech Partners Inc"}
		input := strings.NewReader("companyname,contactname\nAcme,Bob\n")

		_, err := srv.ImportReferrals(reseller, input)

		Convey("The whole batch should be rejected", func() {
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "contactemail")
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestImportReferralsSkipsInvalidRows(t *testing.T) {
	Convey("Given a csv where every row fails validation", t, func() {
		srv, mock := setupService()
		reseller := &model.Reseller{ID: 3, UserID: 12, CompanyName: "Tech Partners Inc"}
		input := strings.NewReader(
			"Company Name,Contact Name,Contact Email\n" +
				",Bob Williams,bob@acme.com\n" +
				"Acme Corporation,,bob@acme.com\n" +
				"Acme Corporation,Bob Williams,not-an-email\n")

		result, err := srv.ImportReferrals(reseller, input)

		Convey("Every row should be skipped with its own error and nothing stored", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, result.Imported, 0)
			assert.Equal(t, result.Skipped, 3)
			So(result.Errors, ShouldHaveLength, 3)
			So(result.Errors[0], ShouldContainSubstring, "row 2")
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestImportReferralsCommitsValidRows(t *testing.T) {
	Convey("Given a csv mixing valid and invalid rows", t, func() {
		srv, mock := setupService()
		reseller := &model.Reseller{ID: 3, UserID: 12, CompanyName: "Tech Partners Inc"}
		input := strings.NewReader(
			"companyname,contactname,contactemail,productinterest,estimatedvalue\n" +
				"Acme Corporation,Bob Williams,bob@acme.com,enterprise,50000\n" +
				"Global Tech Ltd,Alice Brown,alice@globaltech.com,unknown,\n" +
				"Broken Row,No Email,nope,,\n")

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO "referrals"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101).AddRow(102))
		mock.ExpectQuery(`SELECT (.+) FROM "users"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "notifications"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectQuery(`INSERT INTO "activity_logs"`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
		mock.ExpectCommit()

		result, err := srv.ImportReferrals(reseller, input)

		Convey("Valid rows should commit together, the rest reported", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, result.Imported, 2)
			assert.Equal(t, result.Skipped, 1)
			So(result.Errors, ShouldHaveLength, 1)
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
	})
}

func TestNormalizeImportColumn(t *testing.T) {
	Convey("Given header names as spreadsheet exports write them", t, func() {
		assert.Equal(t, normalizeImportColumn("Company Name"), "companyname")
		assert.Equal(t, normalizeImportColumn(" Contact_Email "), "contactemail")

		Convey("A UTF-8 byte order mark on the first header should be dropped", func() {
			assert.Equal(t, normalizeImportColumn("\ufeffcompany_name"), "companyname")
		})
	})
}

func TestParseImportRow(t *testing.T) {
	Convey("Given a valid row", t, func() {
		srv, _ := setupService()
		columns := map[string]int{
			"companyname": 0, "contactname": 1, "contactemail": 2,
			"productinterest": 3, "estimatedvalue": 4, "notes": 5,
		}
		referral, err := srv.parseImportRow(3, columns, []string{
			"Acme Corporation", "Bob Williams", "BOB@Acme.com", "enterprise", "50000", "warm intro",
		})

		Convey("The fields should be normalized and the stage should start new", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, referral.ContactEmail, "bob@acme.com")
			assert.Equal(t, referral.ProductInterest, model.ProductInterestEnterprise)
			assert.Equal(t, referral.Status, model.ReferralStatusNew)
			So(referral.EstimatedValue.V.String(), ShouldEqual, "50000.00")
		})
	})

	Convey("Given an unknown product interest", t, func() {
		srv, _ := setupService()
		columns := map[string]int{"companyname": 0, "contactname": 1, "contactemail": 2, "productinterest": 3}
		referral, err := srv.parseImportRow(3, columns, []string{"Acme", "Bob", "bob@acme.com", "mega"})

		Convey("It should fall back to the starter product", func() {
			So(err, ShouldBeNil)
			assert.Equal(t, referral.ProductInterest, model.ProductInterestStarter)
		})
	})
}
