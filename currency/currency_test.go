package currency_test

import (
	"testing"

	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"

	"gitlab.com/digitory/partner_portal_api/currency"
	"gitlab.com/digitory/partner_portal_api/model"
)

func TestGetCountryByCode(t *testing.T) {
	Convey("Given a country code", t, func() {
		Convey("It should resolve case insensitively", func() {
			assert.Equal(t, currency.GetCountryByCode("in").Currency, "INR")
			assert.Equal(t, currency.GetCountryByCode("GB").Symbol, "£")
		})
		Convey("Unknown codes should fall back to the first entry", func() {
			assert.Equal(t, currency.GetCountryByCode("XX").Code, "US")
		})
	})
}

func TestFormat(t *testing.T) {
	Convey("Given amounts in the default locale", t, func() {
		Convey("Whole amounts should drop the trailing cents", func() {
			So(currency.Format(model.MoneyFromFloat(1200), "US"), ShouldEqual, "$1,200")
			So(currency.Format(model.MoneyFromFloat(48000), "US"), ShouldEqual, "$48,000")
		})
		Convey("Fractional amounts should keep them", func() {
			So(currency.Format(model.MoneyFromFloat(1200.50), "US"), ShouldEqual, "$1,200.50")
		})
		Convey("A nil amount should render as zero", func() {
			So(currency.Format(nil, "US"), ShouldEqual, "$0")
		})
	})

	Convey("Given a locale with different separators", t, func() {
		So(currency.Format(model.MoneyFromFloat(1234567.89), "EU"), ShouldEqual, "€1.234.567,89")
	})
}

func TestFormatPrecise(t *testing.T) {
	Convey("Given exact payout figures", t, func() {
		So(currency.FormatPrecise(model.MoneyFromFloat(7200), "US"), ShouldEqual, "$7,200.00")
		So(currency.FormatPrecise(model.MoneyFromFloat(0.5), "US"), ShouldEqual, "$0.50")
		So(currency.FormatPrecise(model.MoneyFromFloat(-42), "US"), ShouldEqual, "$-42.00")
	})
}
