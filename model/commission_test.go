package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestComputeCommissionAmount(t *testing.T) {
	Convey("Given a deal value and a percentage rate", t, func() {
		Convey("It should derive the payout quantized to two decimals", func() {
			So(ComputeCommissionAmount(MoneyFromFloat(48000), 15).String(), ShouldEqual, "7200.00")
			So(ComputeCommissionAmount(MoneyFromFloat(75000), 12).String(), ShouldEqual, "9000.00")
			So(ComputeCommissionAmount(MoneyFromFloat(8000), 10).String(), ShouldEqual, "800.00")
		})
		Convey("It should round fractional cents once at the end", func() {
			// 1234.56 * 3.33% = 41.110848
			So(ComputeCommissionAmount(MoneyFromFloat(1234.56), 3.33).String(), ShouldEqual, "41.11")
			// 999.99 * 12.5% = 124.99875
			So(ComputeCommissionAmount(MoneyFromFloat(999.99), 12.5).String(), ShouldEqual, "125.00")
		})
		Convey("It should leave the deal value untouched", func() {
			dealValue := MoneyFromFloat(48000)
			_ = ComputeCommissionAmount(dealValue, 15)
			So(dealValue.String(), ShouldEqual, "48000.00")
		})
	})
}

func TestNewCommission(t *testing.T) {
	Convey("Given a won referral", t, func() {
		commission := NewCommission(7, 3, MoneyFromFloat(48000), 15)

		Convey("It should freeze the deal value, rate and amount on the row", func() {
			assert.Equal(t, commission.ReferralID, uint64(7))
			assert.Equal(t, commission.ResellerID, uint64(3))
			assert.Equal(t, commission.CommissionRate, float64(15))
			So(commission.DealValue.V.String(), ShouldEqual, "48000.00")
			So(commission.CommissionAmount.V.String(), ShouldEqual, "7200.00")
		})
		Convey("It should start in the pending status with no payout date", func() {
			assert.Equal(t, commission.Status, CommissionStatusPending)
			So(commission.PaidAt, ShouldBeNil)
		})
	})
}
