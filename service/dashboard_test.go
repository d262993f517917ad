package service

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestConversionRate(t *testing.T) {
	Convey("Given referral counts", t, func() {
		Convey("An empty portal should report zero, not NaN", func() {
			So(conversionRate(0, 0), ShouldEqual, 0)
		})
		Convey("The rate should round to a whole percentage", func() {
			So(conversionRate(1, 3), ShouldEqual, 33)
			So(conversionRate(2, 3), ShouldEqual, 67)
			So(conversionRate(3, 8), ShouldEqual, 38)
			So(conversionRate(8, 8), ShouldEqual, 100)
		})
	})
}

func TestZeroFillMonths(t *testing.T) {
	restore := timeNow
	timeNow = func() time.Time {
		return time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	}
	defer func() { timeNow = restore }()

	Convey("Given sparse month buckets", t, func() {
		sparse := []MonthlyCount{
			{Month: "2026-01", Count: 4},
			{Month: "2026-03", Count: 2},
		}
		filled := zeroFillMonths(sparse, 6)

		Convey("It should produce a dense series ending at the current month", func() {
			So(filled, ShouldHaveLength, 6)
			So(filled[0].Month, ShouldEqual, "2025-10")
			So(filled[5].Month, ShouldEqual, "2026-03")
			So(filled[3].Count, ShouldEqual, 4)
			So(filled[4].Count, ShouldEqual, 0)
			So(filled[5].Count, ShouldEqual, 2)
		})
	})
}

func TestMonthStart(t *testing.T) {
	Convey("Given a reference time", t, func() {
		ref := time.Date(2026, time.March, 15, 12, 30, 0, 0, time.UTC)

		Convey("It should land on the first of the offset month", func() {
			So(monthStart(ref, 0).Format("2006-01-02"), ShouldEqual, "2026-03-01")
			So(monthStart(ref, -1).Format("2006-01-02"), ShouldEqual, "2026-02-01")
			So(monthStart(ref, -5).Format("2006-01-02"), ShouldEqual, "2025-10-01")
		})
		Convey("It should roll over year boundaries", func() {
			jan := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
			So(monthStart(jan, -1).Format("2006-01-02"), ShouldEqual, "2025-12-01")
		})
	})
}
