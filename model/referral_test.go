package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestReferralTransitions(t *testing.T) {
	Convey("Given the pipeline transition table", t, func() {
		Convey("Every stage should reach every stage", func() {
			for _, from := range ReferralStatuses {
				for _, to := range ReferralStatuses {
					So(from.CanTransition(to), ShouldBeTrue)
				}
				So(from.AllowedTransitions(), ShouldHaveLength, len(ReferralStatuses))
			}
		})
		Convey("Unknown stages should have no edges", func() {
			So(ReferralStatus("archived").CanTransition(ReferralStatusWon), ShouldBeFalse)
			So(ReferralStatusWon.CanTransition(ReferralStatus("archived")), ShouldBeFalse)
		})
	})
}

func TestReferralStatusIsValid(t *testing.T) {
	Convey("Given the pipeline stages", t, func() {
		for _, status := range ReferralStatuses {
			So(status.IsValid(), ShouldBeTrue)
		}
		So(ReferralStatus("").IsValid(), ShouldBeFalse)
		So(ReferralStatus("WON").IsValid(), ShouldBeFalse)
	})
}

func TestProductInterestIsValid(t *testing.T) {
	Convey("Given the product lines", t, func() {
		So(ProductInterestStarter.IsValid(), ShouldBeTrue)
		So(ProductInterestCustom.IsValid(), ShouldBeTrue)
		So(ProductInterest("basic").IsValid(), ShouldBeFalse)
	})
}
