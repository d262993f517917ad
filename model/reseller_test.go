package model

import (
	"testing"

	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestResellerTierNext(t *testing.T) {
	Convey("Given the partner tier ladder", t, func() {
		Convey("Each tier should point at its successor", func() {
			next, ok := ResellerTierBronze.Next()
			So(ok, ShouldBeTrue)
			assert.Equal(t, next, ResellerTierSilver)

			next, ok = ResellerTierGold.Next()
			So(ok, ShouldBeTrue)
			assert.Equal(t, next, ResellerTierPlatinum)
		})
		Convey("The top tier should have no successor", func() {
			_, ok := ResellerTierPlatinum.Next()
			So(ok, ShouldBeFalse)
		})
	})
}

func TestNewReseller(t *testing.T) {
	Convey("Given a freshly registered partner", t, func() {
		reseller := NewReseller(42, "Tech Partners Inc", "+15550101", 10)

		Convey("It should start on the lowest tier, active, with zero earnings", func() {
			assert.Equal(t, reseller.Tier, ResellerTierBronze)
			assert.Equal(t, reseller.Status, ResellerStatusActive)
			So(reseller.TotalEarnings.V.Sign(), ShouldEqual, 0)
		})
	})
}

func TestUserPassword(t *testing.T) {
	Convey("Given a new user with a plain password", t, func() {
		user := NewUser("John Smith", "john@techpartners.com", "reseller123", UserRoleReseller)
		So(user.EncodePass(), ShouldBeNil)

		Convey("The stored hash should validate the original password only", func() {
			So(user.Password, ShouldNotEqual, "reseller123")
			So(user.ValidatePass("reseller123"), ShouldBeTrue)
			So(user.ValidatePass("admin123"), ShouldBeFalse)
		})
	})
}
