package auth_service

import (
	"testing"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTokenRoundTrip(t *testing.T) {
	Convey("Given a signed token", t, func() {
		token, err := CreateToken(jwt.MapClaims{"sub": "42", "role": "reseller"}, "test-secret", 24)
		So(err, ShouldBeNil)

		Convey("Parsing with the same secret should return the claims", func() {
			claims, err := ParseToken(token, "test-secret")
			So(err, ShouldBeNil)
			assert.Equal(t, claims["sub"], "42")
			assert.Equal(t, claims["role"], "reseller")
			So(claims["exp"], ShouldNotBeNil)
		})

		Convey("Parsing with another secret should fail", func() {
			_, err := ParseToken(token, "other-secret")
			So(err, ShouldNotBeNil)
		})
	})
}
