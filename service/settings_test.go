package service

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
	. "github.com/smartystreets/goconvey/convey"
)

func TestGetSettingFallback(t *testing.T) {
	Convey("Given the settings store", t, func() {
		Convey("A stored value should win over the fallback", func() {
			srv, mock := setupService()
			mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
				WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("country", "IN"))

			assert.Equal(t, srv.GetSetting("country", "US"), "IN")
			So(mock.ExpectationsWereMet(), ShouldBeNil)
		})
		Convey("A missing row should fall back", func() {
			srv, mock := setupService()
			mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
				WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

			assert.Equal(t, srv.GetSetting("country", "US"), "US")
		})
		Convey("A store failure should fall back instead of erroring", func() {
			srv, mock := setupService()
			mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
				WillReturnError(errors.New("connection reset"))

			assert.Equal(t, srv.GetSetting("country", "US"), "US")
		})
	})
}

func TestDefaultCommissionRate(t *testing.T) {
	Convey("Given the default rate setting", t, func() {
		Convey("A parsable stored rate should be used", func() {
			srv, mock := setupService()
			mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
				WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("default_commission_rate", "12.5"))

			assert.Equal(t, srv.DefaultCommissionRate(), 12.5)
		})
		Convey("Garbage or out of range values should fall back to the config", func() {
			srv, mock := setupService()
			mock.ExpectQuery(`SELECT (.+) FROM "system_settings"`).
				WillReturnRows(sqlmock.NewRows([]string{"key", "value"}).AddRow("default_commission_rate", "150"))

			assert.Equal(t, srv.DefaultCommissionRate(), float64(10))
		})
	})
}
