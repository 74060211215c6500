package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"retailpos/internal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestParseSaleDate(t *testing.T) {
	got, err := parseSaleDate("2026-08-29T14:30:00Z")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC), got)

	got, err = parseSaleDate("2026-08-29")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), got)

	_, err = parseSaleDate("29/08/2026")
	assert.Error(t, err)
}

func newTestContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest("GET", target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestDateRangeParams_PlainEndDateCoversWholeDay(t *testing.T) {
	c := newTestContext("/sales?startDate=2026-08-01&endDate=2026-08-29")

	start, end, err := dateRangeParams(c)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), *start)
	// end of day, not midnight
	assert.Equal(t, time.Date(2026, 8, 29, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), *end)
}

func TestDateRangeParams_TimestampEndDateUntouched(t *testing.T) {
	c := newTestContext("/sales?endDate=2026-08-29T12:00:00Z")

	start, end, err := dateRangeParams(c)
	assert.NoError(t, err)
	assert.Nil(t, start)
	assert.Equal(t, time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC), *end)
}

func TestDateRangeParams_Empty(t *testing.T) {
	c := newTestContext("/sales")

	start, end, err := dateRangeParams(c)
	assert.NoError(t, err)
	assert.Nil(t, start)
	assert.Nil(t, end)
}

func TestTaxAmount(t *testing.T) {
	h := NewSaleHandler(nil, config.Config{TaxRate: 0.1})
	req := CreateSaleRequest{Items: []SaleItemRequest{{ProductID: 1, Quantity: 2, UnitPrice: 50}}}

	// omitted: configured rate applied to the item subtotal
	assert.Equal(t, 10.0, h.taxAmount(req))

	// explicit value wins, including zero
	explicit := 3.0
	req.TaxAmount = &explicit
	assert.Equal(t, 3.0, h.taxAmount(req))

	zero := 0.0
	req.TaxAmount = &zero
	assert.Equal(t, 0.0, h.taxAmount(req))

	// no rate configured
	req.TaxAmount = nil
	h = NewSaleHandler(nil, config.Config{})
	assert.Equal(t, 0.0, h.taxAmount(req))
}

func TestDateRangeParams_Invalid(t *testing.T) {
	c := newTestContext("/sales?startDate=bogus")

	_, _, err := dateRangeParams(c)
	assert.Error(t, err)
}
