package sheet

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go-catalog-api/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// DateLayout is the canonical textual form for the quantity as-of date.
const DateLayout = "2006-01-02"

// nativeDateLayouts are renderings a workbook or spreadsheet export may use
// for date cells. Matches are reformatted to DateLayout.
var nativeDateLayouts = []string{
	"1/2/06",
	"01/02/06",
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	time.RFC3339,
}

// ParseDate coerces a date cell. A value already in canonical form is used
// verbatim; Excel serial numbers and common native renderings are
// reformatted to YYYY-MM-DD text.
func ParseDate(cell string) (string, error) {
	s := strings.TrimSpace(cell)
	if s == "" {
		return "", apperr.ErrInvalidDate
	}
	if _, err := time.Parse(DateLayout, s); err == nil {
		return s, nil
	}
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err != nil {
			return "", apperr.ErrInvalidDate
		}
		return t.Format(DateLayout), nil
	}
	for _, layout := range nativeDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", apperr.ErrInvalidDate
}

// ParsePrice coerces a price cell: one leading currency symbol is stripped,
// the remainder must parse as a decimal.
func ParsePrice(cell string) (decimal.Decimal, error) {
	s := strings.TrimSpace(cell)
	s = strings.TrimPrefix(s, "$")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.ErrInvalidPrice
	}
	return d, nil
}

// ParseQuantity coerces a quantity cell to an integer. Workbook raw values
// may render whole numbers with a fractional part ("3.0"), which is accepted.
func ParseQuantity(cell string) (int, error) {
	s := strings.TrimSpace(cell)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == math.Trunc(f) {
		return int(f), nil
	}
	return 0, apperr.ErrInvalidQuantity
}
