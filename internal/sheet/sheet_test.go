package sheet

import (
	"errors"
	"testing"

	"go-catalog-api/internal/apperr"

	"github.com/xuri/excelize/v2"
)

func TestDecodeCSV(t *testing.T) {
	data := []byte("SKU,Type,Description,Price,Quantity,QAOD\n" +
		"A,widget,first,$10.50,3,2024-01-01\n" +
		"B,widget,second,20,1,2024-02-02\n")

	rows, err := Decode("items.csv", data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after header, got %d", len(rows))
	}
	if Cell(rows[0], 0) != "A" || Cell(rows[1], 0) != "B" {
		t.Errorf("rows out of order: %v", rows)
	}
	if Cell(rows[0], 3) != "$10.50" {
		t.Errorf("expected raw price cell, got %q", Cell(rows[0], 3))
	}
}

func TestDecodeWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheetName := f.GetSheetName(0)
	f.SetSheetRow(sheetName, "A1", &[]interface{}{"SKU", "Type", "Description", "Price", "Quantity", "QAOD"})
	f.SetSheetRow(sheetName, "A2", &[]interface{}{"A", "widget", "first", "$10.50", 3, "2024-01-01"})
	f.SetSheetRow(sheetName, "A3", &[]interface{}{"B", "widget", "second", "20", 1, 45324})

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("build workbook: %v", err)
	}

	rows, err := Decode("items.xlsx", buf.Bytes())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows after header, got %d", len(rows))
	}
	if Cell(rows[0], 0) != "A" || Cell(rows[1], 0) != "B" {
		t.Errorf("rows out of order: %v", rows)
	}

	// Raw cell values: the serial date survives for the date coercion.
	date, err := ParseDate(Cell(rows[1], 5))
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if date != "2024-02-02" {
		t.Errorf("expected 2024-02-02, got %q", date)
	}
}

func TestDecodeUnsupportedExtension(t *testing.T) {
	for _, name := range []string{"items.pdf", "items.txt", "items"} {
		if _, err := Decode(name, []byte("x")); !errors.Is(err, apperr.ErrUnsupportedFormat) {
			t.Errorf("Decode(%q) error = %v, want ErrUnsupportedFormat", name, err)
		}
	}
}

func TestCellShortRow(t *testing.T) {
	row := []string{"A", "widget"}
	if Cell(row, 5) != "" {
		t.Errorf("expected empty cell beyond row length")
	}
	if Cell(row, 1) != "widget" {
		t.Errorf("unexpected cell value %q", Cell(row, 1))
	}
}
