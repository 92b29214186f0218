package service

import (
	"fmt"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/sheet"
	"go-catalog-api/internal/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Positional column mapping applied to every retained row. Columns are
// addressed by index, not header name.
const (
	colSKU = iota
	colType
	colDescription
	colPrice
	colQuantity
	colQaod
)

type ImportService interface {
	Ingest(filename string, data []byte, ownerID uint) ([]model.Item, error)
}

type importService struct {
	itemRepo repository.ItemRepository
	db       *gorm.DB
	wsHub    *ws.Hub
}

func NewImportService(itemRepo repository.ItemRepository, db *gorm.DB, hub *ws.Hub) ImportService {
	return &importService{itemRepo: itemRepo, db: db, wsHub: hub}
}

// Ingest bulk-creates items from an uploaded spreadsheet. Rows with an
// empty SKU are silently skipped. The whole batch runs in one transaction:
// a coercion or persistence failure on any row rolls back every row, so the
// outcome is always all rows or none. Created items are returned in source
// row order.
func (s *importService) Ingest(filename string, data []byte, ownerID uint) ([]model.Item, error) {
	rows, err := sheet.Decode(filename, data)
	if err != nil {
		return nil, err
	}

	var created []model.Item
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			if sheet.Cell(row, colSKU) == "" {
				continue
			}
			item, err := rowToItem(row, ownerID)
			if err != nil {
				return err
			}
			if err := s.itemRepo.CreateTx(tx, item); err != nil {
				return err
			}
			created = append(created, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "items_imported",
		Message: fmt.Sprintf("%d items imported", len(created)),
	})
	return created, nil
}

func rowToItem(row []string, ownerID uint) (*model.Item, error) {
	price, err := sheet.ParsePrice(sheet.Cell(row, colPrice))
	if err != nil {
		return nil, err
	}
	quantity, err := sheet.ParseQuantity(sheet.Cell(row, colQuantity))
	if err != nil {
		return nil, err
	}
	qaod, err := sheet.ParseDate(sheet.Cell(row, colQaod))
	if err != nil {
		return nil, err
	}

	return &model.Item{
		SKU:         sheet.Cell(row, colSKU),
		Type:        sheet.Cell(row, colType),
		Description: sheet.Cell(row, colDescription),
		Price:       price,
		Quantity:    quantity,
		Qaod:        qaod,
		Hash:        uuid.NewString(),
		OwnerID:     ownerID,
	}, nil
}
