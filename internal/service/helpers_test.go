package service

import (
	"context"
	"errors"
	"testing"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const testBucket = "catalog-test"

// fakeSigner records the keys it was asked to sign or delete and can be
// switched into a failing mode.
type fakeSigner struct {
	fail    bool
	signed  []string
	deleted []string
}

func (f *fakeSigner) Sign(_ context.Context, _, key string) (string, error) {
	if f.fail {
		return "", errors.New("signer unavailable")
	}
	f.signed = append(f.signed, key)
	return "https://signed.example/" + key, nil
}

func (f *fakeSigner) DeleteObject(_ context.Context, _, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}

func newHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

func seedItem(t *testing.T, repo repository.ItemRepository, ownerID uint, sku string) *model.Item {
	t.Helper()
	item := &model.Item{
		SKU:      sku,
		Type:     "widget",
		Price:    decimal.NewFromInt(10),
		Quantity: 1,
		Qaod:     "2024-01-01",
		Hash:     uuid.NewString(),
		OwnerID:  ownerID,
	}
	if err := repo.Create(item); err != nil {
		t.Fatalf("seed item %q: %v", sku, err)
	}
	return item
}

func seedAsset(t *testing.T, repo repository.AssetRepository, itemID uint, assetType, link string) *model.Asset {
	t.Helper()
	asset := &model.Asset{
		Type:   assetType,
		Title:  "attachment",
		Link:   link,
		ItemID: itemID,
	}
	if err := repo.Create(asset); err != nil {
		t.Fatalf("seed asset %q: %v", link, err)
	}
	return asset
}
