package repository

import (
	"errors"
	"testing"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
	"go-catalog-api/pkg/database"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newItem(ownerID uint, sku string) *model.Item {
	return &model.Item{
		SKU:      sku,
		Type:     "widget",
		Price:    decimal.NewFromFloat(10.5),
		Quantity: 3,
		Qaod:     "2024-01-01",
		Hash:     uuid.NewString(),
		OwnerID:  ownerID,
	}
}

func TestItemCreateAndFind(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewItemRepo(db)

	item := newItem(1, "A-1")
	if err := repo.Create(item); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == 0 {
		t.Fatal("expected server-assigned id")
	}

	got, err := repo.Find(item.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if got.SKU != "A-1" || !got.Price.Equal(decimal.NewFromFloat(10.5)) {
		t.Errorf("unexpected stored item: %+v", got)
	}

	if _, err := repo.Find(item.ID + 1000); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestItemFindByIDsReturnsOnlyExisting(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewItemRepo(db)

	a := newItem(1, "A-1")
	b := newItem(1, "A-2")
	repo.Create(a)
	repo.Create(b)

	items, err := repo.FindByIDs([]uint{a.ID, b.ID, b.ID + 1000})
	if err != nil {
		t.Fatalf("FindByIDs: %v", err)
	}
	// Callers detect the missing id by comparing counts.
	if len(items) != 2 {
		t.Errorf("expected 2 existing matches, got %d", len(items))
	}
}

func TestItemUpdateTouchesOnlyPatchedFields(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewItemRepo(db)

	item := newItem(1, "A-1")
	repo.Create(item)

	qty := 9
	price := decimal.NewFromInt(42)
	updated, err := repo.Update(item, &model.ItemPatch{Quantity: &qty, Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.Quantity != 9 || !updated.Price.Equal(decimal.NewFromInt(42)) {
		t.Errorf("patched fields not applied: %+v", updated)
	}
	if updated.SKU != "A-1" || updated.Qaod != "2024-01-01" || updated.Hash != item.Hash {
		t.Errorf("unpatched fields changed: %+v", updated)
	}
}

func TestItemUpdateEmptyPatchIsNoop(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewItemRepo(db)

	item := newItem(1, "A-1")
	repo.Create(item)

	updated, err := repo.Update(item, &model.ItemPatch{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.SKU != "A-1" || updated.Quantity != 3 {
		t.Errorf("no-op patch changed the record: %+v", updated)
	}
}

func TestItemRemoveReturnsRemovedAndDeletesAssets(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewItemRepo(db)
	assets := NewAssetRepo(db)

	item := newItem(1, "A-1")
	repo.Create(item)
	asset := &model.Asset{Type: model.AssetTypeImage, Title: "photo", Link: "a.png", ItemID: item.ID}
	assets.Create(asset)

	removed, err := repo.Remove(item.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed.ID != item.ID {
		t.Errorf("expected removed record back, got %+v", removed)
	}

	if _, err := repo.Find(item.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected item gone, got %v", err)
	}
	if _, err := assets.Find(asset.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("expected cascade to assets, got %v", err)
	}
}

func TestItemRemoveMulti(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewItemRepo(db)

	a := newItem(1, "A-1")
	b := newItem(2, "B-1")
	repo.Create(a)
	repo.Create(b)

	removed, err := repo.RemoveMulti([]uint{a.ID, b.ID})
	if err != nil {
		t.Fatalf("RemoveMulti: %v", err)
	}
	if len(removed) != 2 {
		t.Errorf("expected 2 removed, got %d", len(removed))
	}

	all, _ := repo.FindAll(0)
	if len(all) != 0 {
		t.Errorf("expected empty table, got %d items", len(all))
	}
}

func TestItemFindByOwnerAndOffset(t *testing.T) {
	db := database.NewTestDB(t)
	repo := NewItemRepo(db)

	repo.Create(newItem(1, "A-1"))
	repo.Create(newItem(1, "A-2"))
	repo.Create(newItem(2, "B-1"))

	mine, err := repo.FindByOwner(1, 0)
	if err != nil {
		t.Fatalf("FindByOwner: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("expected 2 owned items, got %d", len(mine))
	}

	rest, _ := repo.FindByOwner(1, 1)
	if len(rest) != 1 || rest[0].SKU != "A-2" {
		t.Errorf("offset misapplied: %+v", rest)
	}
}

func TestAssetTwoPhaseOrderWrite(t *testing.T) {
	db := database.NewTestDB(t)
	itemRepo := NewItemRepo(db)
	assetRepo := NewAssetRepo(db)

	item := newItem(1, "A-1")
	itemRepo.Create(item)

	asset := &model.Asset{Type: model.AssetTypeVideo, Title: "clip", Link: "clip.mp4", ItemID: item.ID}
	if err := assetRepo.Create(asset); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Between the two writes the order is still unset.
	if asset.Order != 0 {
		t.Errorf("expected zero order before assignment, got %v", asset.Order)
	}

	if err := assetRepo.SetOrder(asset.ID, float64(asset.ID)); err != nil {
		t.Fatalf("SetOrder: %v", err)
	}
	stored, err := assetRepo.Find(asset.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if stored.Order != float64(asset.ID) {
		t.Errorf("expected order %d, got %v", asset.ID, stored.Order)
	}
}

func TestAssetFindByItemOrdersByDisplayOrder(t *testing.T) {
	db := database.NewTestDB(t)
	itemRepo := NewItemRepo(db)
	assetRepo := NewAssetRepo(db)

	item := newItem(1, "A-1")
	itemRepo.Create(item)

	for _, link := range []string{"one.png", "two.png", "three.png"} {
		asset := &model.Asset{Type: model.AssetTypeImage, Title: link, Link: link, ItemID: item.ID}
		assetRepo.Create(asset)
		assetRepo.SetOrder(asset.ID, float64(asset.ID))
	}

	assets, err := assetRepo.FindByItem(item.ID)
	if err != nil {
		t.Fatalf("FindByItem: %v", err)
	}
	if len(assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(assets))
	}
	for i := 1; i < len(assets); i++ {
		if assets[i].Order <= assets[i-1].Order {
			t.Errorf("assets not in display order: %v then %v", assets[i-1].Order, assets[i].Order)
		}
	}
}
