package service

import (
	"context"
	"fmt"
	"testing"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetOrderEqualsOwnID(t *testing.T) {
	db := database.NewTestDB(t)
	itemRepo := repository.NewItemRepo(db)
	assetRepo := repository.NewAssetRepo(db)
	svc := NewAssetService(assetRepo, itemRepo, &fakeSigner{}, testBucket)

	item := seedItem(t, itemRepo, 1, "A-1")
	owner := model.Principal{ID: 1}

	var prev float64
	for i := 0; i < 3; i++ {
		asset, err := svc.Create(owner, item.ID, &model.Asset{
			Type:  model.AssetTypeImage,
			Title: fmt.Sprintf("photo %d", i),
			Link:  fmt.Sprintf("photo-%d.png", i),
		})
		require.NoError(t, err)
		assert.Equal(t, float64(asset.ID), asset.Order)
		assert.Greater(t, asset.Order, prev)
		prev = asset.Order

		stored, err := assetRepo.Find(asset.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(asset.ID), stored.Order)
	}
}

func TestAssetCreateIgnoresCallerOrder(t *testing.T) {
	db := database.NewTestDB(t)
	itemRepo := repository.NewItemRepo(db)
	assetRepo := repository.NewAssetRepo(db)
	svc := NewAssetService(assetRepo, itemRepo, &fakeSigner{}, testBucket)

	item := seedItem(t, itemRepo, 1, "A-1")

	asset, err := svc.Create(model.Principal{ID: 1}, item.ID, &model.Asset{
		Type:  model.AssetTypeDoc,
		Title: "manual",
		Link:  "manual.pdf",
		Order: 999,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(asset.ID), asset.Order)
}

func TestAssetGuardResolvesThroughParentItem(t *testing.T) {
	db := database.NewTestDB(t)
	itemRepo := repository.NewItemRepo(db)
	assetRepo := repository.NewAssetRepo(db)
	svc := NewAssetService(assetRepo, itemRepo, &fakeSigner{}, testBucket)

	item := seedItem(t, itemRepo, 1, "A-1")
	asset := seedAsset(t, assetRepo, item.ID, model.AssetTypeVideo, "clip.mp4")

	_, err := svc.Get(model.Principal{ID: 2}, asset.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Get(model.Principal{ID: 2}, asset.ID+1000)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	got, err := svc.Get(model.Principal{ID: 1}, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", got.Link)

	_, err = svc.Create(model.Principal{ID: 2}, item.ID, &model.Asset{
		Type: model.AssetTypeImage, Title: "x", Link: "x.png",
	})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestAssetDeleteRemovesStoredObject(t *testing.T) {
	db := database.NewTestDB(t)
	itemRepo := repository.NewItemRepo(db)
	assetRepo := repository.NewAssetRepo(db)
	signer := &fakeSigner{}
	svc := NewAssetService(assetRepo, itemRepo, signer, testBucket)

	item := seedItem(t, itemRepo, 1, "A-1")
	asset := seedAsset(t, assetRepo, item.ID, model.AssetTypeDoc, "manual.pdf")

	removed, err := svc.Delete(context.Background(), model.Principal{ID: 1}, asset.ID)
	require.NoError(t, err)
	assert.Equal(t, asset.ID, removed.ID)

	_, err = assetRepo.Find(asset.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	wantKey := fmt.Sprintf("%d-%d-manual.pdf", item.ID, asset.ID)
	assert.Equal(t, []string{wantKey}, signer.deleted)
}
