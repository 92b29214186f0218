package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
)

// Signer issues time-limited retrieval URLs for stored binary objects and
// removes them. Each call may fail independently.
type Signer interface {
	Sign(ctx context.Context, bucket, key string) (string, error)
	DeleteObject(ctx context.Context, bucket, key string) error
}

// PublicItem is the unauthenticated lookup payload.
type PublicItem struct {
	Item   model.Item    `json:"item"`
	Assets []model.Asset `json:"assets"`
}

type PublicService interface {
	Resolve(ctx context.Context, hash string) (*PublicItem, error)
	PublicURL(hash string) (string, error)
}

type publicService struct {
	itemRepo  repository.ItemRepository
	assetRepo repository.AssetRepository
	signer    Signer
	bucket    string
	baseURL   string
}

func NewPublicService(itemRepo repository.ItemRepository, assetRepo repository.AssetRepository, signer Signer, bucket, baseURL string) PublicService {
	return &publicService{
		itemRepo:  itemRepo,
		assetRepo: assetRepo,
		signer:    signer,
		bucket:    bucket,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// Resolve looks up an item by its public hash and rewrites binary
// references into time-limited retrieval URLs. Video and doc links are
// signed; image links are returned raw, they are served from another public
// path. A failing signer degrades that one reference to its raw value
// instead of failing the whole lookup.
func (s *publicService) Resolve(ctx context.Context, hash string) (*PublicItem, error) {
	item, err := s.itemRepo.FindByHash(hash)
	if err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.FindByItem(item.ID)
	if err != nil {
		return nil, err
	}

	if item.Logo != "" {
		key := fmt.Sprintf("%d-logo-%s", item.ID, item.Logo)
		if url, err := s.signer.Sign(ctx, s.bucket, key); err != nil {
			log.Printf("sign logo for item %d: %v", item.ID, err)
		} else {
			item.Logo = url
		}
	}

	for i := range assets {
		asset := &assets[i]
		if asset.Type == model.AssetTypeImage {
			continue
		}
		key := fmt.Sprintf("%d-%d-%s", item.ID, asset.ID, asset.Link)
		url, err := s.signer.Sign(ctx, s.bucket, key)
		if err != nil {
			log.Printf("sign asset %d for item %d: %v", asset.ID, item.ID, err)
			continue
		}
		asset.Link = url
	}

	return &PublicItem{Item: *item, Assets: assets}, nil
}

// PublicURL returns the shareable URL for an item's hash, verifying the
// hash still resolves first.
func (s *publicService) PublicURL(hash string) (string, error) {
	if _, err := s.itemRepo.FindByHash(hash); err != nil {
		return "", err
	}
	return s.baseURL + "/" + hash, nil
}
