package service

import (
	"fmt"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

type ItemService interface {
	List(p model.Principal, skip int) ([]model.Item, error)
	Create(p model.Principal, req *model.Item) (*model.Item, error)
	Get(p model.Principal, id uint) (*model.Item, error)
	Update(p model.Principal, id uint, patch *model.ItemPatch) (*model.Item, error)
	Delete(p model.Principal, id uint) (*model.Item, error)
	DeleteMulti(p model.Principal, ids []uint) ([]model.Item, error)
	RotateHash(p model.Principal, id uint) (*model.Item, error)
}

type itemService struct {
	itemRepo repository.ItemRepository
	wsHub    *ws.Hub
}

func NewItemService(itemRepo repository.ItemRepository, hub *ws.Hub) ItemService {
	return &itemService{itemRepo: itemRepo, wsHub: hub}
}

// List returns every item for superusers and only owned items for everyone
// else. skip is an offset; no page size limit is enforced.
func (s *itemService) List(p model.Principal, skip int) ([]model.Item, error) {
	if p.IsSuperuser {
		return s.itemRepo.FindAll(skip)
	}
	return s.itemRepo.FindByOwner(p.ID, skip)
}

func (s *itemService) Create(p model.Principal, req *model.Item) (*model.Item, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", apperr.ErrValidation, first.FailedField, first.Tag)
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	}

	req.OwnerID = p.ID
	req.Hash = uuid.NewString()
	if err := s.itemRepo.Create(req); err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "item_created",
		Payload: req,
		Message: fmt.Sprintf("item '%s' created", req.SKU),
	})
	return req, nil
}

func (s *itemService) Get(p model.Principal, id uint) (*model.Item, error) {
	item, err := s.itemRepo.Find(id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(p, item.OwnerID); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Update(p model.Principal, id uint, patch *model.ItemPatch) (*model.Item, error) {
	item, err := s.itemRepo.Find(id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(p, item.OwnerID); err != nil {
		return nil, err
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, fmt.Errorf("%w: price must not be negative", apperr.ErrValidation)
	}

	updated, err := s.itemRepo.Update(item, patch)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "item_updated",
		Payload: updated,
	})
	return updated, nil
}

func (s *itemService) Delete(p model.Principal, id uint) (*model.Item, error) {
	item, err := s.itemRepo.Find(id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(p, item.OwnerID); err != nil {
		return nil, err
	}

	removed, err := s.itemRepo.Remove(id)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "item_deleted",
		Payload: removed,
	})
	return removed, nil
}

// DeleteMulti removes a batch of items. All ids must resolve (NotFound
// otherwise) and a non-superuser must own every one of them (Forbidden
// otherwise); both checks complete before any deletion happens.
func (s *itemService) DeleteMulti(p model.Principal, ids []uint) ([]model.Item, error) {
	items, err := s.itemRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	if len(items) != len(ids) {
		return nil, apperr.ErrNotFound
	}
	if !p.IsSuperuser {
		for _, item := range items {
			if item.OwnerID != p.ID {
				return nil, apperr.ErrForbidden
			}
		}
	}

	removed, err := s.itemRepo.RemoveMulti(ids)
	if err != nil {
		return nil, err
	}

	s.wsHub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "items_deleted",
		Message: fmt.Sprintf("%d items deleted", len(removed)),
	})
	return removed, nil
}

// RotateHash assigns a fresh public identifier; the previous hash never
// resolves again.
func (s *itemService) RotateHash(p model.Principal, id uint) (*model.Item, error) {
	item, err := s.itemRepo.Find(id)
	if err != nil {
		return nil, err
	}
	if err := Authorize(p, item.OwnerID); err != nil {
		return nil, err
	}

	newHash := uuid.NewString()
	if err := s.itemRepo.SetHash(id, newHash); err != nil {
		return nil, err
	}
	item.Hash = newHash

	s.wsHub.Publish(ws.Event{
		Type:    "catalog_update",
		Action:  "hash_rotated",
		Message: fmt.Sprintf("public hash rotated for item %d", id),
	})
	return item, nil
}
