package service

import (
	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
)

// Authorize decides whether a principal may act on a resource owned by
// ownerID: superusers may act on anything, everyone else only on their own
// resources. Pure, no I/O. Callers must check existence before calling so
// that "absent" and "present but forbidden" stay distinguishable outcomes.
func Authorize(p model.Principal, ownerID uint) error {
	if p.IsSuperuser || p.ID == ownerID {
		return nil
	}
	return apperr.ErrForbidden
}
