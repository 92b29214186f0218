package service

import (
	"errors"
	"testing"

	"go-catalog-api/internal/apperr"
	"go-catalog-api/internal/model"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name      string
		principal model.Principal
		ownerID   uint
		allow     bool
	}{
		{"owner on own resource", model.Principal{ID: 7}, 7, true},
		{"stranger on foreign resource", model.Principal{ID: 7}, 8, false},
		{"superuser on foreign resource", model.Principal{ID: 1, IsSuperuser: true}, 8, true},
		{"superuser on own resource", model.Principal{ID: 8, IsSuperuser: true}, 8, true},
		{"zero principal", model.Principal{}, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.ownerID)
			if tt.allow && err != nil {
				t.Errorf("expected allow, got %v", err)
			}
			if !tt.allow && !errors.Is(err, apperr.ErrForbidden) {
				t.Errorf("expected ErrForbidden, got %v", err)
			}
		})
	}
}
