package action

import (
	"sync"

	"github.com/google/uuid"

	"bakery-management/internal/catalog"
	"bakery-management/pkg/log"
	"bakery-management/pkg/pricing"
)

// Handler runs the window's button actions one at a time.
type Handler struct {
	mu     sync.Mutex
	l      log.Logger
	uc     catalog.UseCase
	view   View
	policy pricing.Policy
	newID  func() string
}

// New creates a Handler. A nil policy means flat pricing.
func New(l log.Logger, uc catalog.UseCase, v View, policy pricing.Policy) *Handler {
	if policy == nil {
		policy = pricing.Flat
	}
	return &Handler{
		l:      l,
		uc:     uc,
		view:   v,
		policy: policy,
		newID:  func() string { return uuid.NewString() },
	}
}
