package http

import (
	"library-catalog/internal/item"
	"library-catalog/pkg/log"
)

type handler struct {
	l  log.Logger
	uc item.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
