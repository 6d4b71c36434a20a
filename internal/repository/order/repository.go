package order

import (
	"context"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

type Repository interface {
	// Create persists the order header and all its items atomically: either
	// everything is committed or nothing is.
	Create(ctx context.Context, o domain.Order, items []domain.OrderItem) (*domain.Order, error)
}
