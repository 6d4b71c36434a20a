package contact

import (
	"context"

	"github.com/SahakyanGor98/iqos/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, m domain.ContactMessage) (*domain.ContactMessage, error)
}
