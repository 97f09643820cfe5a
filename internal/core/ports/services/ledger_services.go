package services

import (
	"context"

	"github.com/ncabrera/purchasing_backend/internal/core/domain"
)

// LedgerClient is the external accounting-entries collaborator. Each call
// creates exactly one entry; there is no batch operation on the remote side.
type LedgerClient interface {
	CreateEntry(ctx context.Context, entry domain.LedgerEntry) error
}
