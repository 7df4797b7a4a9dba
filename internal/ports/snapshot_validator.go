package ports

import (
	"context"

	"grouporder/internal/domain"
)

// SnapshotValidator — проверка целостности снапшота перед записью в стор.
type SnapshotValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
