package ports

import (
	"context"

	"grouporder/internal/domain"
)

// UpdateHandler вызывается по одному разу на каждый декодированный снапшот.
type UpdateHandler func(ctx context.Context, order *domain.Order)

// LiveChannel — live-канал заказа.
// Транспортные сбои не возвращаются как ошибки: канал сам переподключается
// в пределах бюджета попыток, наружу виден только флаг Connected.
type LiveChannel interface {
	// Connect — открывает канал для заказа. Повторный вызов с тем же id —
	// no-op; с другим id — прежний канал закрывается штатно.
	Connect(ctx context.Context, orderID int64, onUpdate UpdateHandler)

	// Disconnect — штатное закрытие (код 1000, без переподключения).
	// Безопасен без открытого канала.
	Disconnect()

	// Connected — открыт ли канал сейчас.
	Connected() bool
}
