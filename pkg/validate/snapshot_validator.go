package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"grouporder/internal/domain"
	"grouporder/internal/ports"
)

// Проверка, что SnapshotValidator удовлетворяет порту.
var _ ports.SnapshotValidator = (*SnapshotValidator)(nil)

// ErrInvalidSnapshot — базовая (sentinel error) ошибка валидации снапшота.
var ErrInvalidSnapshot = errors.New("order snapshot validation failed")

// SnapshotValidator — проверяет снапшоты заказа перед записью в стор.
// Снапшот приходит из push-канала или из REST-ответа и должен быть
// самодостаточным: хотя бы id и code обязаны присутствовать.
type SnapshotValidator struct{}

func NewSnapshotValidator() *SnapshotValidator { return &SnapshotValidator{} }

// Validate — проверяет минимальную целостность снапшота.
func (v *SnapshotValidator) Validate(_ context.Context, order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: снапшот не может быть nil", ErrInvalidSnapshot)
	}
	if order.ID <= 0 {
		return fmt.Errorf("%w: id обязателен", ErrInvalidSnapshot)
	}
	if strings.TrimSpace(order.Code) == "" {
		return fmt.Errorf("%w: code обязателен", ErrInvalidSnapshot)
	}
	for i := range order.Items {
		if order.Items[i].ID <= 0 {
			return fmt.Errorf("%w: items[%d].id обязателен", ErrInvalidSnapshot, i)
		}
		if order.Items[i].Quantity <= 0 {
			return fmt.Errorf("%w: items[%d].quantity должен быть положительным", ErrInvalidSnapshot, i)
		}
	}
	return nil
}
