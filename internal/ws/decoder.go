package ws

import (
	"bytes"
	"encoding/json"
	"fmt"

	"grouporder/internal/domain"
)

// Типы сообщений live-канала.
const (
	messageOrderUpdate = "order_update"
	messagePong        = "pong"
	messageUnknown     = "unknown"
)

// envelope — конверт сообщения канала: тип и, для order_update,
// вложенный снапшот заказа.
type envelope struct {
	Type  string          `json:"type"`
	Order json.RawMessage `json:"order"`
}

// pingMessage — исходящий heartbeat; сервер отвечает pong.
type pingMessage struct {
	Type string `json:"type"`
}

// decodeMessage — разбирает входящий кадр.
// Возвращает тип сообщения и, для order_update, декодированный заказ.
// Неизвестные типы не ошибка: сервер может добавлять новые сообщения,
// клиент их просто пропускает.
func decodeMessage(data []byte) (string, *domain.Order, error) {
	var env envelope
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&env); err != nil {
		return "", nil, fmt.Errorf("разбор конверта: %w", err)
	}

	switch env.Type {
	case messageOrderUpdate:
		if len(env.Order) == 0 {
			return messageOrderUpdate, nil, fmt.Errorf("order_update без поля order")
		}
		var order domain.Order
		if err := json.Unmarshal(env.Order, &order); err != nil {
			return messageOrderUpdate, nil, fmt.Errorf("разбор снапшота: %w", err)
		}
		return messageOrderUpdate, &order, nil

	case messagePong:
		return messagePong, nil, nil

	default:
		return messageUnknown, nil, nil
	}
}
