package ws

import (
	"testing"
)

func TestDecodeMessage_OrderUpdate(t *testing.T) {
	kind, order, err := decodeMessage([]byte(`{"type": "order_update", "order": {"id": 7, "code": "AB12CD", "status": "LOCKED"}}`))
	if err != nil {
		t.Fatalf("decodeMessage: %v", err)
	}
	if kind != messageOrderUpdate {
		t.Fatalf("unexpected kind %q", kind)
	}
	if order == nil || order.ID != 7 || order.Code != "AB12CD" {
		t.Fatalf("unexpected order %+v", order)
	}
}

func TestDecodeMessage_Pong(t *testing.T) {
	kind, order, err := decodeMessage([]byte(`{"type": "pong"}`))
	if err != nil || kind != messagePong || order != nil {
		t.Fatalf("expected bare pong, got kind=%q order=%v err=%v", kind, order, err)
	}
}

func TestDecodeMessage_UnknownTypeNotAnError(t *testing.T) {
	kind, _, err := decodeMessage([]byte(`{"type": "participant_joined", "user": 3}`))
	if err != nil || kind != messageUnknown {
		t.Fatalf("unknown types must be skipped silently, got kind=%q err=%v", kind, err)
	}
}

func TestDecodeMessage_MalformedJSON(t *testing.T) {
	if _, _, err := decodeMessage([]byte(`{`)); err == nil {
		t.Fatalf("malformed frame must be an error")
	}
}

func TestDecodeMessage_OrderUpdateWithoutOrder(t *testing.T) {
	if _, _, err := decodeMessage([]byte(`{"type": "order_update"}`)); err == nil {
		t.Fatalf("order_update without payload must be an error")
	}
}

func TestDecodeMessage_BrokenOrderPayload(t *testing.T) {
	if _, _, err := decodeMessage([]byte(`{"type": "order_update", "order": {"id": "oops"}}`)); err == nil {
		t.Fatalf("broken snapshot must be an error")
	}
}
