package amqp

import "testing"

func TestTransactionExportMessageRoundTrip(t *testing.T) {
	msg := NewTransactionExportMessage("8f14e45f")
	if msg.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := TransactionExportMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != "8f14e45f" {
		t.Fatalf("expected id to survive round trip, got %q", got.ID)
	}
}

func TestTransactionExportMessageFromJSONRejectsGarbage(t *testing.T) {
	if _, err := TransactionExportMessageFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
