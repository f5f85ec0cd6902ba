package amqp

import (
	"encoding/json"
	"time"
)

// TransactionExportMessage is a lightweight pointer to a stored transaction.
// Only the ID travels on the queue; the worker fetches the full row from the
// database before exporting.
type TransactionExportMessage struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

func NewTransactionExportMessage(id string) *TransactionExportMessage {
	return &TransactionExportMessage{
		ID:        id,
		Timestamp: time.Now(),
	}
}

func (m *TransactionExportMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionExportMessageFromJSON(data []byte) (*TransactionExportMessage, error) {
	var msg TransactionExportMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
