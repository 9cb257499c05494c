package models

// Transaction event types published to Kafka.
const (
	EventTransactionCreated  = "transaction.created"
	EventTransactionApproved = "transaction.approved"
	EventTransactionRejected = "transaction.rejected"
)

// TransactionEvent is the JSON payload published to Kafka whenever a
// transaction is created or changes status.
type TransactionEvent struct {
	EventType     string `json:"event_type"`
	TransactionID string `json:"transaction_id"`
	AccountID     string `json:"account_id"`
	Type          string `json:"type"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
	Timestamp     int64  `json:"timestamp"` // Unix seconds when the event was emitted
}
