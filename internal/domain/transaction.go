package domain

// Transaction is a fully-typed transaction record as fed to the ledger
// engine. Amount is present for deposits and withdrawals and nil for the
// referential types; that shape is established once during row
// normalization, not re-checked at every call site.
type Transaction struct {
	Type   TransactionType
	Client ClientID
	ID     TransactionID
	Amount *Amount
	Status TransactionStatus
}
