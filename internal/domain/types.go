package domain

import "fmt"

// ClientID identifies a client account. Opaque beyond its 16-bit range.
type ClientID uint16

// TransactionID identifies a transaction intent. Globally unique for
// deposits and withdrawals; disputes, resolves and chargebacks reuse the
// id of the transaction they reference.
type TransactionID uint32

// TransactionType is the wire name of a transaction.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeDispute    TransactionType = "dispute"
	TypeResolve    TransactionType = "resolve"
	TypeChargeback TransactionType = "chargeback"
)

// ParseTransactionType validates a raw type name from an input row.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TypeDeposit, TypeWithdrawal, TypeDispute, TypeResolve, TypeChargeback:
		return t, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// IsStandard reports whether the type carries its own amount and settles
// immediately, as opposed to referencing a prior transaction.
func (t TransactionType) IsStandard() bool {
	return t == TypeDeposit || t == TypeWithdrawal
}

// TransactionStatus is the lifecycle state of a recorded standard
// transaction. Pending exists only before the engine accepts a record.
type TransactionStatus uint8

const (
	StatusPending TransactionStatus = iota
	StatusSettled
	StatusDisputed
	StatusResolved
	StatusChargedBack
)

func (s TransactionStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusSettled:
		return "settled"
	case StatusDisputed:
		return "disputed"
	case StatusResolved:
		return "resolved"
	case StatusChargedBack:
		return "charged_back"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}
