// Package engine implements the in-memory payments ledger: per-client
// balances, per-transaction history, and the state transitions for the
// deposit/withdrawal/dispute/resolve/chargeback lifecycle.
package engine

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/punchamoorthee/paymentsengine/internal/domain"
)

// Processing failures. All are expected outcomes of bad input or
// business-rule violation; none aborts the overall run.
var (
	ErrMissingAmount            = errors.New("transaction amount is required")
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrBalanceOverflow          = errors.New("balance overflow")
	ErrAccountLocked            = errors.New("account is locked")
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidDispute           = errors.New("invalid dispute")
)

// MaxBalance is the largest representable balance. shopspring decimals are
// arbitrary precision, so the engine enforces the 96-bit mantissa limit of
// conventional fixed-point money types; additions past it are rejected
// rather than saturated.
var MaxBalance = decimal.RequireFromString("79228162514264337593543950335")

// ClientAccount holds one client's balances. Funds under dispute sit in
// Held; Locked is set by a chargeback and never cleared.
type ClientAccount struct {
	Available decimal.Decimal
	Held      decimal.Decimal
	Locked    bool
}

// Total is the sum of available and held funds, saturating at MaxBalance
// for reporting.
func (a ClientAccount) Total() decimal.Decimal {
	total := a.Available.Add(a.Held)
	if total.GreaterThan(MaxBalance) {
		return MaxBalance
	}
	return total
}

// Engine owns the client account map and the transaction history map.
// It is driven by a single sequential stream of transactions; callers with
// multiple producers must serialize Process themselves.
type Engine struct {
	clients map[domain.ClientID]*ClientAccount
	history map[domain.TransactionID]*domain.Transaction
}

func New() *Engine {
	return &Engine{
		clients: make(map[domain.ClientID]*ClientAccount),
		history: make(map[domain.TransactionID]*domain.Transaction),
	}
}

// Process applies one transaction to the ledger. Each transition either
// fully applies or fully aborts; balance math is validated before being
// committed. A deposit or withdrawal whose id is already in the history is
// an idempotent replay and succeeds as a no-op.
func (e *Engine) Process(tx domain.Transaction) error {
	account := e.account(tx.Client)

	if account.Locked {
		return ErrAccountLocked
	}

	if tx.Type.IsStandard() {
		if _, seen := e.history[tx.ID]; seen {
			// Already processed, skip the replay.
			return nil
		}
	}

	switch tx.Type {
	case domain.TypeDeposit:
		return e.deposit(account, tx)
	case domain.TypeWithdrawal:
		return e.withdraw(account, tx)
	case domain.TypeDispute:
		return e.dispute(account, tx)
	case domain.TypeResolve:
		return e.resolve(account, tx)
	case domain.TypeChargeback:
		return e.chargeback(account, tx)
	default:
		return fmt.Errorf("unknown transaction type %q", tx.Type)
	}
}

// Accounts returns a snapshot of every account the engine has ever created,
// keyed by client id. The copies confer no mutation capability.
func (e *Engine) Accounts() map[domain.ClientID]ClientAccount {
	accounts := make(map[domain.ClientID]ClientAccount, len(e.clients))
	for id, account := range e.clients {
		accounts[id] = *account
	}
	return accounts
}

// account looks up or lazily creates the client's account with zero,
// unlocked defaults.
func (e *Engine) account(id domain.ClientID) *ClientAccount {
	account, ok := e.clients[id]
	if !ok {
		account = &ClientAccount{Available: decimal.Zero, Held: decimal.Zero}
		e.clients[id] = account
	}
	return account
}

func (e *Engine) deposit(account *ClientAccount, tx domain.Transaction) error {
	if tx.Amount == nil {
		return ErrMissingAmount
	}

	available := account.Available.Add(tx.Amount.Value())
	if available.GreaterThan(MaxBalance) {
		return ErrBalanceOverflow
	}

	account.Available = available
	tx.Status = domain.StatusSettled
	e.history[tx.ID] = &tx

	return nil
}

func (e *Engine) withdraw(account *ClientAccount, tx domain.Transaction) error {
	if tx.Amount == nil {
		return ErrMissingAmount
	}

	if account.Available.LessThan(tx.Amount.Value()) {
		return ErrInsufficientFunds
	}

	account.Available = account.Available.Sub(tx.Amount.Value())
	tx.Status = domain.StatusSettled
	e.history[tx.ID] = &tx

	return nil
}

func (e *Engine) dispute(account *ClientAccount, tx domain.Transaction) error {
	original, err := e.lookup(tx)
	if err != nil {
		return err
	}

	// Only deposits can be disputed.
	if original.Type != domain.TypeDeposit {
		return ErrInvalidDispute
	}

	// A dispute may target a settled transaction or one whose earlier
	// dispute has since been resolved.
	if original.Status != domain.StatusSettled && original.Status != domain.StatusResolved {
		return ErrInvalidDispute
	}

	if original.Amount == nil {
		return ErrMissingAmount
	}
	amount := original.Amount.Value()

	// The disputed funds must still be available to move into holding.
	if account.Available.LessThan(amount) {
		return ErrInsufficientFunds
	}

	held := account.Held.Add(amount)
	if held.GreaterThan(MaxBalance) {
		return ErrBalanceOverflow
	}

	account.Held = held
	account.Available = account.Available.Sub(amount)
	original.Status = domain.StatusDisputed

	return nil
}

func (e *Engine) resolve(account *ClientAccount, tx domain.Transaction) error {
	original, err := e.lookup(tx)
	if err != nil {
		return err
	}

	if original.Status != domain.StatusDisputed {
		return ErrInvalidTransactionStatus
	}

	if original.Amount == nil {
		return ErrMissingAmount
	}
	amount := original.Amount.Value()

	available := account.Available.Add(amount)
	if available.GreaterThan(MaxBalance) {
		return ErrBalanceOverflow
	}

	account.Available = available
	account.Held = account.Held.Sub(amount)
	original.Status = domain.StatusResolved

	return nil
}

func (e *Engine) chargeback(account *ClientAccount, tx domain.Transaction) error {
	original, err := e.lookup(tx)
	if err != nil {
		return err
	}

	if original.Status != domain.StatusDisputed {
		return ErrInvalidTransactionStatus
	}

	if original.Amount == nil {
		return ErrMissingAmount
	}

	// The debit is bounded by the dispute that moved the funds into holding.
	account.Held = account.Held.Sub(original.Amount.Value())
	account.Locked = true
	original.Status = domain.StatusChargedBack

	return nil
}

// lookup finds the standard transaction a referential one targets. A missing
// id and a client mismatch are deliberately indistinguishable to the caller,
// so a client cannot probe for other clients' transaction ids.
func (e *Engine) lookup(tx domain.Transaction) (*domain.Transaction, error) {
	original, ok := e.history[tx.ID]
	if !ok || original.Client != tx.Client {
		return nil, ErrTransactionNotFound
	}
	return original, nil
}

// FailureReason maps a processing error to a short stable label used in
// logs and metrics.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, ErrMissingAmount):
		return "missing_amount"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrBalanceOverflow):
		return "balance_overflow"
	case errors.Is(err, ErrAccountLocked):
		return "account_locked"
	case errors.Is(err, ErrTransactionNotFound):
		return "transaction_not_found"
	case errors.Is(err, ErrInvalidTransactionStatus):
		return "invalid_transaction_status"
	case errors.Is(err, ErrInvalidDispute):
		return "invalid_dispute"
	default:
		return "error"
	}
}
