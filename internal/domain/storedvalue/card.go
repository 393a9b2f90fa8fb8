package storedvalue

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount    = errors.New("amount must be positive")
	ErrInsufficientBalance  = errors.New("insufficient card balance")
	ErrBalanceMismatch      = errors.New("balance does not equal transaction sum")
	ErrEmptyRedemptionCode  = errors.New("redemption code is empty")
	ErrNegativeIssueBalance = errors.New("issue amount cannot be negative")
)

type TransactionType string

const (
	TxIssue  TransactionType = "issue"
	TxDebit  TransactionType = "debit"
	TxCredit TransactionType = "credit"
)

// Transaction is one append-only ledger entry. AmountCents is a signed delta:
// negative for debits, positive for issues and credits.
type Transaction struct {
	ID          uuid.UUID
	Type        TransactionType
	AmountCents int64
	Note        string
	CreatedAt   time.Time
}

// Card is a prepaid balance instrument. Its balance always equals the sum of
// its transactions and never goes negative.
type Card struct {
	id           uuid.UUID
	code         string
	balanceCents int64
	transactions []Transaction
}

func Issue(code string, amountCents int64, now time.Time) (*Card, error) {
	if code == "" {
		return nil, ErrEmptyRedemptionCode
	}
	if amountCents < 0 {
		return nil, ErrNegativeIssueBalance
	}
	c := &Card{
		id:           uuid.New(),
		code:         code,
		balanceCents: amountCents,
	}
	c.transactions = append(c.transactions, Transaction{
		ID:          uuid.New(),
		Type:        TxIssue,
		AmountCents: amountCents,
		Note:        "issued",
		CreatedAt:   now,
	})
	return c, nil
}

func Reconstruct(id uuid.UUID, code string, balanceCents int64, txns []Transaction) (*Card, error) {
	c := &Card{
		id:           id,
		code:         code,
		balanceCents: balanceCents,
		transactions: txns,
	}
	if err := c.checkInvariant(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Card) checkInvariant() error {
	var sum int64
	for _, t := range c.transactions {
		sum += t.AmountCents
	}
	if sum != c.balanceCents || c.balanceCents < 0 {
		return ErrBalanceMismatch
	}
	return nil
}

// Coverage returns how much of totalCents the card can pay:
// min(total, balance).
func (c *Card) Coverage(totalCents int64) int64 {
	if c.balanceCents < totalCents {
		return c.balanceCents
	}
	return totalCents
}

func (c *Card) Covers(totalCents int64) bool {
	return c.balanceCents >= totalCents
}

// Debit appends a debit transaction and decrements the balance. The balance
// floor is enforced again at the storage layer with a conditional update;
// this in-memory check only produces a friendlier error.
func (c *Card) Debit(amountCents int64, note string, now time.Time) (Transaction, error) {
	if amountCents <= 0 {
		return Transaction{}, ErrNonPositiveAmount
	}
	if amountCents > c.balanceCents {
		return Transaction{}, ErrInsufficientBalance
	}
	txn := Transaction{
		ID:          uuid.New(),
		Type:        TxDebit,
		AmountCents: -amountCents,
		Note:        note,
		CreatedAt:   now,
	}
	c.balanceCents -= amountCents
	c.transactions = append(c.transactions, txn)
	return txn, nil
}

func (c *Card) Credit(amountCents int64, note string, now time.Time) (Transaction, error) {
	if amountCents <= 0 {
		return Transaction{}, ErrNonPositiveAmount
	}
	txn := Transaction{
		ID:          uuid.New(),
		Type:        TxCredit,
		AmountCents: amountCents,
		Note:        note,
		CreatedAt:   now,
	}
	c.balanceCents += amountCents
	c.transactions = append(c.transactions, txn)
	return txn, nil
}

func (c *Card) ID() uuid.UUID               { return c.id }
func (c *Card) Code() string                { return c.code }
func (c *Card) BalanceCents() int64         { return c.balanceCents }
func (c *Card) Transactions() []Transaction { return c.transactions }
