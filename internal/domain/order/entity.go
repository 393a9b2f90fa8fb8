package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyRefunded   = errors.New("order is already refunded")
	ErrAlreadyStarted    = errors.New("order is already started")
	ErrAlreadyCompleted  = errors.New("order is already completed")
	ErrOrderCanceled     = errors.New("order is canceled")
	ErrInvalidRefundTime = errors.New("refund timestamp is zero")
)

// Customization is a persisted customization row remapped from a draft
// line's category→choice map.
type Customization struct {
	CategoryID   uuid.UUID
	CategoryName string
	ChoiceID     uuid.UUID
	ChoiceName   string
}

type Item struct {
	ID               uuid.UUID
	ItemID           uuid.UUID
	Name             string
	Quantity         int32
	UnitPriceCents   int32
	Instructions     string
	PointsRedeemed   bool
	BirthdayRedeemed bool
	Customizations   []Customization
}

// Order is the persisted snapshot of a settled draft. It is immutable once
// created except for status transitions and is never re-priced.
type Order struct {
	id                 uuid.UUID
	userID             uuid.UUID
	stripeSessionID    string
	paymentIntentID    string
	pickupName         string
	firstName          string
	lastName           string
	email              string
	pickupAt           time.Time
	asap               bool
	includeUtensils    bool
	items              []Item
	subtotalCents      int64
	taxCents           int64
	tipCents           int64
	totalCents         int64
	storedValueApplied int64
	status             Status
	startedAt          *time.Time
	completedAt        *time.Time
	refundedAt         *time.Time
	refundReason       *RefundReason
	createdAt          time.Time
}

type NewOrderParams struct {
	UserID             uuid.UUID
	StripeSessionID    string
	PaymentIntentID    string
	PickupName         string
	FirstName          string
	LastName           string
	Email              string
	PickupAt           time.Time
	ASAP               bool
	IncludeUtensils    bool
	Items              []Item
	SubtotalCents      int64
	TaxCents           int64
	TipCents           int64
	TotalCents         int64
	StoredValueApplied int64
	CreatedAt          time.Time
}

func NewOrder(p NewOrderParams) *Order {
	return &Order{
		id:                 uuid.New(),
		userID:             p.UserID,
		stripeSessionID:    p.StripeSessionID,
		paymentIntentID:    p.PaymentIntentID,
		pickupName:         p.PickupName,
		firstName:          p.FirstName,
		lastName:           p.LastName,
		email:              p.Email,
		pickupAt:           p.PickupAt,
		asap:               p.ASAP,
		includeUtensils:    p.IncludeUtensils,
		items:              p.Items,
		subtotalCents:      p.SubtotalCents,
		taxCents:           p.TaxCents,
		tipCents:           p.TipCents,
		totalCents:         p.TotalCents,
		storedValueApplied: p.StoredValueApplied,
		status:             StatusReceived,
		createdAt:          p.CreatedAt,
	}
}

type ReconstructOrderParams struct {
	NewOrderParams
	ID           uuid.UUID
	Status       Status
	StartedAt    *time.Time
	CompletedAt  *time.Time
	RefundedAt   *time.Time
	RefundReason *RefundReason
}

func ReconstructOrder(p ReconstructOrderParams) *Order {
	o := NewOrder(p.NewOrderParams)
	o.id = p.ID
	o.status = p.Status
	o.startedAt = p.StartedAt
	o.completedAt = p.CompletedAt
	o.refundedAt = p.RefundedAt
	o.refundReason = p.RefundReason
	return o
}

func (o *Order) Start(now time.Time) error {
	if o.status == StatusCanceled {
		return ErrOrderCanceled
	}
	if o.startedAt != nil {
		return ErrAlreadyStarted
	}
	t := now
	o.startedAt = &t
	o.status = StatusStarted
	return nil
}

func (o *Order) Complete(now time.Time) error {
	if o.status == StatusCanceled {
		return ErrOrderCanceled
	}
	if o.completedAt != nil {
		return ErrAlreadyCompleted
	}
	if o.startedAt == nil {
		t := now
		o.startedAt = &t
	}
	t := now
	o.completedAt = &t
	o.status = StatusCompleted
	return nil
}

// Refund marks the order refunded. Refunds are not retriable once recorded;
// the started/completed timestamps are backfilled so a refunded order is
// never shown as still in progress.
func (o *Order) Refund(now time.Time, reason RefundReason) error {
	if o.refundedAt != nil {
		return ErrAlreadyRefunded
	}
	if now.IsZero() {
		return ErrInvalidRefundTime
	}
	t := now
	o.refundedAt = &t
	o.refundReason = &reason
	if o.startedAt == nil {
		o.startedAt = &t
	}
	if o.completedAt == nil {
		o.completedAt = &t
		o.status = StatusCompleted
	}
	return nil
}

// ShiftPickup moves the pickup instant. Used only by strict slot
// reservation, which may push a paid order into the next open slot.
func (o *Order) ShiftPickup(t time.Time) {
	o.pickupAt = t
}

func (o *Order) IsRefunded() bool {
	return o.refundedAt != nil
}

func (o *Order) ID() uuid.UUID               { return o.id }
func (o *Order) UserID() uuid.UUID           { return o.userID }
func (o *Order) StripeSessionID() string     { return o.stripeSessionID }
func (o *Order) PaymentIntentID() string     { return o.paymentIntentID }
func (o *Order) PickupName() string          { return o.pickupName }
func (o *Order) FirstName() string           { return o.firstName }
func (o *Order) LastName() string            { return o.lastName }
func (o *Order) Email() string               { return o.email }
func (o *Order) PickupAt() time.Time         { return o.pickupAt }
func (o *Order) ASAP() bool                  { return o.asap }
func (o *Order) IncludeUtensils() bool       { return o.includeUtensils }
func (o *Order) Items() []Item               { return o.items }
func (o *Order) SubtotalCents() int64        { return o.subtotalCents }
func (o *Order) TaxCents() int64             { return o.taxCents }
func (o *Order) TipCents() int64             { return o.tipCents }
func (o *Order) TotalCents() int64           { return o.totalCents }
func (o *Order) StoredValueApplied() int64   { return o.storedValueApplied }
func (o *Order) Status() Status              { return o.status }
func (o *Order) StartedAt() *time.Time       { return o.startedAt }
func (o *Order) CompletedAt() *time.Time     { return o.completedAt }
func (o *Order) RefundedAt() *time.Time      { return o.refundedAt }
func (o *Order) RefundReason() *RefundReason { return o.refundReason }
func (o *Order) CreatedAt() time.Time        { return o.createdAt }
