package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/catalog"
	domainorder "github.com/khues-restaurant/khues-restaurant-sub001/internal/domain/order"
	"github.com/khues-restaurant/khues-restaurant-sub001/internal/infra/db"
)

// CatalogReads is the read-only collaborator surface the validator and
// settlement consume. Implementations return point-in-time snapshots; the
// core never writes through this port.
type CatalogReads interface {
	MenuItemByID(ctx context.Context, id uuid.UUID) (*catalog.MenuItem, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*catalog.CustomizationCategory, error)
	DiscountByID(ctx context.Context, id uuid.UUID) (*catalog.Discount, error)
}

// PickupConfig is the operations-maintained record backing pickup-time
// legality. Its absence is a configuration error, not a validation failure.
type PickupConfig struct {
	MinPickupAt   time.Time
	ASAPAvailable bool
}

type ScheduleReads interface {
	// ClosedOn reports whether the business is closed for the whole calendar
	// day containing t (weekly hours plus published holidays).
	ClosedOn(ctx context.Context, t time.Time) (bool, error)
	PickupConfig(ctx context.Context) (*PickupConfig, error)
}

type SlotReads interface {
	// CountOrdersBetween counts non-cancelled orders whose pickup instant
	// falls in [from, to).
	CountOrdersBetween(ctx context.Context, from, to time.Time) (int, error)
}

type UserSnapshot struct {
	ID            uuid.UUID
	FirstName     string
	LastName      string
	Email         string
	LoyaltyPoints int32
}

type UserReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

// DraftStore holds the transient, user-keyed snapshot of the last submitted
// draft; written before session creation and read back by the confirmation
// handler.
type DraftStore interface {
	Save(ctx context.Context, userID uuid.UUID, draft *domainorder.DraftOrder, ttl time.Duration) error
	Load(ctx context.Context, userID uuid.UUID) (*domainorder.DraftOrder, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type StoredValueCardSnapshot struct {
	ID           uuid.UUID
	Code         string
	BalanceCents int64
}

type StoredValueRepository interface {
	FindByCode(ctx context.Context, code string) (*StoredValueCardSnapshot, error)
	// Debit atomically decrements the balance and appends the matching debit
	// transaction; it fails with KindConflict when the balance would go
	// negative. Must run inside the settlement transaction.
	Debit(ctx context.Context, tx db.DBTX, cardID uuid.UUID, amountCents int64, note string) error
}

type OrderRepository interface {
	// Create inserts the order, its items and customization rows. A duplicate
	// stripe session id surfaces as KindDuplicateKey; the unique index is the
	// actual settlement idempotency guarantee.
	Create(ctx context.Context, tx db.DBTX, o *domainorder.Order) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domainorder.Order, error)
	ExistsByStripeSessionID(ctx context.Context, sessionID string) (bool, error)
	Save(ctx context.Context, tx db.DBTX, o *domainorder.Order) error
}

type OrderItemView struct {
	Name             string   `json:"name"`
	Quantity         int32    `json:"quantity"`
	UnitPriceCents   int32    `json:"unitPriceCents"`
	Instructions     string   `json:"instructions,omitempty"`
	PointsRedeemed   bool     `json:"pointsRedeemed,omitempty"`
	BirthdayRedeemed bool     `json:"birthdayRedeemed,omitempty"`
	Customizations   []string `json:"customizations,omitempty"`
}

type OrderView struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"-"`
	PickupName         string          `json:"pickupName"`
	PickupAt           time.Time       `json:"pickupAt"`
	ASAP               bool            `json:"asap,omitempty"`
	Status             string          `json:"status"`
	SubtotalCents      int64           `json:"subtotalCents"`
	TaxCents           int64           `json:"taxCents"`
	TipCents           int64           `json:"tipCents"`
	TotalCents         int64           `json:"totalCents"`
	StoredValueApplied int64           `json:"storedValueApplied,omitempty"`
	StartedAt          *time.Time      `json:"startedAt,omitempty"`
	CompletedAt        *time.Time      `json:"completedAt,omitempty"`
	RefundedAt         *time.Time      `json:"refundedAt,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	Items              []OrderItemView `json:"items,omitempty"`
}

type OrderReads interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	OrdersByUser(ctx context.Context, userID uuid.UUID) ([]OrderView, error)
}

type PrintJob struct {
	Token     uuid.UUID
	OrderID   uuid.UUID
	CreatedAt time.Time
}

type PrintQueueRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, orderID uuid.UUID) error
	NextPending(ctx context.Context) (*PrintJob, error)
	DeleteByToken(ctx context.Context, token uuid.UUID) error
}

// PricedLine is one price line transmitted to the payment processor.
type PricedLine struct {
	Name            string
	Description     string
	UnitAmountCents int64
	Quantity        int64
}

type StoredValueUsage struct {
	Code   string    `json:"code"`
	Amount int64     `json:"amount"`
	ID     uuid.UUID `json:"id"`
}

type CheckoutSessionParams struct {
	UserID           uuid.UUID
	PickupName       string
	Lines            []PricedLine
	TaxCents         int64
	TipCents         int64
	ExpiresAt        time.Time
	StoredValueUsage []StoredValueUsage
}

type CheckoutSession struct {
	ID  string
	URL string
}

// ConfirmationEvent is the parsed, signature-verified payload of a
// checkout.session.completed notification. Delivery is at-least-once.
type ConfirmationEvent struct {
	SessionID        string
	PaymentIntentID  string
	Kind             string
	UserID           uuid.UUID
	PickupName       string
	TaxCents         int64
	TipCents         int64
	AmountSubtotal   int64
	AmountTotal      int64
	StoredValueUsage []StoredValueUsage
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*CheckoutSession, error)
	ExpireSession(ctx context.Context, sessionID string) error
	// SessionPaymentIntent resolves the payment reference behind a checkout
	// session, for orders settled before the intent id was recorded.
	SessionPaymentIntent(ctx context.Context, sessionID string) (string, error)
	Refund(ctx context.Context, paymentIntentID string, reason domainorder.RefundReason) error
}
