package order

type Status string

const (
	StatusReceived  Status = "received"
	StatusStarted   Status = "started"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusReceived, StatusStarted, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

type RefundReason string

// Refund reasons are passed through verbatim to the payment processor.
const (
	RefundDuplicate           RefundReason = "duplicate"
	RefundFraudulent          RefundReason = "fraudulent"
	RefundRequestedByCustomer RefundReason = "requested_by_customer"
)

func (r RefundReason) IsValid() bool {
	switch r {
	case RefundDuplicate, RefundFraudulent, RefundRequestedByCustomer:
		return true
	default:
		return false
	}
}
