package domain

// DisplayStatus is the coarse order progression shown to the user:
// Accepted → Confirmed → InProgress → Ready → Delivery → Completed,
// with Delivery skipped for pickup orders.
type DisplayStatus string

const (
	StatusNone       DisplayStatus = ""
	StatusAccepted   DisplayStatus = "accepted"
	StatusConfirmed  DisplayStatus = "confirmed"
	StatusInProgress DisplayStatus = "in_progress"
	StatusReady      DisplayStatus = "ready"
	StatusDelivery   DisplayStatus = "delivery"
	StatusCompleted  DisplayStatus = "completed"
)

// remember to extend both maps when the backend grows a new status code
var displayStatuses = map[string]DisplayStatus{
	"accepted":  StatusAccepted,
	"confirmed": StatusConfirmed,
	"cooking":   StatusInProgress,
	"ready":     StatusReady,
	"delivery":  StatusDelivery,
	"done":      StatusCompleted,
}

var statusDisplayNames = map[string]string{
	"accepted":  "Принят",
	"confirmed": "Подтверждён",
	"cooking":   "Готовится",
	"ready":     "Готов",
	"delivery":  "Доставляется",
	"done":      "Завершён",
}

// DisplayStatusFor maps the latest polled server code to a display state.
// Unrecognized codes map to StatusNone rather than erroring. Pickup orders
// have no delivery leg; a delivery code on one degrades to Ready.
func DisplayStatusFor(code string, pickup bool) DisplayStatus {
	status, ok := displayStatuses[code]
	if !ok {
		return StatusNone
	}
	if pickup && status == StatusDelivery {
		return StatusReady
	}
	return status
}

// StatusDisplayName returns the user-facing label for a server code, empty
// for unrecognized codes.
func StatusDisplayName(code string) string {
	return statusDisplayNames[code]
}
