package domain

// Realtime event names as seen on the wire.
const (
	EventTxNew             = "tx:new"
	EventTxDeleted         = "tx:deleted"
	EventSummaryInvalidate = "tx:summary:invalidate"
	EventProfileUpdated    = "profile:updated"
)

// FanoutEvent is a transient state-change notification. It is never
// persisted; it is delivered best-effort to whichever channels are
// reachable at the moment it fires.
type FanoutEvent struct {
	ID      string
	Kind    string
	UserID  int64
	Title   string
	Body    string
	Payload map[string]interface{}
}
