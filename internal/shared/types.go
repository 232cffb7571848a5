package shared

// Task types routed through asynq. Shared between the API (producer)
// and the worker (consumer) without importing domain packages.
const (
	TypeDeleteBookCover = "book:delete_cover"
)

// DeleteCoverPayload carries the stored cover URL of a deleted book.
type DeleteCoverPayload struct {
	CoverURL string `json:"cover_url"`
}
