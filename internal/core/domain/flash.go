package domain

// FlashType classifies a flash message for rendering.
type FlashType string

const (
	FlashSuccess FlashType = "success"
	FlashError   FlashType = "error"
)

// FlashMessage is a one-shot notification carried in the session cookie.
// It is rendered on the next page view and then discarded.
type FlashMessage struct {
	Content string    `json:"content"`
	Type    FlashType `json:"type"`
}
