package dto

// CallbackPayload is an inbound gateway callback body. Type is informational
// only; the engine always re-fetches full event detail by id from the gateway
// rather than trusting payload contents.
type CallbackPayload struct {
	EventID string `json:"id" binding:"required"`
	Type    string `json:"type"`
}
