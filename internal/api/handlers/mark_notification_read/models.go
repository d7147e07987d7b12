package mark_notification_read

// SetReadRequest HTTP request model
type SetReadRequest struct {
	Read *bool `json:"read"`
}
