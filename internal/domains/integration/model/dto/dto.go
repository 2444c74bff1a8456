package dto

// SyncStatusResponse reports how much of the booking book has been pushed
// to the channel manager. Pending counts bookings that never received an
// external reference.
type SyncStatusResponse struct {
	Provider        string  `json:"provider"`
	TotalBookings   int     `json:"total_bookings"`
	SyncedBookings  int     `json:"synced_bookings"`
	PendingBookings int     `json:"pending_bookings"`
	LastSyncAt      *string `json:"last_sync_at"`
}

// SyncResponse reports the outcome of one sync run.
type SyncResponse struct {
	Provider string `json:"provider"`
	Synced   int    `json:"synced"`
	SyncedAt string `json:"synced_at"`
}
