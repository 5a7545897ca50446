package views

import "context"

// PickupRequest is one scheduled e-waste pickup as listed by the history and
// request-management views.
type PickupRequest struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	DeviceType string `json:"deviceType"`
	Quantity   int    `json:"quantity"`
	Status     string `json:"status"`
	Address    string `json:"pickupAddress"`
	Scheduled  string `json:"scheduledDate"`
	CreatedAt  string `json:"createdAt"`
}

// Stats are the per-user request counters behind the dashboard cards.
type Stats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Completed int `json:"completed"`
}

// Location is the last reported pickup-agent position for a tracked request.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	UpdatedAt string  `json:"updatedAt"`
}

// DataAPI is the slice of the backend the data-backed views read from. Same
// error contract as the auth port: 401/403 arrive as domain.ErrSessionInvalid.
type DataAPI interface {
	UserStats(ctx context.Context, id string) (*Stats, error)
	UserRequests(ctx context.Context, id string) ([]PickupRequest, error)
	PickupLocation(ctx context.Context, requestID string) (*Location, error)
}
