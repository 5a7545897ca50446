package backend

import (
	"encoding/json"

	"github.com/ecosaathi/ecosaathi/internal/application/auth"
	"github.com/ecosaathi/ecosaathi/internal/application/views"
)

// FlexID tolerates the backend sending identifiers as either JSON strings or
// numbers (both occur across its endpoints) and always yields a string.
type FlexID string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexID) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// userPayload is the identity record as the backend serializes it, legacy
// isAdmin flag included.
type userPayload struct {
	ID            FlexID `json:"id"`
	Role          string `json:"role"`
	IsAdmin       bool   `json:"isAdmin"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PickupAddress string `json:"pickupAddress"`
	AvatarURL     string `json:"profilePicture"`
}

func (p userPayload) toPort() *auth.UserPayload {
	return &auth.UserPayload{
		ID:            string(p.ID),
		Role:          p.Role,
		IsAdmin:       p.IsAdmin,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Phone:         p.Phone,
		PickupAddress: p.PickupAddress,
		AvatarURL:     p.AvatarURL,
	}
}

// requestPayload is a pickup request on the wire; ids arrive as numbers from
// some endpoints.
type requestPayload struct {
	ID         FlexID `json:"id"`
	UserID     FlexID `json:"userId"`
	DeviceType string `json:"deviceType"`
	Quantity   int    `json:"quantity"`
	Status     string `json:"status"`
	Address    string `json:"pickupAddress"`
	Scheduled  string `json:"scheduledDate"`
	CreatedAt  string `json:"createdAt"`
}

func (p requestPayload) toPort() views.PickupRequest {
	return views.PickupRequest{
		ID:         string(p.ID),
		UserID:     string(p.UserID),
		DeviceType: p.DeviceType,
		Quantity:   p.Quantity,
		Status:     p.Status,
		Address:    p.Address,
		Scheduled:  p.Scheduled,
		CreatedAt:  p.CreatedAt,
	}
}
