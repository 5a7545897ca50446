package dto

// LoginRequest carries the credentials for both backend login endpoints.
// The field doubles as email-or-phone; the backend resolves it.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned by the local login handler after a successful
// authentication: the normalized identity plus where to go next.
type LoginResponse struct {
	User     IdentityResponse `json:"user"`
	Redirect string           `json:"redirect"`
}

// IdentityResponse is the session identity as exposed to views. Never carries
// credentials.
type IdentityResponse struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// RegisterRequest is forwarded to the backend register endpoint.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
	Password  string `json:"password" validate:"required,min=8"`
}

// ProfileUpdateRequest replaces profile attributes only. The backend ignores
// any attempt to change id or role through this path, and so does the store.
type ProfileUpdateRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	PickupAddress string `json:"pickupAddress"`
	Password      string `json:"password,omitempty"`
}
