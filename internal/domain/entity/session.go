package entity

// Valid roles for a Session. These are the wire values the EcoSaathi backend
// uses; exactly one per session.
const (
	RoleUser         = "USER"
	RolePickupPerson = "PICKUP_PERSON"
	RoleAdmin        = "ADMIN"
)

// ValidRole reports whether role belongs to the closed enumeration.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RolePickupPerson, RoleAdmin:
		return true
	}
	return false
}

// Session is the current identity record. A nil *Session means anonymous.
// The guard and composer only ever read SubjectID and Role; the remaining
// fields are profile attributes carried for the views.
type Session struct {
	SubjectID   string
	Role        string // USER, PICKUP_PERSON, ADMIN
	DisplayName string
	Email       string
	Phone       string
	Address     string
	AvatarURL   string
}

// Valid reports whether the record passes shape validation: a SubjectID and a
// role from the enumeration. Records that fail this are treated as absent
// everywhere downstream.
func (s *Session) Valid() bool {
	return s != nil && s.SubjectID != "" && ValidRole(s.Role)
}

// Normalize collapses invalid records to nil so that callers only ever see a
// valid session or an absent one, never a partial state.
func Normalize(s *Session) *Session {
	if !s.Valid() {
		return nil
	}
	return s
}

// WithProfile returns a copy of s with the profile attributes replaced.
// SubjectID and Role are never replaced here; role reassignment does not
// happen client-side.
func (s *Session) WithProfile(displayName, email, phone, address, avatarURL string) *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.DisplayName = displayName
	out.Email = email
	out.Phone = phone
	out.Address = address
	out.AvatarURL = avatarURL
	return &out
}
