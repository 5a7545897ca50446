package sessiontoken

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ecosaathi/ecosaathi/internal/domain/entity"
)

// Claims embeds the registered JWT claims plus the session record fields.
// The subject claim doubles as the SubjectID; Role is a custom claim so the
// store can validate it against the enumeration without extra lookups.
type Claims struct {
	jwt.RegisteredClaims
	Role        string `json:"role"` // "USER" | "PICKUP_PERSON" | "ADMIN"
	DisplayName string `json:"display_name,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

// Seal signs the session record as an HS256 token for at-rest storage.
// A sealed record that is later truncated, edited, or written by an
// incompatible schema fails Open and reads as "never logged in".
func Seal(secret string, s *entity.Session) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("sessiontoken: empty secret")
	}
	if !s.Valid() {
		return "", fmt.Errorf("sessiontoken: refusing to seal invalid session")
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: s.SubjectID,
		},
		Role:        s.Role,
		DisplayName: s.DisplayName,
		Email:       s.Email,
		Phone:       s.Phone,
		Address:     s.Address,
		AvatarURL:   s.AvatarURL,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Open validates the token and returns the session record. Returns an error
// for a bad signature, an unexpected signing method, or claims that fail the
// session shape validation; callers treat any error as an absent session.
func Open(secret, tokenString string) (*entity.Session, error) {
	if secret == "" {
		return nil, fmt.Errorf("sessiontoken: empty secret")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sessiontoken: invalid claims")
	}
	s := &entity.Session{
		SubjectID:   claims.Subject,
		Role:        claims.Role,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
		Phone:       claims.Phone,
		Address:     claims.Address,
		AvatarURL:   claims.AvatarURL,
	}
	if !s.Valid() {
		return nil, fmt.Errorf("sessiontoken: claims fail session shape validation")
	}
	return s, nil
}
