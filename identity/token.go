package identity

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenClaims struct {
	Email        string `json:"email"`
	Role         string `json:"role"`
	UserMetadata struct {
		FullName string `json:"full_name"`
	} `json:"user_metadata"`
	jwt.RegisteredClaims
}

// ParseToken extracts the identity and expiry carried in an access token
// without verifying its signature. Verification belongs to the backend; the
// client only needs the claims for display and expiry bookkeeping.
func ParseToken(accessToken string) (User, time.Time, error) {
	var claims tokenClaims
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, &claims); err != nil {
		return User{}, time.Time{}, fmt.Errorf("failed to parse access token: %w", err)
	}

	user := User{
		Email:    claims.Email,
		Role:     claims.Role,
		FullName: claims.UserMetadata.FullName,
	}
	if claims.Subject != "" {
		user.ID = claims.Subject
	}
	var expiry time.Time
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	return user, expiry, nil
}
