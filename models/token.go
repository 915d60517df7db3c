package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the claim set of an access token. Besides the registered
// claims (iss, aud, sub, exp, iat) it carries the identity of the user so
// that handlers do not need a database round trip.
type UserClaims struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	jwt.RegisteredClaims
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (c *UserClaims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Token wraps a signed or parsed JWT.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`

	// UserID, Username and Email are copied from the claims of a parsed token.
	UserID   int64  `json:"-"`
	Username string `json:"-"`
	Email    string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
