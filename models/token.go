package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a verified bearer token presented to the gateway.
//
// It embeds [jwt.Token] for claim inspection. SignedString holds the compact
// serialized form (header.payload.signature) as received or produced.
//
// Subject is a cached copy of the "sub" claim. The gateway does not issue
// tokens to end users; the subject names the calling client and is only
// used for logging.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is the client identifier extracted from the "sub" claim.
	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
