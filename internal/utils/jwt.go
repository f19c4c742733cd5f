package utils // package utils provides helper functions for token creation and verification

import (
    "errors" // sentinel errors for token verification failures
    "time"   // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Tokens are long‑lived (days rather than
// minutes) because login is passwordless and there is no refresh flow.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// Identity is the verified content of an access token: the subject user
// id and the email it was issued for.
type Identity struct {
    UserID uint64
    Email  string
}

// ErrInvalidToken is returned by ParseAccessToken for any token that is
// malformed, signed with the wrong key or algorithm, expired, or missing
// the expected claims.  Callers only need to know the token is unusable.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's email, and a TTL in days.  It
// returns an AccessToken structure containing the signed token and its
// expiration time.  The JWT includes the claims: subject (sub), email,
// expiration (exp) and issued at (iat).
func NewAccessToken(secret string, userID uint64, email string, ttlDays int) (AccessToken, error) {
    exp := time.Now().UTC().Add(time.Duration(ttlDays) * 24 * time.Hour)
    claims := jwt.MapClaims{
        "sub":   userID,
        "email": email,
        "exp":   exp.Unix(),
        "iat":   time.Now().UTC().Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies a raw token string against the signing secret
// and returns the identity it asserts.  Verification is a pure function of
// the token and the secret; expiry is enforced by the jwt library from the
// exp claim.  Any failure collapses to ErrInvalidToken.
func ParseAccessToken(secret, raw string) (Identity, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC; an attacker must not
        // be able to pick the verification algorithm.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return Identity{}, ErrInvalidToken
    }
    claims, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return Identity{}, ErrInvalidToken
    }
    // Numeric JSON claims decode as float64.
    sub, ok := claims["sub"].(float64)
    if !ok || sub <= 0 {
        return Identity{}, ErrInvalidToken
    }
    email, _ := claims["email"].(string)
    return Identity{UserID: uint64(sub), Email: email}, nil
}
