package identity

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

// Principal is an identity authenticated by the platform.
type Principal struct {
	UID          string    // Platform assigned account id (localId)
	Email        string    // Account email
	IDToken      string    // Platform issued ID token (JWT)
	RefreshToken string    // Long lived refresh token
	ExpiresAt    time.Time // When IDToken expires
}

// Token returns the principal's ID token as an OAuth2 bearer token.
func (p *Principal) Token() *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  p.IDToken,
		TokenType:    "Bearer",
		RefreshToken: p.RefreshToken,
		Expiry:       p.ExpiresAt,
	}
}

func newPrincipal(res *authResponse, now time.Time) *Principal {
	p := &Principal{
		UID:          res.LocalID,
		Email:        res.Email,
		IDToken:      res.IDToken,
		RefreshToken: res.RefreshToken,
	}
	if secs, err := strconv.Atoi(res.ExpiresIn); err == nil {
		p.ExpiresAt = now.Add(time.Duration(secs) * time.Second)
	}

	// The token's own claims win over expiresIn. The signature is checked by a TokenVerifier, if any.
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(res.IDToken, &claims); err == nil {
		if claims.ExpiresAt != nil {
			p.ExpiresAt = claims.ExpiresAt.Time
		}
		if p.UID == "" {
			p.UID = claims.Subject
		}
	}
	return p
}
