package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/giglink/giglink-cli/internal/common"
)

// checkToken decides whether a stored bearer token is still worth restoring.
// The signature is the server's business; only the shape and the exp claim
// are inspected here. A token with no exp claim is accepted.
func checkToken(raw string) error {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if exp != nil && exp.Before(time.Now()) {
		return common.ErrTokenExpired
	}
	return nil
}
