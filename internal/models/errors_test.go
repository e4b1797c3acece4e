package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDomainErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrUserNotFound,
		ErrInvalidCredentials,
		ErrDuplicateEmail,
		ErrSessionNotFound,
		ErrPostNotFound,
	}

	// The login flow distinguishes user-not-found from invalid
	// credentials; the taxonomy only works if no two sentinels match.
	for i, a := range sentinels {
		require.Error(t, a)
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
