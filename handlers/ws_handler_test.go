package handlers

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestClaimUserID(t *testing.T) {
	id := uuid.New()

	got, err := claimUserID(jwt.MapClaims{"user_id": id.String()})
	require.NoError(t, err)
	require.Equal(t, id, got)

	// A validly signed token may still carry a missing or malformed claim;
	// the handshake has to fail instead of panicking.
	_, err = claimUserID(jwt.MapClaims{})
	require.Error(t, err)

	_, err = claimUserID(jwt.MapClaims{"user_id": 42})
	require.Error(t, err)

	_, err = claimUserID(jwt.MapClaims{"user_id": "not-a-uuid"})
	require.Error(t, err)
}
