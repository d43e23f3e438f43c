package password_test

import (
	"frontdesk/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		expectedError error
	}{
		{name: "roster password", password: "frontdesk-2024"},
		{name: "unicode password", password: "kata-sandi-ÿ"},
		{name: "empty password", password: "", expectedError: password.ErrEmptyPassword},
		{name: "longer than bcrypt accepts", password: strings.Repeat("a", 73), expectedError: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.expectedError != nil {
				require.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, password.DefaultCost, cost)
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("john123")
	require.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		hash          string
		expectedError error
	}{
		{name: "match", password: "john123", hash: hash},
		{name: "case matters", password: "John123", hash: hash, expectedError: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, expectedError: password.ErrInvalidPassword},
		{name: "empty hash", password: "john123", hash: "", expectedError: password.ErrInvalidPassword},
		{name: "not a bcrypt hash", password: "john123", hash: "plain-text", expectedError: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.expectedError == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.expectedError)
		})
	}
}

func TestDecoy(t *testing.T) {
	for _, secret := range []string{"password123", "", "secret"} {
		assert.ErrorIs(t, password.Decoy(secret), password.ErrInvalidPassword, secret)
	}
}
