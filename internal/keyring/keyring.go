package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/chuwg/change-work/internal/constants"
)

var (
	// ErrNotFound is returned when no secret is stored in the keyring
	ErrNotFound = errors.New("store secret not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetStoreSecret retrieves the shared-store password (e.g. the Redis
// password) from the OS keyring. Returns ErrNotFound if nothing is stored.
func GetStoreSecret() (string, error) {
	secret, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return secret, nil
}

// SetStoreSecret stores the shared-store password in the OS keyring.
func SetStoreSecret(secret string) error {
	if secret == "" {
		return errors.New("store secret cannot be empty")
	}
	if err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, secret); err != nil {
		return fmt.Errorf("failed to store secret in keyring: %w", err)
	}
	return nil
}

// DeleteStoreSecret removes the shared-store password from the OS keyring.
func DeleteStoreSecret() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete secret from keyring: %w", err)
	}
	return nil
}
