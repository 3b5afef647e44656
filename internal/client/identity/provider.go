// Package identity owns the stable installation identifier that scopes all
// local and remote note records.
//
// The identifier is created once per installation and persisted in the
// shared snapshot store, so the editor and the passive display surfaces all
// resolve the same owner. Get-or-create is atomic at the storage layer.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// installationKey is the snapshot-store key the id is persisted under.
const installationKey = "installation_id"

// Storage is the narrow persistence surface the provider needs.
type Storage interface {
	GetOrSetValue(ctx context.Context, key string, gen func() []byte) ([]byte, error)
}

// Provider resolves the installation id against persistent storage.
type Provider struct {
	storage Storage
}

// NewProvider returns a provider backed by the given storage.
func NewProvider(storage Storage) *Provider {
	return &Provider{storage: storage}
}

// InstallationID returns the persisted installation id, generating and
// persisting a fresh one on first call.
func (p *Provider) InstallationID(ctx context.Context) (string, error) {
	value, err := p.storage.GetOrSetValue(ctx, installationKey, func() []byte {
		return []byte(uuid.NewString())
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve installation id: %w", err)
	}
	return string(value), nil
}
