// Package session manages the client's session id: an opaque random
// string created on first run and reused afterwards.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/uuidfeed/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/uuidfeed/internal/common"
)

// ClientIDKey is the metadata key holding the session id.
const ClientIDKey = "client_id"

// idBytes yields a 16 character hex id.
const idBytes = 8

// newID is a seam for tests.
var newID = func() (string, error) {
	return common.MakeRandHexString(idBytes)
}

// LoadOrCreate returns the stored session id, generating and persisting a
// new one if none exists yet.
func LoadOrCreate(ctx context.Context, repo metadata.Repository) (string, error) {
	id, err := repo.Get(ctx, ClientIDKey)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("error reading session id: %w", err)
	}

	id, err = newID()
	if err != nil {
		return "", fmt.Errorf("error generating session id: %w", err)
	}

	if err := repo.Set(ctx, ClientIDKey, id); err != nil {
		return "", fmt.Errorf("error saving session id: %w", err)
	}

	return id, nil
}
