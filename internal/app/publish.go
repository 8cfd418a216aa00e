// Package app implements the primary ports: the imperative shell around the
// functional core. Every mutation loads the latest registry snapshot, clones
// it, applies the change, bumps the version, and publishes the result; a
// snapshot handed out to a reader is never edited in place.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/dispatchiq/internal/ports/secondary"
	"github.com/example/dispatchiq/internal/registry"
	"github.com/example/dispatchiq/internal/snapshot"
)

// publisher is the shared mutation tail: save the new snapshot, then retain
// it in the archive. Archive failures are logged, not propagated - history
// must not roll back a committed mutation.
type publisher struct {
	store   secondary.RegistryStore
	archive secondary.SnapshotArchive // optional
	logger  *zap.Logger
}

func (p *publisher) publish(ctx context.Context, next *registry.Registry) error {
	if err := p.store.Save(ctx, next); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	if p.archive != nil {
		data, err := snapshot.Encode(next)
		if err == nil {
			err = p.archive.Append(ctx, next.Version, data)
		}
		if err != nil {
			p.logger.Warn("snapshot archive append failed",
				zap.Int("version", next.Version),
				zap.Error(err))
		}
	}

	return nil
}

// begin loads the latest snapshot and returns a clone ready for editing,
// with the version already bumped.
func (p *publisher) begin(ctx context.Context) (*registry.Registry, error) {
	reg, err := p.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	next := reg.Clone()
	next.Version = reg.Version + 1
	return next, nil
}

func (p *publisher) load(ctx context.Context) (*registry.Registry, error) {
	reg, err := p.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return reg, nil
}
