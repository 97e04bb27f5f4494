package workers

import (
	"context"
	"fmt"

	"github.com/mcirin3/sports-info/internal/models"
	"github.com/mcirin3/sports-info/internal/storage/sqlite"
)

// Processor persists snapshots into the latest-state store.
type Processor struct {
	store *sqlite.Store
}

func NewProcessor(store *sqlite.Store) *Processor {
	return &Processor{store: store}
}

func (p *Processor) Handle(ctx context.Context, snap *models.GameSnapshot) error {
	if snap == nil {
		return nil
	}
	if err := p.store.UpsertSnapshots(ctx, []models.GameSnapshot{*snap}); err != nil {
		return fmt.Errorf("upsert snapshot %d: %w", snap.Game.ID, err)
	}
	return nil
}
