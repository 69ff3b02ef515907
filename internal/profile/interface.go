package profile

import (
	"context"

	"portfolio-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Snapshot fetches the owner's profile and recent repositories.
	Snapshot(ctx context.Context) (model.ProfileSnapshot, error)
}
