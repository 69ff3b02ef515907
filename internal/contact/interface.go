package contact

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Submit delivers a visitor's message to the site owner.
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)
}
