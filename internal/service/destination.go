package service

import "context"

//go:generate mockgen -source=$GOFILE -destination=destination_mocks_test.go -package=service_test

// DestinationChooser asks the user where a backup should be written.
// Implementations return ErrCancelled when the user backs out.
type DestinationChooser interface {
	ChooseDestination(ctx context.Context, suggestedName string) (string, error)
}
