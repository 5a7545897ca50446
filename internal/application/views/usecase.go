// Package views fetches the data behind the handful of views that show live
// backend state. Fetches happen strictly after the guard has allowed the
// view; a slow backend can delay content, never an access decision.
package views

import (
	"context"

	"github.com/rs/zerolog"
)

// UseCase reads view data from the backend.
type UseCase struct {
	api DataAPI
	log zerolog.Logger
}

// NewUseCase builds the views use case.
func NewUseCase(api DataAPI, log zerolog.Logger) *UseCase {
	return &UseCase{api: api, log: log}
}

// Dashboard returns the request counters for the user dashboard.
func (uc *UseCase) Dashboard(ctx context.Context, userID string) (*Stats, error) {
	return uc.api.UserStats(ctx, userID)
}

// History returns the user's submitted pickup requests.
func (uc *UseCase) History(ctx context.Context, userID string) ([]PickupRequest, error) {
	return uc.api.UserRequests(ctx, userID)
}

// TrackPickup returns the agent's last reported position for a request.
func (uc *UseCase) TrackPickup(ctx context.Context, requestID string) (*Location, error) {
	return uc.api.PickupLocation(ctx, requestID)
}
