// Package api implements the authenticated client for the badgergram
// backend: request building, outcome classification and typed decoding.
package api

import (
	"context"

	"github.com/badgergram/badgerclient/internal/models"
)

// Client is the typed surface of the backend. Every operation resolves to
// either a typed value or one member of the error taxonomy in errors.go.
type Client interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.User, error)
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error

	SendGift(ctx context.Context, req models.SendGiftRequest) (*models.SendGiftResult, error)
	ListSentGifts(ctx context.Context) ([]models.Gift, error)
	ListReceivedGifts(ctx context.Context) ([]models.Gift, error)
	ListPendingApprovals(ctx context.Context) ([]models.PendingApproval, error)

	ReviewSubmission(ctx context.Context, submissionID string, action models.ReviewAction, reason string) error
	SubmitChallengePhoto(ctx context.Context, trackingID string, photo []byte, filename string) (*models.SubmissionResult, error)
}
