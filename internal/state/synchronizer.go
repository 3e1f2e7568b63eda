// Package state owns the cached gift collections and keeps them in step
// with the backend: concurrent multi-endpoint refreshes, optimistic local
// mutations for user actions, and stale-but-available failure handling.
package state

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/badgergram/badgerclient/internal/api"
	"github.com/badgergram/badgerclient/internal/logging"
	"github.com/badgergram/badgerclient/internal/models"
)

// ErrSubmissionNotAccepted is returned by SubmitChallengePhoto when the
// upload succeeded at the HTTP level but the server's own success flag
// was false.
var ErrSubmissionNotAccepted = errors.New("challenge submission not accepted")

// errAlreadyRefreshing marks a refresh branch that was skipped because a
// refresh of the same resource was still in flight. A skipped branch is
// not a successful fetch, so RefreshAll must not count it toward a full
// cycle.
var errAlreadyRefreshing = errors.New("refresh already in flight")

type resource int

const (
	resourceSent resource = iota
	resourceReceived
	resourceApprovals
)

// Synchronizer is the single owner of the three cached collections and
// their loading flags. One instance exists per authenticated session; it
// is reset via ClearState on logout, not destroyed. All reads and writes
// are serialized through its mutex, and a successful refresh fully
// replaces a collection while a failed one leaves the previous snapshot
// in place.
type Synchronizer struct {
	client api.Client
	log    logging.Logger

	mu               sync.RWMutex
	sentGifts        []models.Gift
	receivedGifts    []models.Gift
	pendingApprovals []models.PendingApproval
	loading          [3]bool
	lastRefresh      time.Time
}

func New(client api.Client, log logging.Logger) *Synchronizer {
	return &Synchronizer{client: client, log: log}
}

// tryBegin sets the loading flag for r unless a refresh of the same
// resource is already in flight. The flag doubles as the in-flight guard,
// so two concurrent refreshes of one resource cannot race on its cache.
func (s *Synchronizer) tryBegin(r resource) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loading[r] {
		return false
	}
	s.loading[r] = true
	return true
}

func (s *Synchronizer) finish(r resource) {
	s.mu.Lock()
	s.loading[r] = false
	s.mu.Unlock()
}

// RefreshAll refreshes the three collections concurrently and returns
// once every branch has finished. Branches fail independently; a branch
// failure never aborts the others. lastRefresh is recorded only when all
// three branches actually fetched; a branch skipped by the in-flight
// guard leaves lastRefresh untouched.
func (s *Synchronizer) RefreshAll(ctx context.Context) {
	var wg sync.WaitGroup
	var sentErr, receivedErr, approvalsErr error

	wg.Add(3)
	go func() {
		defer wg.Done()
		sentErr = s.refreshSentGifts(ctx)
	}()
	go func() {
		defer wg.Done()
		receivedErr = s.refreshReceivedGifts(ctx)
	}()
	go func() {
		defer wg.Done()
		approvalsErr = s.refreshPendingApprovals(ctx)
	}()
	wg.Wait()

	if sentErr == nil && receivedErr == nil && approvalsErr == nil {
		s.mu.Lock()
		s.lastRefresh = time.Now()
		s.mu.Unlock()
	}
}

// RefreshSentGifts refreshes the sent-gifts collection. Failures are
// recovered locally: the previous snapshot stays cached and the only
// observable effect is the loading flag returning to false.
func (s *Synchronizer) RefreshSentGifts(ctx context.Context) {
	_ = s.refreshSentGifts(ctx)
}

// RefreshReceivedGifts refreshes the received-gifts collection.
func (s *Synchronizer) RefreshReceivedGifts(ctx context.Context) {
	_ = s.refreshReceivedGifts(ctx)
}

// RefreshPendingApprovals refreshes the pending-approvals collection.
func (s *Synchronizer) RefreshPendingApprovals(ctx context.Context) {
	_ = s.refreshPendingApprovals(ctx)
}

func (s *Synchronizer) refreshSentGifts(ctx context.Context) error {
	if !s.tryBegin(resourceSent) {
		return errAlreadyRefreshing
	}
	defer s.finish(resourceSent)

	gifts, err := s.client.ListSentGifts(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to refresh sent gifts", "error", err)
		return err
	}
	s.mu.Lock()
	s.sentGifts = gifts
	s.mu.Unlock()
	return nil
}

func (s *Synchronizer) refreshReceivedGifts(ctx context.Context) error {
	if !s.tryBegin(resourceReceived) {
		return errAlreadyRefreshing
	}
	defer s.finish(resourceReceived)

	gifts, err := s.client.ListReceivedGifts(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to refresh received gifts", "error", err)
		return err
	}
	s.mu.Lock()
	s.receivedGifts = gifts
	s.mu.Unlock()
	return nil
}

func (s *Synchronizer) refreshPendingApprovals(ctx context.Context) error {
	if !s.tryBegin(resourceApprovals) {
		return errAlreadyRefreshing
	}
	defer s.finish(resourceApprovals)

	approvals, err := s.client.ListPendingApprovals(ctx)
	if err != nil {
		s.log.Error(ctx, "failed to refresh pending approvals", "error", err)
		return err
	}
	s.mu.Lock()
	s.pendingApprovals = approvals
	s.mu.Unlock()
	return nil
}

// ApproveSubmission approves a pending submission. On success the entry
// is removed from the cached approvals immediately and the sent-gifts
// collection is refreshed to pick up the new gift status. The remote
// failure, if any, is returned to the caller.
func (s *Synchronizer) ApproveSubmission(ctx context.Context, submissionID string) error {
	if err := s.client.ReviewSubmission(ctx, submissionID, models.ReviewActionApprove, ""); err != nil {
		return err
	}
	s.removePendingApproval(submissionID)
	_ = s.refreshSentGifts(ctx)
	return nil
}

// RejectSubmission rejects a pending submission with an optional reason.
// Cache effects mirror ApproveSubmission.
func (s *Synchronizer) RejectSubmission(ctx context.Context, submissionID, reason string) error {
	if err := s.client.ReviewSubmission(ctx, submissionID, models.ReviewActionReject, reason); err != nil {
		return err
	}
	s.removePendingApproval(submissionID)
	_ = s.refreshSentGifts(ctx)
	return nil
}

func (s *Synchronizer) removePendingApproval(submissionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.pendingApprovals {
		if p.SubmissionID == submissionID {
			s.pendingApprovals = append(s.pendingApprovals[:i], s.pendingApprovals[i+1:]...)
			return
		}
	}
}

// SubmitChallengePhoto uploads the photo for a received gift. Success
// requires both a 2xx response and the server's embedded success flag;
// only then is the received-gifts collection refreshed.
func (s *Synchronizer) SubmitChallengePhoto(ctx context.Context, trackingID string, photo []byte, filename string) error {
	res, err := s.client.SubmitChallengePhoto(ctx, trackingID, photo, filename)
	if err != nil {
		return err
	}
	if !res.Success {
		return ErrSubmissionNotAccepted
	}
	_ = s.refreshReceivedGifts(ctx)
	return nil
}

// ClearState empties the cached collections and forgets lastRefresh.
// Called on logout; the token store is cleared by its own owner in
// response to the same event.
func (s *Synchronizer) ClearState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sentGifts = nil
	s.receivedGifts = nil
	s.pendingApprovals = nil
	s.lastRefresh = time.Time{}
}
