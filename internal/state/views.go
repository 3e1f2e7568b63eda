package state

import (
	"time"

	"github.com/badgergram/badgerclient/internal/models"
)

// Read-side accessors. Collections are returned as defensive copies so
// callers hold immutable snapshots; derived values are recomputed on
// every read.

func (s *Synchronizer) SentGifts() []models.Gift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Gift(nil), s.sentGifts...)
}

func (s *Synchronizer) ReceivedGifts() []models.Gift {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Gift(nil), s.receivedGifts...)
}

func (s *Synchronizer) PendingApprovals() []models.PendingApproval {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.PendingApproval(nil), s.pendingApprovals...)
}

func (s *Synchronizer) IsLoadingSent() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[resourceSent]
}

func (s *Synchronizer) IsLoadingReceived() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[resourceReceived]
}

func (s *Synchronizer) IsLoadingApprovals() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[resourceApprovals]
}

// IsLoading reports whether any resource refresh is outstanding.
func (s *Synchronizer) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading[resourceSent] || s.loading[resourceReceived] || s.loading[resourceApprovals]
}

func (s *Synchronizer) PendingApprovalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pendingApprovals)
}

func (s *Synchronizer) HasPendingApprovals() bool {
	return s.PendingApprovalCount() > 0
}

// LastRefresh returns the completion time of the most recent fully
// successful RefreshAll cycle, and false if none has completed yet.
func (s *Synchronizer) LastRefresh() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRefresh, !s.lastRefresh.IsZero()
}
