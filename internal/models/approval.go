package models

import "time"

// PendingApproval is a challenge submission waiting for the sender's
// verdict. SubmissionID is the identity used for local removal after an
// approve/reject action.
type PendingApproval struct {
	SubmissionID string    `json:"submissionId"`
	PhotoURL     string    `json:"photoUrl"`
	SubmittedAt  time.Time `json:"submittedAt"`
	GiftID       string    `json:"giftId"`
	GiftType     string    `json:"giftType"`

	RecipientName        string   `json:"recipientName,omitempty"`
	Value                *float64 `json:"value,omitempty"`
	ChallengeDescription string   `json:"challengeDescription,omitempty"`
}
