// Package models defines the wire and cache types exchanged with the
// badgergram backend: gifts, pending approvals, users, and the request
// and response envelopes of the JSON API.
package models

import "time"

// Gift statuses as reported by the backend.
const (
	GiftStatusPending   = "pending"
	GiftStatusDelivered = "delivered"
	GiftStatusAccepted  = "accepted"
	GiftStatusCompleted = "completed"
	GiftStatusRejected  = "rejected"
)

// Gift is a read-through snapshot of a gift record. Only ID, GiftType,
// Status and CreatedAt are guaranteed; everything else depends on the
// gift kind and on which listing endpoint produced it.
type Gift struct {
	ID        string    `json:"id"`
	GiftType  string    `json:"giftType"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`

	RecipientName  string `json:"recipientName,omitempty"`
	RecipientPhone string `json:"recipientPhone,omitempty"`
	RecipientEmail string `json:"recipientEmail,omitempty"`
	SenderName     string `json:"senderName,omitempty"`
	SenderPhone    string `json:"senderPhone,omitempty"`

	ChallengeDescription string   `json:"challengeDescription,omitempty"`
	PersonalNote         string   `json:"personalNote,omitempty"`
	Value                *float64 `json:"value,omitempty"`

	// Duration tolerates both number and numeric-string encodings.
	Duration OptionalInt `json:"duration,omitzero"`

	DeliveryMethod    string `json:"deliveryMethod,omitempty"`
	ReminderFrequency string `json:"reminderFrequency,omitempty"`
	VerificationType  string `json:"verificationType,omitempty"`
	CardImage         string `json:"cardImage,omitempty"`
	ChallengeID       string `json:"challengeId,omitempty"`
}
