package models

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest creates a new account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

// SendGiftRequest creates a new gift for a recipient.
type SendGiftRequest struct {
	RecipientName  string `json:"recipientName"`
	RecipientPhone string `json:"recipientPhone,omitempty"`
	RecipientEmail string `json:"recipientEmail,omitempty"`

	GiftType             string   `json:"giftType"`
	ChallengeDescription string   `json:"challengeDescription,omitempty"`
	PersonalNote         string   `json:"personalNote,omitempty"`
	Value                *float64 `json:"value,omitempty"`
	Duration             *int     `json:"duration,omitempty"`

	DeliveryMethod    string `json:"deliveryMethod,omitempty"`
	ReminderFrequency string `json:"reminderFrequency,omitempty"`
	VerificationType  string `json:"verificationType,omitempty"`
	CardImage         string `json:"cardImage,omitempty"`
}

// ReviewAction is the verdict sent to the submission review endpoint.
type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

// ReviewRequest is the body of PUT /api/submissions/{id}/review.
type ReviewRequest struct {
	Action          ReviewAction `json:"action"`
	RejectionReason string       `json:"rejectionReason,omitempty"`
}
