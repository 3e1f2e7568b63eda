package models

// APIResponse is the minimal envelope every endpoint can produce; failing
// calls return it with Success=false and a human-readable Message.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is returned by login and signup.
type AuthResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// UserResponse is returned by /api/auth/me.
type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// GiftListResponse is returned by the sent and received listing endpoints.
type GiftListResponse struct {
	Success bool   `json:"success"`
	Gifts   []Gift `json:"gifts"`
}

// ApprovalListResponse is returned by /api/my-pending-approvals.
type ApprovalListResponse struct {
	Success          bool              `json:"success"`
	PendingApprovals []PendingApproval `json:"pendingApprovals"`
	Count            int               `json:"count"`
}

// SendGiftResult is returned when a gift is created.
type SendGiftResult struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	TrackingID string `json:"trackingId,omitempty"`
	Sender     string `json:"sender,omitempty"`
	Note       string `json:"note,omitempty"`
}

// SubmissionData describes a stored challenge submission.
type SubmissionData struct {
	SubmissionID string `json:"submissionId"`
	PhotoURL     string `json:"photoUrl"`
	Status       string `json:"status"`
}

// SubmissionResult is returned by the challenge photo upload. Success
// reflects the server's own verdict and must be checked even on 2xx.
type SubmissionResult struct {
	Success bool            `json:"success"`
	Data    *SubmissionData `json:"data,omitempty"`
}
