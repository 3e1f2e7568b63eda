package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"github.com/badgergram/badgerclient/internal/models"
	"github.com/badgergram/badgerclient/internal/token"
)

// ---- helpers ----

func newStore(t *testing.T, tok string) *token.Store {
	t.Helper()
	ctx := context.Background()
	repo := token.NewMemoryRepository()
	if tok != "" {
		require.NoError(t, repo.Save(ctx, tok))
	}
	s, err := token.NewStore(ctx, repo)
	require.NoError(t, err)
	return s
}

func newTestClient(t *testing.T, handler http.Handler, tok string) (*HTTPClient, *token.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	store := newStore(t, tok)
	return NewHTTPClient(srv.URL, store), store
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	require.NoError(t, err)
}

// ---- auth operations ----

func TestLogin_Success_StoresTokenAndReturnsUser(t *testing.T) {
	r := mux.NewRouter()
	var gotAuth, gotRequestID, gotContentType string
	r.HandleFunc("/api/login", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		gotRequestID = req.Header.Get("X-Request-ID")
		gotContentType = req.Header.Get("Content-Type")

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(req.Body).Decode(&creds))
		require.Equal(t, "dana@example.com", creds.Email)

		writeJSON(t, w, http.StatusOK,
			`{"success":true,"token":"tok-123","user":{"id":"u1","name":"Dana","email":"dana@example.com"}}`)
	}).Methods(http.MethodPost)

	c, store := newTestClient(t, r, "")

	user, err := c.Login(context.Background(), "dana@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "Dana", user.Name)

	// login never carries a bearer token, but is traced like any call
	require.Empty(t, gotAuth)
	require.NotEmpty(t, gotRequestID)
	require.Equal(t, "application/json", gotContentType)

	tok, ok := store.Token()
	require.True(t, ok)
	require.Equal(t, "tok-123", tok)
}

func TestLogin_BadCredentials_ServerErrorWithMessage(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/login", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, `{"success":false,"message":"invalid email or password"}`)
	}).Methods(http.MethodPost)

	c, store := newTestClient(t, r, "")

	_, err := c.Login(context.Background(), "dana@example.com", "wrong")
	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, http.StatusUnauthorized, srvErr.StatusCode)
	require.Equal(t, "invalid email or password", srvErr.Message)

	_, ok := store.Token()
	require.False(t, ok)
}

func TestSignup_Created_StoresToken(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/signup", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusCreated,
			`{"success":true,"token":"tok-new","user":{"id":"u2","name":"Sam","email":"sam@example.com"}}`)
	}).Methods(http.MethodPost)

	c, store := newTestClient(t, r, "")

	user, err := c.Signup(context.Background(), models.SignupRequest{Name: "Sam", Email: "sam@example.com", Password: "pw"})
	require.NoError(t, err)
	require.Equal(t, "u2", user.ID)

	tok, ok := store.Token()
	require.True(t, ok)
	require.Equal(t, "tok-new", tok)
}

func TestCurrentUser_SendsBearerToken(t *testing.T) {
	r := mux.NewRouter()
	var gotAuth string
	r.HandleFunc("/api/auth/me", func(w http.ResponseWriter, req *http.Request) {
		gotAuth = req.Header.Get("Authorization")
		writeJSON(t, w, http.StatusOK, `{"success":true,"user":{"id":"u1","name":"Dana","email":"dana@example.com"}}`)
	}).Methods(http.MethodGet)

	c, _ := newTestClient(t, r, "tok-123")

	user, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)
	require.Equal(t, "Bearer tok-123", gotAuth)
}

func TestLogout_ClearsTokenEvenWhenServerFails(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, `{"success":false,"message":"session backend down"}`)
	}).Methods(http.MethodPost)

	c, store := newTestClient(t, r, "tok-123")

	err := c.Logout(context.Background())
	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)

	_, ok := store.Token()
	require.False(t, ok)
}

// ---- outcome classification ----

func TestUnauthorized_ClearsTokenOnAnyAuthedOperation(t *testing.T) {
	tests := []struct {
		name   string
		status int
		call   func(c *HTTPClient) error
	}{
		{"401 on sent gifts", http.StatusUnauthorized, func(c *HTTPClient) error {
			_, err := c.ListSentGifts(context.Background())
			return err
		}},
		{"403 on received gifts", http.StatusForbidden, func(c *HTTPClient) error {
			_, err := c.ListReceivedGifts(context.Background())
			return err
		}},
		{"401 on review", http.StatusUnauthorized, func(c *HTTPClient) error {
			return c.ReviewSubmission(context.Background(), "sub-1", models.ReviewActionApprove, "")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				writeJSON(t, w, tt.status, `{"success":false,"message":"token expired"}`)
			})
			c, store := newTestClient(t, h, "stale-token")

			err := tt.call(c)
			require.ErrorIs(t, err, ErrUnauthorized)

			_, ok := store.Token()
			require.False(t, ok)
		})
	}
}

func TestServerError_UsesBodyMessage(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusConflict, `{"success":false,"message":"gift already reviewed"}`)
	})
	c, _ := newTestClient(t, h, "tok")

	err := c.ReviewSubmission(context.Background(), "sub-1", models.ReviewActionApprove, "")
	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, "gift already reviewed", srvErr.Message)
	require.Equal(t, http.StatusConflict, srvErr.StatusCode)
}

func TestServerError_FallsBackToOperationDefault(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>502 Bad Gateway</html>")
	})
	c, _ := newTestClient(t, h, "tok")

	_, err := c.ListSentGifts(context.Background())
	var srvErr *ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, "could not load sent gifts", srvErr.Message)
}

func TestTransportFailure_IsInvalidResponse(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // nothing is listening anymore

	c := NewHTTPClient(srv.URL, newStore(t, "tok"))

	_, err := c.ListSentGifts(context.Background())
	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestDecodingFailure_After2xx(t *testing.T) {
	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, "not json at all")
	})
	c, _ := newTestClient(t, h, "tok")

	_, err := c.ListSentGifts(context.Background())
	require.ErrorIs(t, err, ErrDecoding)
}

// ---- gift listings ----

func TestListSentGifts_DecodesDurationVariants(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/honey-badgers", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":true,"gifts":[
			{"id":"g1","giftType":"challenge","status":"pending","createdAt":"2026-08-01T00:00:00Z","duration":"7"},
			{"id":"g2","giftType":"challenge","status":"pending","createdAt":"2026-08-02T00:00:00Z","duration":14},
			{"id":"g3","giftType":"surprise","status":"delivered","createdAt":"2026-08-03T00:00:00Z","duration":"whenever"},
			{"id":"g4","giftType":"surprise","status":"delivered","createdAt":"2026-08-04T00:00:00Z"}
		]}`)
	}).Methods(http.MethodGet)

	c, _ := newTestClient(t, r, "tok")

	gifts, err := c.ListSentGifts(context.Background())
	require.NoError(t, err)
	require.Len(t, gifts, 4)

	d, ok := gifts[0].Duration.Int()
	require.True(t, ok)
	require.Equal(t, 7, d)

	d, ok = gifts[1].Duration.Int()
	require.True(t, ok)
	require.Equal(t, 14, d)

	_, ok = gifts[2].Duration.Int()
	require.False(t, ok)
	_, ok = gifts[3].Duration.Int()
	require.False(t, ok)
}

func TestListPendingApprovals(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/my-pending-approvals", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":true,"count":2,"pendingApprovals":[
			{"submissionId":"sub-1","photoUrl":"https://cdn/p1.jpg","submittedAt":"2026-08-10T08:00:00Z","giftId":"g1","giftType":"challenge"},
			{"submissionId":"sub-2","photoUrl":"https://cdn/p2.jpg","submittedAt":"2026-08-11T09:00:00Z","giftId":"g2","giftType":"challenge"}
		]}`)
	}).Methods(http.MethodGet)

	c, _ := newTestClient(t, r, "tok")

	approvals, err := c.ListPendingApprovals(context.Background())
	require.NoError(t, err)
	require.Len(t, approvals, 2)
	require.Equal(t, "sub-1", approvals[0].SubmissionID)
	require.Equal(t, "sub-2", approvals[1].SubmissionID)
}

// ---- mutations ----

func TestSendGift(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/send-honey-badger", func(w http.ResponseWriter, req *http.Request) {
		var body models.SendGiftRequest
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		require.Equal(t, "Dana", body.RecipientName)
		require.Equal(t, "challenge", body.GiftType)

		writeJSON(t, w, http.StatusCreated, `{"success":true,"trackingId":"trk-9","sender":"Sam"}`)
	}).Methods(http.MethodPost)

	c, _ := newTestClient(t, r, "tok")

	res, err := c.SendGift(context.Background(), models.SendGiftRequest{RecipientName: "Dana", GiftType: "challenge"})
	require.NoError(t, err)
	require.Equal(t, "trk-9", res.TrackingID)
}

func TestReviewSubmission_PathAndBody(t *testing.T) {
	r := mux.NewRouter()
	var gotID string
	var gotBody models.ReviewRequest
	r.HandleFunc("/api/submissions/{id}/review", func(w http.ResponseWriter, req *http.Request) {
		gotID = mux.Vars(req)["id"]
		require.NoError(t, json.NewDecoder(req.Body).Decode(&gotBody))
		writeJSON(t, w, http.StatusOK, `{"success":true}`)
	}).Methods(http.MethodPut)

	c, _ := newTestClient(t, r, "tok")

	err := c.ReviewSubmission(context.Background(), "sub-42", models.ReviewActionReject, "photo is too dark")
	require.NoError(t, err)
	require.Equal(t, "sub-42", gotID)
	require.Equal(t, models.ReviewActionReject, gotBody.Action)
	require.Equal(t, "photo is too dark", gotBody.RejectionReason)
}

func TestSubmitChallengePhoto_Multipart(t *testing.T) {
	r := mux.NewRouter()
	var gotTrackingID, gotFilename string
	var gotPhoto []byte
	r.HandleFunc("/api/gifts/{trackingId}/submit-challenge", func(w http.ResponseWriter, req *http.Request) {
		gotTrackingID = mux.Vars(req)["trackingId"]

		file, header, err := req.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename
		gotPhoto, err = io.ReadAll(file)
		require.NoError(t, err)

		writeJSON(t, w, http.StatusCreated,
			`{"success":true,"data":{"submissionId":"sub-77","photoUrl":"https://cdn/p77.jpg","status":"pending_approval"}}`)
	}).Methods(http.MethodPost)

	c, _ := newTestClient(t, r, "tok")

	res, err := c.SubmitChallengePhoto(context.Background(), "trk-9", []byte{0xFF, 0xD8, 0xFF}, "proof.jpg")
	require.NoError(t, err)
	require.True(t, res.Success)
	require.NotNil(t, res.Data)
	require.Equal(t, "sub-77", res.Data.SubmissionID)

	require.Equal(t, "trk-9", gotTrackingID)
	require.Equal(t, "proof.jpg", gotFilename)
	require.Equal(t, []byte{0xFF, 0xD8, 0xFF}, gotPhoto)
}

func TestSubmitChallengePhoto_ServerSaysNo(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/gifts/{trackingId}/submit-challenge", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK, `{"success":false}`)
	}).Methods(http.MethodPost)

	c, _ := newTestClient(t, r, "tok")

	res, err := c.SubmitChallengePhoto(context.Background(), "trk-9", []byte("img"), "")
	require.NoError(t, err)
	require.False(t, res.Success)
}

// ---- scenario: login then fetch profile with the stored token ----

func TestLoginThenCurrentUser_SameIdentity(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/api/login", func(w http.ResponseWriter, req *http.Request) {
		writeJSON(t, w, http.StatusOK,
			`{"success":true,"token":"tok-xyz","user":{"id":"u1","name":"Dana","email":"dana@example.com"}}`)
	}).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/me", func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("Authorization") != "Bearer tok-xyz" {
			writeJSON(t, w, http.StatusUnauthorized, `{"success":false,"message":"unauthorized"}`)
			return
		}
		writeJSON(t, w, http.StatusOK, `{"success":true,"user":{"id":"u1","name":"Dana","email":"dana@example.com"}}`)
	}).Methods(http.MethodGet)

	c, _ := newTestClient(t, r, "")

	loggedIn, err := c.Login(context.Background(), "dana@example.com", "pw")
	require.NoError(t, err)

	me, err := c.CurrentUser(context.Background())
	require.NoError(t, err)
	require.Equal(t, loggedIn.ID, me.ID)
}
