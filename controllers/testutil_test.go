package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/humspot/api-go/config"
	"github.com/humspot/api-go/middleware"
	"github.com/humspot/api-go/models"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	mailer *recorderMailer
	auth   *AuthController
}

// setupTestEnv builds a router backed by an in-memory database. The route
// table mirrors routes.SetupRoutes; the routes package itself can't be
// imported from here without a cycle.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	mailer := &recorderMailer{}

	authController := NewAuthController(db)
	userController := NewUserController(db)
	activityController := NewActivityController(db)
	interactionController := NewInteractionController(db)
	ratingController := NewRatingController(db)
	commentController := NewCommentController(db)
	submissionController := NewSubmissionController(db, mailer, activityController)

	r := gin.New()

	public := r.Group("/api")
	{
		public.POST("/auth/google", authController.GoogleLogin)
		public.POST("/auth/guest", authController.GuestLogin)
	}

	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)
		protected.PUT("/profile", authController.UpdateProfile)

		protected.PUT("/admin/users/:userId/status", userController.UpdateAccountStatus)
		protected.PUT("/admin/users/:userId/type", userController.UpdateAccountType)

		activities := protected.Group("/activities")
		{
			activities.POST("/events", activityController.CreateEvent)
			activities.POST("/attractions", activityController.CreateAttraction)
			activities.GET("/events/page/:page", activityController.GetEventsPage)
			activities.GET("/attractions/page/:page", activityController.GetAttractionsPage)
			activities.GET("/:activityId", activityController.GetActivity)
			activities.DELETE("/:activityId", activityController.DeleteActivity)

			activities.POST("/:activityId/favorite", interactionController.ToggleFavorite)
			activities.POST("/:activityId/visited", interactionController.ToggleVisited)
			activities.POST("/:activityId/rsvp", interactionController.ToggleRSVP)
			activities.GET("/:activityId/interactions", interactionController.GetInteractionStatus)

			activities.POST("/:activityId/rating", ratingController.SubmitRating)
			activities.GET("/:activityId/rating", ratingController.GetMyRating)

			activities.POST("/:activityId/comments", commentController.AddComment)
			activities.GET("/:activityId/comments/:page", commentController.GetActivityComments)
		}

		me := protected.Group("/users/me")
		{
			me.GET("/favorites/:page", interactionController.GetMyFavorites)
			me.GET("/visited/:page", interactionController.GetMyVisited)
			me.GET("/rsvps/:page", interactionController.GetMyRSVPs)
		}

		protected.DELETE("/comments/:commentId", commentController.DeleteComment)

		protected.POST("/submissions", submissionController.CreateSubmission)
		protected.GET("/admin/submissions/page/:page", submissionController.ListPending)
		protected.POST("/admin/submissions/:submissionId/approve", submissionController.ApproveSubmission)
		protected.POST("/admin/submissions/:submissionId/deny", submissionController.DenySubmission)
	}

	return &testEnv{
		router: r,
		db:     db,
		mailer: mailer,
		auth:   authController,
	}
}

// createUser inserts a user row and returns it with a signed access token.
func (env *testEnv) createUser(t *testing.T, accountType, accountStatus string) (*models.User, string) {
	t.Helper()

	id := uuid.New().String()
	email := fmt.Sprintf("%s@example.com", id[:8])
	user := models.User{
		ID:            id,
		Username:      "user_" + id[:8],
		Email:         &email,
		AccountType:   accountType,
		AccountStatus: accountStatus,
		AuthProvider:  "google",
	}

	if err := env.db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	token, err := generateAccessToken(&user)
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return &user, token
}

func (env *testEnv) createActivity(t *testing.T, name, activityType string) *models.Activity {
	t.Helper()

	activity := models.Activity{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  "a " + activityType,
		Location:     "Arcata, CA",
		ActivityType: activityType,
	}
	if err := env.db.Create(&activity).Error; err != nil {
		t.Fatalf("failed to create test activity: %v", err)
	}
	return &activity
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSONMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func assertStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("expected status %d, got %d: %s", want, w.Code, w.Body.String())
	}
}

func (env *testEnv) countRows(t *testing.T, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()

	var count int64
	q := env.db.Model(model)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&count).Error; err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	return count
}

type sentMail struct {
	kind         string
	to           string
	activityName string
	note         string
}

// recorderMailer captures notifications instead of sending them. Sends
// happen on background goroutines, so reads go through waitForMail.
type recorderMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *recorderMailer) record(mail sentMail) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, mail)
}

func (m *recorderMailer) SubmissionReceived(to, activityName string) error {
	m.record(sentMail{kind: "received", to: to, activityName: activityName})
	return nil
}

func (m *recorderMailer) SubmissionApproved(to, activityName, message string) error {
	m.record(sentMail{kind: "approved", to: to, activityName: activityName, note: message})
	return nil
}

func (m *recorderMailer) SubmissionDenied(to, activityName, reason string) error {
	m.record(sentMail{kind: "denied", to: to, activityName: activityName, note: reason})
	return nil
}

func (m *recorderMailer) snapshot() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]sentMail, len(m.sent))
	copy(out, m.sent)
	return out
}

// waitForMail polls until n mails have been recorded or the deadline hits.
func (m *recorderMailer) waitForMail(t *testing.T, n int) []sentMail {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := m.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(10 * time.Millisecond)
	}

	got := m.snapshot()
	t.Fatalf("expected %d mails, got %d", n, len(got))
	return nil
}
