package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/workdesk/backoffice/internal/apiserver/database"
	"github.com/workdesk/backoffice/internal/apiserver/idgen"
	"github.com/workdesk/backoffice/internal/apiserver/provision"
	"github.com/workdesk/backoffice/internal/auth/jwt"
	"github.com/workdesk/backoffice/internal/common/cnst"
	"github.com/workdesk/backoffice/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "0123456789abcdef0123456789abcdef"

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// recordingNotifier captures sent notifications for inspection.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingNotifier) Send(ctx context.Context, to, subject, textBody, htmlBody string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, to)
	return nil
}

type testEnv struct {
	router   *gin.Engine
	db       *mockDB
	jwt      *jwt.Service
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newMockDB()
	svc, err := jwt.NewService(jwt.Config{SecretKey: testSecret, Duration: time.Hour})
	require.NoError(t, err)

	gen := idgen.NewGenerator(db)
	clock := fixedClock{t: testNow}
	n := &recordingNotifier{}
	logger := zap.NewNop()
	p := provision.NewProvisioner(db, gen, clock, time.UTC, logger, metrics.New("test"))

	h := NewHandler(db, svc, n, gen, clock, time.UTC, p, logger)
	router := gin.New()
	h.RegisterRoutes(router)

	return &testEnv{router: router, db: db, jwt: svc, notifier: n}
}

// seedUser inserts a user with a bcrypt-hashed password and returns it.
func (e *testEnv) seedUser(t *testing.T, id, username, email, password, role string) *database.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &database.User{ID: id, Username: username, Email: email, Password: string(hashed), Role: role}
	require.NoError(t, e.db.CreateUser(context.Background(), u))
	return u
}

// token mints a JWT for the given user.
func (e *testEnv) token(t *testing.T, u *database.User) string {
	t.Helper()
	token, err := e.jwt.GenerateToken(u.ID, u.Username, u.Role)
	require.NoError(t, err)
	return token
}

// do performs a request with an optional JSON body and bearer token.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
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
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (e *testEnv) seedAdmin(t *testing.T) *database.User {
	return e.seedUser(t, "em-0000", "root", "root@example.com", "rootpass", cnst.RoleSuperAdmin)
}
