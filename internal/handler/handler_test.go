package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"workbrew/internal/middleware"
	"workbrew/internal/models"
	"workbrew/internal/service"
	"workbrew/internal/web"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	csrf "github.com/utrack/gin-csrf"
)

const testSecret = "handler-test-secret"

// MockCafeService is a mock implementation of the CafeService interface
type MockCafeService struct {
	mock.Mock
}

func (m *MockCafeService) List(ctx context.Context, filter models.CafeFilter) (*service.Listing, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Listing), args.Error(1)
}

func (m *MockCafeService) Submit(ctx context.Context, sub service.CafeSubmission) (*models.Cafe, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cafe), args.Error(1)
}

func (m *MockCafeService) Delete(ctx context.Context, id int64) (*models.Cafe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Cafe), args.Error(1)
}

// MockSessionGate is a mock implementation of the SessionGate interface
type MockSessionGate struct {
	mock.Mock
}

func (m *MockSessionGate) Login(ctx context.Context, s sessions.Session, username, password string) error {
	args := m.Called(ctx, s, username, password)
	return args.Error(0)
}

func (m *MockSessionGate) Logout(ctx context.Context, s sessions.Session) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

// newTestEngine wires sessions and the token minting part of CSRF. Token checks are covered by the router tests.
func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	r := gin.New()
	r.HTMLRender = renderer
	r.Use(middleware.Sessions(testSecret))
	r.Use(csrf.Middleware(csrf.Options{
		Secret:        testSecret,
		IgnoreMethods: []string{"GET", "HEAD", "OPTIONS", "POST"},
	}))
	return r
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func parseHTML(t *testing.T, w *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err)
	return doc
}

func texts(sel *goquery.Selection) []string {
	out := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, strings.TrimSpace(s.Text()))
	})
	return out
}
