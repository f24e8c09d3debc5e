package router_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	appuser "userapi/internal/app/user"
	"userapi/internal/config"
	"userapi/internal/db"
	"userapi/internal/db/dbtest"
	"userapi/internal/db/repository"
	"userapi/internal/http/handlers/greeting"
	"userapi/internal/http/handlers/health"
	userhandler "userapi/internal/http/handlers/user"
	"userapi/internal/http/router"
	"userapi/internal/logging"
)

type testServer struct {
	router chi.Router
	client *db.Client
	logs   *observer.ObservedLogs
	count  func() int
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	core, logs := observer.New(zap.DebugLevel)
	logger := logging.FromZap(zap.New(core))

	client, raw := dbtest.NewClient(t, dbtest.Config(), logger)
	svc := appuser.NewService(repository.NewUserRepository(client, logger), nil, logger)

	r := router.NewRouter(
		logger,
		config.HTTPConfig{RequestTimeout: 5 * time.Second, MaxBodyBytes: 1024, MaxJSONBodyBytes: 256},
		greeting.NewHandler(),
		health.NewHandler(client, logger),
		userhandler.NewHandler(svc, logger),
	)

	return &testServer{
		router: r,
		client: client,
		logs:   logs,
		count:  func() int { return dbtest.CountUsers(t, raw) },
	}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	return s.send(method, path, "", body)
}

func (s *testServer) send(method, path, contentType, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) createUser(body string) *httptest.ResponseRecorder {
	return s.send(http.MethodPost, "/user", "application/json", body)
}

func TestGreetingRoutes(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello world!", w.Body.String())

	w = s.do(http.MethodGet, "/hey", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hey there!", w.Body.String())

	w = s.do(http.MethodPost, "/echo", "abc")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc", w.Body.String())

	w = s.do(http.MethodPost, "/echo", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestHello_ConcurrentRequests(t *testing.T) {
	s := newTestServer(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := s.do(http.MethodGet, "/", "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "Hello world!", w.Body.String())
		}()
	}
	wg.Wait()
}

func TestEcho_BodyOverLimit(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/echo", strings.Repeat("x", 2048))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestCreateUser_PersistsRow(t *testing.T) {
	s := newTestServer(t)

	w := s.createUser(`{"name":"Ann","email":"ann@x.io"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp userhandler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Positive(t, resp.ID)
	assert.Equal(t, "Ann", resp.Name)
	assert.Equal(t, "ann@x.io", resp.Email)
	assert.Equal(t, 1, s.count())

	w = s.createUser(`{"name":"Bob","email":"bob@x.io"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var second userhandler.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &second))
	assert.NotEqual(t, resp.ID, second.ID)
	assert.Equal(t, 2, s.count())
}

func TestCreateUser_MalformedBodyInsertsNothing(t *testing.T) {
	s := newTestServer(t)

	bodies := []string{
		`{"name":"Ann"}`,
		`{"email":"ann@x.io"}`,
		`not json`,
		`{"name":1,"email":"ann@x.io"}`,
		``,
	}
	for _, body := range bodies {
		w := s.createUser(body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Equal(t, 0, s.count())
}

func TestCreateUser_RequiresJSONContentType(t *testing.T) {
	s := newTestServer(t)
	body := `{"name":"Ann","email":"ann@x.io"}`

	for _, ct := range []string{"", "text/plain", "application/x-www-form-urlencoded"} {
		w := s.send(http.MethodPost, "/user", ct, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, ct)
		assert.Equal(t, "Invalid JSON payload.", w.Body.String())
	}
	assert.Equal(t, 0, s.count())

	w := s.send(http.MethodPost, "/user", "application/json; charset=utf-8", body)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, s.count())
}

func TestCreateUser_KeysAreCaseSensitive(t *testing.T) {
	s := newTestServer(t)

	for _, body := range []string{
		`{"NAME":"Bob","EMAIL":"b@x.io"}`,
		`{"Name":"Bob","email":"b@x.io"}`,
		`{"name":"Bob","Email":"b@x.io"}`,
	} {
		w := s.createUser(body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Equal(t, 0, s.count())
}

func TestCreateUser_BodyOverJSONLimit(t *testing.T) {
	s := newTestServer(t)

	// Under the general limit, over the one for JSON bodies.
	w := s.createUser(`{"name":"` + strings.Repeat("x", 512) + `","email":"e"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, 0, s.count())

	w = s.do(http.MethodPost, "/echo", strings.Repeat("x", 512))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUser_DatabaseUnavailable(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.client.Close())

	w := s.createUser(`{"name":"Ann","email":"ann@x.io"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Database connection error", w.Body.String())
	assert.NotZero(t, s.logs.FilterMessage("connection error").Len())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","db":"ok"}`, w.Body.String())

	require.NoError(t, s.client.Close())
	w = s.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSwaggerDoc(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/user"`)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/user", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = s.do(http.MethodDelete, "/", "")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRequestsAreLogged(t *testing.T) {
	s := newTestServer(t)

	s.do(http.MethodGet, "/hey", "")

	entries := s.logs.FilterMessage("http_request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/hey", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestPanicIsRecovered(t *testing.T) {
	s := newTestServer(t)
	s.router.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	w := s.do(http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = s.do(http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
