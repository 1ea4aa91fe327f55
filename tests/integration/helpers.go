package integration

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/aidar/activity-board/internal/app"
	"github.com/aidar/activity-board/internal/config"
	"github.com/aidar/activity-board/internal/domain"
)

// fakeActivity повторяет форму занятия в Activities API
type fakeActivity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// FakeActivitiesAPI in-memory реализация Activities API для тестов
type FakeActivitiesAPI struct {
	mu         sync.Mutex
	order      []string
	activities map[string]*fakeActivity
	listCalls  int
	down       bool
}

// NewFakeActivitiesAPI создает API с набором занятий по умолчанию
func NewFakeActivitiesAPI() *FakeActivitiesAPI {
	api := &FakeActivitiesAPI{activities: make(map[string]*fakeActivity)}
	api.add("Chess Club", "Learn strategies and compete in chess tournaments", "Fridays, 3:30 PM - 5:00 PM", 12,
		"michael@mergington.edu", "daniel@mergington.edu")
	api.add("Programming Class", "Learn programming fundamentals and build software projects", "Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20,
		"emma@mergington.edu", "sophia@mergington.edu")
	api.add("Art Club", "Explore your creativity through painting and drawing", "Thursdays, 3:30 PM - 5:00 PM", 15)
	return api
}

func (f *FakeActivitiesAPI) add(name, description, schedule string, capacity int, participants ...string) {
	f.order = append(f.order, name)
	f.activities[name] = &fakeActivity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: capacity,
		Participants:    append([]string{}, participants...),
	}
}

// ListCalls возвращает количество запросов GET /activities
func (f *FakeActivitiesAPI) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

// SetDown включает или выключает ответы 503 на все запросы
func (f *FakeActivitiesAPI) SetDown(down bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.down = down
}

// Participants возвращает текущий список участников занятия
func (f *FakeActivitiesAPI) Participants(name string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.activities[name].Participants...)
}

// Handler возвращает HTTP обработчик API
func (f *FakeActivitiesAPI) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			down := f.down
			f.mu.Unlock()
			if down {
				writeJSON(w, http.StatusServiceUnavailable, map[string]string{"detail": "Service unavailable"})
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	r.Get("/activities", f.list)
	r.Post("/activities/{name}/signup", f.signup)
	r.Delete("/activities/{name}/unregister", f.unregister)
	return r
}

func (f *FakeActivitiesAPI) list(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.listCalls++
	activities := make(domain.ActivityCollection, 0, len(f.order))
	for _, name := range f.order {
		a := f.activities[name]
		activities = append(activities, domain.Activity{
			Name:            name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    append([]string{}, a.Participants...),
		})
	}
	f.mu.Unlock()

	// ActivityCollection кодируется как JSON объект с сохранением порядка
	body, err := json.Marshal(activities)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

func (f *FakeActivitiesAPI) signup(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	email := r.URL.Query().Get("email")

	f.mu.Lock()
	defer f.mu.Unlock()

	activity, ok := f.activities[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Activity not found"})
		return
	}
	for _, p := range activity.Participants {
		if p == email {
			writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "Student is already signed up for this activity"})
			return
		}
	}
	activity.Participants = append(activity.Participants, email)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Signed up " + email + " for " + name})
}

func (f *FakeActivitiesAPI) unregister(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	email := r.URL.Query().Get("email")

	f.mu.Lock()
	defer f.mu.Unlock()

	activity, ok := f.activities[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Activity not found"})
		return
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "Unregistered " + email + " from " + name})
			return
		}
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Student is not signed up for this activity"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// TestEnvironment содержит все ресурсы необходимые для интеграционных тестов
type TestEnvironment struct {
	API     *FakeActivitiesAPI
	App     *app.App
	Clock   *clockwork.FakeClock
	BaseURL string
	Client  *http.Client

	apiServer *httptest.Server
	appServer *httptest.Server
}

// SetupTestEnvironment поднимает фейковый Activities API и приложение поверх него
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	fakeAPI := NewFakeActivitiesAPI()
	apiServer := httptest.NewServer(fakeAPI.Handler())

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		API: config.APIConfig{
			BaseURL: apiServer.URL,
			Timeout: 5 * time.Second,
		},
		Session: config.SessionConfig{
			Secret:   "test-session-secret-for-integration-tests",
			TTLHours: 1,
			Cookie:   "board_session",
		},
	}

	clock := clockwork.NewFakeClock()
	application, err := app.New(cfg, app.WithClock(clock))
	require.NoError(t, err, "Failed to create application")
	require.NoError(t, application.Initialize(t.Context()), "Failed to initialize application")

	appServer := httptest.NewServer(application.Handler())

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &TestEnvironment{
		API:       fakeAPI,
		App:       application,
		Clock:     clock,
		BaseURL:   appServer.URL,
		Client:    &http.Client{Jar: jar, Timeout: 10 * time.Second},
		apiServer: apiServer,
		appServer: appServer,
	}
}

// Cleanup очищает все тестовые ресурсы
func (te *TestEnvironment) Cleanup(t *testing.T) {
	t.Helper()
	te.appServer.Close()
	te.apiServer.Close()
}

// GetPage загружает страницу доски и возвращает HTML
func (te *TestEnvironment) GetPage(t *testing.T) string {
	t.Helper()
	resp, err := te.Client.Get(te.BaseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return readBody(t, resp)
}

// PostForm отправляет форму и возвращает HTML страницы после редиректа
func (te *TestEnvironment) PostForm(t *testing.T, path string, values url.Values) string {
	t.Helper()
	resp, err := te.Client.PostForm(te.BaseURL+path, values)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/", resp.Request.URL.Path, "POST should redirect back to the board")
	return readBody(t, resp)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}
