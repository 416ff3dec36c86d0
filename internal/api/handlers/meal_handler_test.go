package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"daily-diet-api/domain"
	"daily-diet-api/entities"
	"daily-diet-api/internal/api/handlers"
	"daily-diet-api/internal/api/routes"
	"daily-diet-api/internal/middleware"
	"daily-diet-api/pkg/meal"
	"daily-diet-api/pkg/session"
	"daily-diet-api/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users []entities.User
}

func (f *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	f.users = append(f.users, *u)
	return nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepository) GetUserBySessionID(_ context.Context, sessionID uuid.UUID) (*entities.User, error) {
	for i := range f.users {
		if f.users[i].SessionID != nil && *f.users[i].SessionID == sessionID {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeMealRepository struct {
	meals map[uuid.UUID]entities.Meal
}

func newFakeMealRepository() *fakeMealRepository {
	return &fakeMealRepository{meals: make(map[uuid.UUID]entities.Meal)}
}

func (f *fakeMealRepository) CreateMeal(_ context.Context, m *entities.Meal) error {
	m.CreatedAt = time.Now()
	f.meals[m.ID] = *m
	return nil
}

func (f *fakeMealRepository) GetMeals(_ context.Context, userID uuid.UUID, onDiet *bool) ([]entities.Meal, error) {
	var meals []entities.Meal
	for _, m := range f.meals {
		if m.UserID != userID {
			continue
		}
		if onDiet != nil && m.IsOnDiet != *onDiet {
			continue
		}
		meals = append(meals, m)
	}
	sort.Slice(meals, func(i, j int) bool { return meals[i].CreatedAt.Before(meals[j].CreatedAt) })
	return meals, nil
}

func (f *fakeMealRepository) GetMealByID(_ context.Context, id, userID uuid.UUID) (*entities.Meal, error) {
	m, ok := f.meals[id]
	if !ok || m.UserID != userID {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (f *fakeMealRepository) UpdateMeal(_ context.Context, m *entities.Meal) (int64, error) {
	existing, ok := f.meals[m.ID]
	if !ok || existing.UserID != m.UserID {
		return 0, nil
	}
	existing.Name = m.Name
	existing.Description = m.Description
	existing.IsOnDiet = m.IsOnDiet
	f.meals[m.ID] = existing
	return 1, nil
}

func (f *fakeMealRepository) DeleteMeal(_ context.Context, id, userID uuid.UUID) (int64, error) {
	m, ok := f.meals[id]
	if !ok || m.UserID != userID {
		return 0, nil
	}
	delete(f.meals, id)
	return 1, nil
}

func (f *fakeMealRepository) CountMeals(_ context.Context, userID uuid.UUID, onDiet *bool) (int64, error) {
	var count int64
	for _, m := range f.meals {
		if m.UserID != userID {
			continue
		}
		if onDiet != nil && m.IsOnDiet != *onDiet {
			continue
		}
		count++
	}
	return count, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	userRepo := &fakeUserRepository{}
	mealRepo := newFakeMealRepository()
	validate := validator.New()

	cfg := routes.Config{
		App:            fiber.New(),
		UserHandler:    handlers.NewUserHandler(user.NewUserService(userRepo), validate),
		MealHandler:    handlers.NewMealHandler(meal.NewMealService(mealRepo), validate),
		Middleware:     middleware.NewMiddleware(),
		SessionService: session.NewSessionService(userRepo),
	}
	cfg.Setup()
	return cfg.App
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func registerUser(t *testing.T, app *fiber.App, username, email string) string {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/users", fiber.Map{
		"username": username,
		"email":    email,
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	for _, c := range resp.Cookies() {
		if c.Name == domain.SessionCookieName {
			return c.Value
		}
	}
	t.Fatal("session cookie not set on registration")
	return ""
}

type listEnvelope struct {
	Status string                `json:"status"`
	Data   []domain.MealResponse `json:"data"`
}

type mealEnvelope struct {
	Data domain.MealResponse `json:"data"`
}

type summaryEnvelope struct {
	Dados domain.MealSummaryResponse `json:"dados"`
}

func TestRegisterSetsScopedSessionCookie(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/users", fiber.Map{
		"username": "alice",
		"email":    "a@x.com",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == domain.SessionCookieName {
			cookie = c
			break
		}
	}
	require.NotNil(t, cookie, "expected a sessionId cookie")
	assert.Equal(t, domain.SessionCookiePath, cookie.Path)
	assert.Equal(t, int(domain.SessionCookieMaxAge/time.Second), cookie.MaxAge)
	_, err := uuid.Parse(cookie.Value)
	assert.NoError(t, err)
}

func TestRegisterDuplicateContact(t *testing.T) {
	app := newTestApp(t)

	registerUser(t, app, "alice", "a@x.com")

	resp := doJSON(t, app, fiber.MethodPost, "/users", fiber.Map{
		"username": "alice-again",
		"email":    "a@x.com",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsInvalidBody(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/users", fiber.Map{
		"username": "alice",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/users", fiber.Map{
		"username": "alice",
		"email":    "not-an-email",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMealRoutesRejectMissingSession(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/meals"},
		{fiber.MethodGet, "/meals"},
		{fiber.MethodGet, "/meals/summary"},
		{fiber.MethodGet, "/meals/" + uuid.NewString()},
		{fiber.MethodPut, "/meals/" + uuid.NewString()},
		{fiber.MethodDelete, "/meals/" + uuid.NewString()},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			resp := doJSON(t, app, tc.method, tc.path, nil, "")
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestMealRoutesRejectBogusSession(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/meals", nil, "not-a-uuid")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/meals", nil, uuid.NewString())
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMealLifecycle(t *testing.T) {
	app := newTestApp(t)
	cookie := registerUser(t, app, "alice", "a@x.com")

	resp := doJSON(t, app, fiber.MethodPost, "/meals", fiber.Map{
		"name":        "Lunch",
		"description": "rice",
		"isOnDiet":    true,
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/meals", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list listEnvelope
	decodeBody(t, resp, &list)
	assert.Equal(t, "success", list.Status)
	require.Len(t, list.Data, 1)
	assert.Equal(t, "Lunch", list.Data[0].Name)
	assert.Equal(t, "rice", list.Data[0].Description)
	assert.True(t, list.Data[0].IsOnDiet)

	mealID := list.Data[0].ID

	resp = doJSON(t, app, fiber.MethodGet, "/meals/summary", nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var summary summaryEnvelope
	decodeBody(t, resp, &summary)
	assert.Equal(t, int64(1), summary.Dados.CountAllMeals)
	assert.Equal(t, int64(1), summary.Dados.DietMeals)
	assert.Equal(t, int64(0), summary.Dados.NonDietMeals)
	require.Len(t, summary.Dados.BestOnDietMeals, 1)
	assert.Equal(t, mealID, summary.Dados.BestOnDietMeals[0].ID)

	resp = doJSON(t, app, fiber.MethodPut, "/meals/"+mealID, fiber.Map{
		"name":        "Late lunch",
		"description": "rice and beans",
		"isOnDiet":    false,
	}, cookie)
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/meals/"+mealID, nil, cookie)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var single mealEnvelope
	decodeBody(t, resp, &single)
	assert.Equal(t, "Late lunch", single.Data.Name)
	assert.Equal(t, "rice and beans", single.Data.Description)
	assert.False(t, single.Data.IsOnDiet)

	resp = doJSON(t, app, fiber.MethodDelete, "/meals/"+mealID, nil, cookie)
	require.Equal(t, fiber.StatusAccepted, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(raw), mealID)

	resp = doJSON(t, app, fiber.MethodGet, "/meals/"+mealID, nil, cookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/meals/"+mealID, nil, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMealsInvisibleAcrossUsers(t *testing.T) {
	app := newTestApp(t)
	aliceCookie := registerUser(t, app, "alice", "a@x.com")
	bobCookie := registerUser(t, app, "bob", "b@x.com")

	resp := doJSON(t, app, fiber.MethodPost, "/meals", fiber.Map{
		"name":        "Dinner",
		"description": "soup",
	}, aliceCookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/meals", nil, aliceCookie)
	var list listEnvelope
	decodeBody(t, resp, &list)
	require.Len(t, list.Data, 1)
	mealID := list.Data[0].ID

	resp = doJSON(t, app, fiber.MethodGet, "/meals/"+mealID, nil, bobCookie)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, "/meals/"+mealID, nil, bobCookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/meals", nil, bobCookie)
	decodeBody(t, resp, &list)
	assert.Empty(t, list.Data)
}

func TestCreateMealRejectsInvalidBody(t *testing.T) {
	app := newTestApp(t)
	cookie := registerUser(t, app, "alice", "a@x.com")

	resp := doJSON(t, app, fiber.MethodPost, "/meals", fiber.Map{
		"description": "rice",
	}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateMealRequiresAllFields(t *testing.T) {
	app := newTestApp(t)
	cookie := registerUser(t, app, "alice", "a@x.com")

	resp := doJSON(t, app, fiber.MethodPost, "/meals", fiber.Map{
		"name":        "Lunch",
		"description": "rice",
	}, cookie)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/meals", nil, cookie)
	var list listEnvelope
	decodeBody(t, resp, &list)
	require.Len(t, list.Data, 1)

	// the diet flag is part of the full replace and may not be omitted
	resp = doJSON(t, app, fiber.MethodPut, "/meals/"+list.Data[0].ID, fiber.Map{
		"name":        "Lunch",
		"description": "rice",
	}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateUnknownMeal(t *testing.T) {
	app := newTestApp(t)
	cookie := registerUser(t, app, "alice", "a@x.com")

	resp := doJSON(t, app, fiber.MethodPut, "/meals/"+uuid.NewString(), fiber.Map{
		"name":        "x",
		"description": "y",
		"isOnDiet":    true,
	}, cookie)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPing(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/ping", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
