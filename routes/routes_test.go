package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mel-lim/listmaker-backend/config"
	"github.com/mel-lim/listmaker-backend/database"
	"github.com/mel-lim/listmaker-backend/models"
	"github.com/mel-lim/listmaker-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Редис в API-тестах не поднимаем: чёрный список и лимитер при nil-клиенте
// отключаются.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedTemplates(db))

	cfg := &config.Config{JWTSecret: "test-secret", Port: "4000", Env: "test"}
	return SetupRouter(db, nil, cfg), db, cfg
}

func doJSON(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func signupAndLogin(t *testing.T, r *gin.Engine, cfg *config.Config, db *gorm.DB, username string) string {
	t.Helper()
	w := doJSON(r, "POST", "/appusers/signup", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var user models.AppUser
	require.NoError(t, db.Where("username = ?", username).First(&user).Error)
	token, err := utils.GenerateJWT(user.ID, cfg.JWTSecret)
	require.NoError(t, err)
	return token
}

func TestSignupValidation(t *testing.T) {
	r, _, _ := newTestRouter(t)

	// Короткое имя
	w := doJSON(r, "POST", "/appusers/signup", map[string]string{
		"username": "a", "email": "a@example.com", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Плохой email
	w = doJSON(r, "POST", "/appusers/signup", map[string]string{
		"username": "alice", "email": "nope", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Короткий пароль
	w = doJSON(r, "POST", "/appusers/signup", map[string]string{
		"username": "alice", "email": "alice@example.com", "password": "short",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupDuplicateUsername(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/appusers/signup", map[string]string{
		"username": "alice", "email": "other@example.com", "password": "password123",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestLoginAndCookies(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/appusers/login", map[string]string{
		"username": "alice", "password": "password123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cookieExpiry")

	cookies := w.Result().Cookies()
	names := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		names = append(names, cookie.Name)
	}
	assert.Contains(t, names, "token")
	assert.Contains(t, names, "username")
}

func TestLoginWrongPassword(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/appusers/login", map[string]string{
		"username": "alice", "password": "wrongpassword",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "credentials you provided are incorrect")
}

func TestTripRoutesRequireAuth(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := doJSON(r, "GET", "/trips/alltrips", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, "GET", "/trips/alltrips", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewTripAndFetchLists(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	token := signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripName":        "Rogers Pass",
		"tripCategory":    "ski-tour",
		"tripDuration":    "day",
		"requestTemplate": "yes",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		TripID       uint                `json:"tripId"`
		Lists        []models.List       `json:"lists"`
		AllListItems [][]models.ListItem `json:"allListItems"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.TripID)
	require.Len(t, created.Lists, 3)

	w = doJSON(r, "GET", "/trips/1/lists/fetchlists", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gear")
}

func TestNewTripValidation(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	token := signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripCategory": "ski-tour", "tripDuration": "fortnight",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripDuration": "day",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTripOwnershipEnforced(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	aliceToken := signupAndLogin(t, r, cfg, db, "alice")
	bobToken := signupAndLogin(t, r, cfg, db, "bob")

	w := doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripName": "Private", "tripCategory": "hiking", "tripDuration": "day", "requestTemplate": "no",
	}, aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)

	// Чужая поездка: 403
	w = doJSON(r, "PUT", "/trips/1/edittripdetails", map[string]string{
		"editedTripName": "Hijacked",
	}, bobToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Несуществующая: 404
	w = doJSON(r, "PUT", "/trips/999/edittripdetails", map[string]string{
		"editedTripName": "Ghost",
	}, aliceToken)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSaveListsRoundTrip(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	token := signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripName": "Trip", "tripCategory": "hiking", "tripDuration": "day", "requestTemplate": "no",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "POST", "/trips/1/lists/savelists", map[string]interface{}{
		"lists":        []map[string]interface{}{{"id": 1, "title": "Gear"}},
		"allListItems": [][]map[string]string{{{"name": "Rope"}}},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Lists successfully saved")

	w = doJSON(r, "GET", "/trips/1/lists/fetchlists", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rope")
}

func TestCrossListItemTamperReturns403(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	token := signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripName": "Trip", "tripCategory": "hiking", "tripDuration": "day", "requestTemplate": "no",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Lists        []models.List       `json:"lists"`
		AllListItems [][]models.ListItem `json:"allListItems"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.GreaterOrEqual(t, len(created.Lists), 2)

	firstList := created.Lists[0].ID
	secondItem := created.AllListItems[1][0].ID

	// Строка второго списка через маршрут первого
	w = doJSON(r, "PUT",
		fmt.Sprintf("/trips/1/lists/%d/listitems/%d/edit", firstList, secondItem),
		map[string]string{"editedItemName": "Tampered"}, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "This request is not allowed")
}

func TestDeleteTripReturns204(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	token := signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripName": "Trip", "tripCategory": "hiking", "tripDuration": "day", "requestTemplate": "no",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, "DELETE", "/trips/1/deletetrip", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Повторное удаление: поездки уже нет
	w = doJSON(r, "DELETE", "/trips/1/deletetrip", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTryAsGuest(t *testing.T) {
	r, db, _ := newTestRouter(t)

	w := doJSON(r, "POST", "/appusers/tryasguest", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "guestCookieExpiry")

	var guest models.AppUser
	require.NoError(t, db.Where("is_guest = ?", true).First(&guest).Error)
	assert.Contains(t, guest.Username, "guest-")
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	token := signupAndLogin(t, r, cfg, db, "alice")

	w := doJSON(r, "GET", "/admin/appusers", nil, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Выдаём права и пробуем снова
	require.NoError(t, db.Model(&models.AppUser{}).
		Where("username = ?", "alice").
		Update("is_admin", true).Error)

	w = doJSON(r, "GET", "/admin/appusers", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestAdminDeleteAppUserCascades(t *testing.T) {
	r, db, cfg := newTestRouter(t)
	adminToken := signupAndLogin(t, r, cfg, db, "admin")
	require.NoError(t, db.Model(&models.AppUser{}).
		Where("username = ?", "admin").
		Update("is_admin", true).Error)

	victimToken := signupAndLogin(t, r, cfg, db, "victim")
	w := doJSON(r, "POST", "/trips/newtrip", map[string]string{
		"tripName": "Trip", "tripCategory": "hiking", "tripDuration": "day", "requestTemplate": "no",
	}, victimToken)
	require.Equal(t, http.StatusCreated, w.Code)

	var victim models.AppUser
	require.NoError(t, db.Where("username = ?", "victim").First(&victim).Error)

	w = doJSON(r, "DELETE", fmt.Sprintf("/admin/appusers/%d", victim.ID), nil, adminToken)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var count int64
	db.Model(&models.AppUser{}).Where("id = ?", victim.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Trip{}).Count(&count)
	assert.Zero(t, count)
}
