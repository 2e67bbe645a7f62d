package handlers

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"meetline/internal/config"
	"meetline/internal/domain"
	"meetline/internal/meeting"
	"meetline/internal/services"
)

func testRouter(t *testing.T) *echo.Echo {
	t.Helper()

	path := filepath.Join(t.TempDir(), "meetline.db")
	sqlDB, err := sql.Open("sqlite", path)
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        path,
		Conn:       sqlDB,
	}, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Meeting{}))

	emailService := services.NewEmailService(&config.EmailConfig{Enabled: false})
	catalog := meeting.NewCatalog("http://localhost:8080")

	e := echo.New()
	NewMeetingHandler(services.NewMeetingService(db, emailService)).Register(e)
	NewReferenceHandler(services.NewReferenceService(catalog)).Register(e)
	NewHealthHandler(services.NewHealthService("meetline-api")).Register(e)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func validCreateBody() string {
	return `{
		"firstName": "Ann",
		"lastName": "Lee",
		"email": "ann@x.com",
		"contactMethod": 1,
		"contactValue": "+989121111111",
		"scheduleDate": "2999-01-01T00:00:00.000Z",
		"scheduleTime": 1,
		"purpose": "Apartment viewing"
	}`
}

func TestCreateMeeting(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodPost, "/meetings", validCreateBody())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode(t, rec)
	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "response must use the data envelope")
	assert.NotZero(t, data["id"])
	assert.Equal(t, "Ann", data["firstName"])
	assert.Equal(t, "+989121111111", data["contactValue"])
	assert.Equal(t, float64(1), data["scheduleTime"])
	assert.Nil(t, data["updatedAt"])
}

func TestCreateMeetingRejectsPastDate(t *testing.T) {
	e := testRouter(t)

	body := strings.Replace(validCreateBody(), "2999-01-01", "2020-01-01", 1)
	rec := doJSON(e, http.MethodPost, "/meetings", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Scheduled date and time must be in the future", decode(t, rec)["message"])
}

func TestCreateMeetingSchemaFailure(t *testing.T) {
	e := testRouter(t)

	body := `{
		"firstName": "",
		"lastName": "Lee",
		"email": "nope",
		"contactMethod": 99,
		"contactValue": "+989121111111",
		"scheduleDate": "2999-01-01T00:00:00.000Z",
		"scheduleTime": 1,
		"purpose": ""
	}`
	rec := doJSON(e, http.MethodPost, "/meetings", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decode(t, rec)
	fieldErrs, ok := resp["error"].([]any)
	require.True(t, ok, "validation failures carry the field list")
	assert.Len(t, fieldErrs, 3)

	msg, _ := resp["message"].(string)
	assert.Contains(t, msg, "First name is required")
	assert.Contains(t, msg, "Invalid email address")
	assert.Contains(t, msg, "Invalid contact method")
}

func TestCreateMeetingMalformedBody(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodPost, "/meetings", `{"firstName": `)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decode(t, rec)["message"])
}

func TestGetMeeting(t *testing.T) {
	e := testRouter(t)

	created := decode(t, doJSON(e, http.MethodPost, "/meetings", validCreateBody()))
	id := created["data"].(map[string]any)["id"].(float64)

	rec := doJSON(e, http.MethodGet, fmt.Sprintf("/meetings/%d", int(id)), "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, id, data["id"])
	assert.Equal(t, "+989121111111", data["contactValue"])
}

func TestGetMeetingFormView(t *testing.T) {
	e := testRouter(t)

	created := decode(t, doJSON(e, http.MethodPost, "/meetings", validCreateBody()))
	id := created["data"].(map[string]any)["id"].(float64)

	rec := doJSON(e, http.MethodGet, fmt.Sprintf("/meetings/%d?view=form", int(id)), "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, "phone", data["contactMethod"])
	assert.Equal(t, "+98 912 111 1111", data["contactValue"])
	assert.Equal(t, "2999-01-01", data["scheduleDate"])
	assert.Equal(t, "1", data["scheduleTime"])
}

func TestGetMeetingNotFound(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodGet, "/meetings/12345", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Meeting not found", decode(t, rec)["message"])
}

func TestGetMeetingInvalidID(t *testing.T) {
	e := testRouter(t)

	for _, id := range []string{"abc", "-1", "1.5"} {
		rec := doJSON(e, http.MethodGet, "/meetings/"+id, "")
		require.Equal(t, http.StatusBadRequest, rec.Code, "id %q", id)
		assert.Equal(t, "Invalid meeting ID", decode(t, rec)["message"])
	}
}

func TestUpdateMeeting(t *testing.T) {
	e := testRouter(t)

	created := decode(t, doJSON(e, http.MethodPost, "/meetings", validCreateBody()))
	id := int(created["data"].(map[string]any)["id"].(float64))

	body := `{
		"firstName": "Ann",
		"lastName": "Lee",
		"email": "ann@x.com",
		"contactMethod": 3,
		"contactValue": "@ann_lee",
		"scheduleDate": "2999-02-02T00:00:00.000Z",
		"scheduleTime": 4,
		"purpose": "Rescheduled viewing"
	}`
	rec := doJSON(e, http.MethodPut, fmt.Sprintf("/meetings/%d", id), body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	data := decode(t, rec)["data"].(map[string]any)
	assert.Equal(t, float64(3), data["contactMethod"])
	assert.Equal(t, "@ann_lee", data["contactValue"])
	assert.Equal(t, float64(4), data["scheduleTime"])
	assert.NotNil(t, data["updatedAt"])
}

func TestUpdateMeetingNotFound(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodPut, "/meetings/999", validCreateBody())
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Meeting not found", decode(t, rec)["message"])
}

func TestContactMethodsEndpoint(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodGet, "/contact-methods", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := decode(t, rec)["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 6)

	first := data[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "Phone (Call & SMS)", first["label"])
	assert.Equal(t, "http://localhost:8080/images/phone.png", first["icon"])

	last := data[5].(map[string]any)
	assert.Equal(t, float64(6), last["id"])
	assert.Equal(t, "IMO", last["label"])
}

func TestScheduleTimesEndpoint(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodGet, "/schedule-times", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data, ok := decode(t, rec)["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 4)

	first := data[0].(map[string]any)
	assert.Equal(t, float64(1), first["id"])
	assert.Equal(t, "03:00 pm - 04:00 pm", first["label"])
}

func TestHealthEndpoint(t *testing.T) {
	e := testRouter(t)

	rec := doJSON(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "meetline-api", body["service"])
}
