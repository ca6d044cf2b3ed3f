package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/config"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/models"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/service"
	"github.com/pchukwuemeka424/famGuard-sub003/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockCaptureScheduler, *mocks.MockIncidentService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	captureMock := mocks.NewMockCaptureScheduler(ctrl)
	incidentMock := mocks.NewMockIncidentService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{}

	handler := NewHandler(captureMock, incidentMock, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return captureMock, incidentMock, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIngestFix_Accepted(t *testing.T) {
	captureMock, _, router := newTestHandler(t)
	reqBody := LocationFixRequest{
		Latitude:  40.71,
		Longitude: -74.0,
		Accuracy:  15.0,
	}

	captureMock.EXPECT().
		HandleFix(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fix models.LocationFix) error {
			assert.Equal(t, reqBody.Latitude, fix.Latitude)
			assert.Equal(t, reqBody.Longitude, fix.Longitude)
			return nil
		}).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/location", bytes.NewReader(body))

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestIngestFix_ImplausibleCoordinates(t *testing.T) {
	captureMock, _, router := newTestHandler(t)
	reqBody := LocationFixRequest{Latitude: 0.00001, Longitude: 0.00001}

	captureMock.EXPECT().
		HandleFix(gomock.Any(), gomock.Any()).
		Return(service.ErrInvalidFix).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/location", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestFix_ValidationFailed(t *testing.T) {
	// Широта вне диапазона отбрасывается еще на валидации DTO
	_, _, router := newTestHandler(t)

	body, _ := json.Marshal(LocationFixRequest{Latitude: 95.0, Longitude: 10.0})
	w := makeRequest(router, http.MethodPost, "/api/v1/location", bytes.NewReader(body))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngestFix_InvalidJSON(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/location", bytes.NewBufferString("{not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetSharing_Success(t *testing.T) {
	captureMock, _, router := newTestHandler(t)

	captureMock.EXPECT().
		SetSharing(gomock.Any(), false).
		Return(nil).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/sharing", bytes.NewBufferString(`{"enabled": false}`))

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp["sharing_enabled"])
}

func TestSetSharing_MissingFlag(t *testing.T) {
	// Поле enabled обязательно: его отсутствие не путается с false
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/sharing", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetSharing_ServiceError(t *testing.T) {
	captureMock, _, router := newTestHandler(t)

	captureMock.EXPECT().
		SetSharing(gomock.Any(), true).
		Return(fmt.Errorf("store failure")).
		Times(1)

	w := makeRequest(router, http.MethodPost, "/api/v1/location/sharing", bytes.NewBufferString(`{"enabled": true}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReportIncident_Success(t *testing.T) {
	_, incidentMock, router := newTestHandler(t)
	reqBody := ReportIncidentRequest{
		Category:  "crime",
		Title:     "Robbery",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	incidentMock.EXPECT().
		ReportIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, incident *models.Incident) error {
			assert.Equal(t, reqBody.Category, incident.Category)
			assert.Equal(t, reqBody.Title, incident.Title)
			incident.ID = uuid.New()
			incident.CreatedAt = time.Now()
			return nil
		}).
		Times(1)

	body, _ := json.Marshal(reqBody)
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewReader(body))

	require.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reqBody.Title, resp.Title)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestReportIncident_ValidationFailed(t *testing.T) {
	_, _, router := newTestHandler(t)

	// Нет обязательных полей
	w := makeRequest(router, http.MethodPost, "/api/v1/incidents", bytes.NewBufferString(`{"category": "c"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetIncident_Success(t *testing.T) {
	_, incidentMock, router := newTestHandler(t)
	incidentID := uuid.New()
	expected := &models.Incident{
		ID:        incidentID,
		Category:  "crime",
		Title:     "Robbery",
		Latitude:  55.75,
		Longitude: 37.61,
	}

	incidentMock.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+incidentID.String(), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, incidentID, resp.ID)
}

func TestGetIncident_NotFound(t *testing.T) {
	_, incidentMock, router := newTestHandler(t)
	incidentID := uuid.New()

	incidentMock.EXPECT().
		GetIncident(gomock.Any(), incidentID).
		Return(nil, fmt.Errorf("not found")).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/"+incidentID.String(), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIncidents_Success(t *testing.T) {
	_, incidentMock, router := newTestHandler(t)
	expected := []*models.Incident{
		{ID: uuid.New(), Title: "A"},
		{ID: uuid.New(), Title: "B"},
	}

	incidentMock.EXPECT().
		ListRecentIncidents(gomock.Any(), 5).
		Return(expected, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet, "/api/v1/incidents?limit=5", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHealthCheck(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}
