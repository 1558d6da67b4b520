package handlers

import (
	"context"
	"net/http"
	"time"

	"settings_hub/internal/models"
	"settings_hub/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockRegistry struct {
	registerDev models.Device
	registerErr error
	getDev      models.Device
	getErr      error
	listResp    []models.Device
	listErr     error
	replaceDev  models.Device
	replaceErr  error
	removeErr   error

	registerCalls int
	replaceCalls  int
	removeCalls   int
	lastName      string
	lastSettings  models.DeviceSettings
}

func (m *mockRegistry) Register(ctx context.Context, name string, s models.DeviceSettings) (models.Device, error) {
	m.registerCalls++
	m.lastName = name
	m.lastSettings = s
	return m.registerDev, m.registerErr
}
func (m *mockRegistry) Get(ctx context.Context, name string) (models.Device, error) {
	m.lastName = name
	return m.getDev, m.getErr
}
func (m *mockRegistry) List(ctx context.Context) ([]models.Device, error) {
	return m.listResp, m.listErr
}
func (m *mockRegistry) Replace(ctx context.Context, name string, s models.DeviceSettings) (models.Device, error) {
	m.replaceCalls++
	m.lastName = name
	m.lastSettings = s
	return m.replaceDev, m.replaceErr
}
func (m *mockRegistry) Remove(ctx context.Context, name string) error {
	m.removeCalls++
	m.lastName = name
	return m.removeErr
}

type mockDiagnostics struct {
	renderResp string
	renderErr  error
	allResp    []service.DeviceDiagnostic
	allErr     error
	lastName   string
}

func (m *mockDiagnostics) Render(ctx context.Context, name string) (string, error) {
	m.lastName = name
	return m.renderResp, m.renderErr
}
func (m *mockDiagnostics) RenderAll(ctx context.Context) ([]service.DeviceDiagnostic, error) {
	return m.allResp, m.allErr
}

type mockEventLog struct {
	resp       []models.SettingsEvent
	err        error
	lastFilter service.LogFilter
}

func (m *mockEventLog) List(ctx context.Context, f service.LogFilter) ([]models.SettingsEvent, error) {
	m.lastFilter = f
	return m.resp, m.err
}

type mockReporter struct{}

func (m *mockReporter) Run(ctx context.Context, tick time.Duration) {}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
