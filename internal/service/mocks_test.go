package service_test

import (
	"context"
	"time"

	"settings_hub/internal/models"
)

// ---- Repository Mocks ----

type mockSettingsRepo struct {
	devices map[string]models.Device

	saveErr   error
	getErr    error
	listErr   error
	deleteErr error

	saveCalls   int
	listCalls   int
	lastSaved   models.Device
	lastDeleted string
}

func newMockSettingsRepo(devices ...models.Device) *mockSettingsRepo {
	m := &mockSettingsRepo{devices: make(map[string]models.Device)}
	for _, d := range devices {
		m.devices[d.Name] = d
	}
	return m
}

func (m *mockSettingsRepo) Save(_ context.Context, d models.Device) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.lastSaved = d
	m.devices[d.Name] = d
	return nil
}

func (m *mockSettingsRepo) Get(_ context.Context, name string) (models.Device, error) {
	if m.getErr != nil {
		return models.Device{}, m.getErr
	}
	return m.devices[name], nil
}

func (m *mockSettingsRepo) List(_ context.Context) ([]models.Device, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]models.Device, 0, len(m.devices))
	for _, d := range m.devices {
		out = append(out, d)
	}
	return out, nil
}

func (m *mockSettingsRepo) Delete(_ context.Context, name string) (bool, error) {
	if m.deleteErr != nil {
		return false, m.deleteErr
	}
	m.lastDeleted = name
	_, ok := m.devices[name]
	delete(m.devices, name)
	return ok, nil
}

type mockEventRepo struct {
	appended  []models.SettingsEvent
	appendErr error

	listResp []models.SettingsEvent
	listErr  error
	lastFrom time.Time
	lastTo   time.Time
	lastType string
	lastDev  string
}

func (m *mockEventRepo) Append(_ context.Context, e models.SettingsEvent) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.appended = append(m.appended, e)
	return nil
}

func (m *mockEventRepo) List(_ context.Context, from, to time.Time, typ, device string) ([]models.SettingsEvent, error) {
	m.lastFrom = from
	m.lastTo = to
	m.lastType = typ
	m.lastDev = device
	return m.listResp, m.listErr
}

type mockAuthRepo struct {
	createID  int
	createErr error
	user      *models.User
	getErr    error

	lastCreateUsername string
	lastCreateHash     string
}

func (m *mockAuthRepo) Create(username, hash string) (int, error) {
	m.lastCreateUsername = username
	m.lastCreateHash = hash
	return m.createID, m.createErr
}

func (m *mockAuthRepo) GetByUsername(username string) (*models.User, error) {
	return m.user, m.getErr
}
