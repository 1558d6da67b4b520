package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"settings_hub/internal/models"
	"settings_hub/internal/service"
)

func addAuth(req *http.Request, token string) {
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
}

func TestDeviceHandlers_RegisterGetReplaceRemove(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	stored := models.Device{Name: "hallway-motion", Settings: models.DefaultDeviceSettings()}
	reg := &mockRegistry{registerDev: stored, getDev: stored, replaceDev: stored}
	s := &service.Service{
		Authorization: auth,
		Registry:      reg,
	}
	r := newTestRouter(s)

	// GET devices requires auth -> 401 without header
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/hallway-motion", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}

	// POST /devices -> 200, binder fills absent fields with defaults
	body := bytes.NewBufferString(`{"name":"hallway-motion","settings":{"device_id":"1000abc","local_poll_seconds":30}}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/devices", body)
	req.Header.Set("Content-Type", "application/json")
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	if reg.registerCalls != 1 || reg.lastName != "hallway-motion" {
		t.Fatalf("register not forwarded: calls=%d name=%q", reg.registerCalls, reg.lastName)
	}
	got := reg.lastSettings
	if got.DeviceID != "1000abc" || got.LocalPollSeconds != 30 {
		t.Fatalf("explicit values lost: %+v", got)
	}
	if got.ConsumptionPollSeconds != 86400 || got.ButtonResetTimeoutMs != 500 || got.MotionResetTimeoutMs != 60000 {
		t.Fatalf("defaults not substituted: %+v", got)
	}

	// GET /devices/:name -> 200 with device body
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/devices/hallway-motion", nil)
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d, body=%s", w.Code, w.Body.String())
	}
	var dev models.Device
	if err := json.Unmarshal(w.Body.Bytes(), &dev); err != nil {
		t.Fatalf("unmarshal device: %v", err)
	}
	if dev.Name != "hallway-motion" {
		t.Fatalf("unexpected device: %+v", dev)
	}

	// PUT /devices/:name -> 200, explicit zero survives binding
	body = bytes.NewBufferString(`{"consumption_poll_seconds":0,"local_enabled":true}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/api/v1/devices/hallway-motion", body)
	req.Header.Set("Content-Type", "application/json")
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("replace status=%d, body=%s", w.Code, w.Body.String())
	}
	if reg.replaceCalls != 1 {
		t.Fatalf("Replace calls=%d", reg.replaceCalls)
	}
	if reg.lastSettings.ConsumptionPollSeconds != 0 || !reg.lastSettings.LocalEnabled {
		t.Fatalf("wrong Replace settings: %+v", reg.lastSettings)
	}

	// DELETE /devices/:name -> 200
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/devices/hallway-motion", nil)
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("remove status=%d, body=%s", w.Code, w.Body.String())
	}
	if reg.removeCalls != 1 {
		t.Fatalf("Remove calls=%d", reg.removeCalls)
	}
}

func TestDeviceHandlers_ErrorMapping(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	reg := &mockRegistry{
		registerErr: service.ErrDeviceExists,
		getErr:      service.ErrDeviceNotFound,
	}
	s := &service.Service{Authorization: auth, Registry: reg}
	r := newTestRouter(s)

	// duplicate registration -> 409
	body := bytes.NewBufferString(`{"name":"plug-a"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/devices", body)
	req.Header.Set("Content-Type", "application/json")
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusConflict {
		t.Fatalf("register conflict status=%d, want 409", w.Code)
	}

	// unknown device -> 404
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/devices/nope", nil)
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get missing status=%d, want 404", w.Code)
	}

	// missing name -> 400 before hitting the service
	body = bytes.NewBufferString(`{"settings":{}}`)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/devices", body)
	req.Header.Set("Content-Type", "application/json")
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("register without name status=%d, want 400", w.Code)
	}
}

func TestDiagnosticsHandlers(t *testing.T) {
	auth := &mockAuth{parseID: 7}
	want := "[deviceid=1000abc, localPoll=30, consumptionPoll=86400, local=false, consumption=false, buttonResetTimeout=500, motionResetTimeout=60000]"
	diag := &mockDiagnostics{
		renderResp: want,
		allResp: []service.DeviceDiagnostic{
			{Name: "hallway-motion", Diagnostic: want},
		},
	}
	s := &service.Service{Authorization: auth, Diagnostics: diag}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/devices/hallway-motion/diagnostics", nil)
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("diagnostics status=%d, body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		Name       string `json:"name"`
		Diagnostic string `json:"diagnostic"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Diagnostic != want {
		t.Fatalf("diagnostic = %q, want %q", resp.Diagnostic, want)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/diagnostics", nil)
	addAuth(req, "valid")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("all diagnostics status=%d, body=%s", w.Code, w.Body.String())
	}
	var all struct {
		Count       int                        `json:"count"`
		Diagnostics []service.DeviceDiagnostic `json:"diagnostics"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if all.Count != 1 || all.Diagnostics[0].Diagnostic != want {
		t.Fatalf("unexpected diagnostics: %+v", all)
	}
}

func TestHealthEndpoint_NoAuthRequired(t *testing.T) {
	s := &service.Service{Authorization: &mockAuth{}}
	r := newTestRouter(s)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("health status=%d", w.Code)
	}
}
