package create_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportclub/SC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/sportclub/SC-AppointmentService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	err  error
	resp *createAppointment.Response
}

func (f *fakeUseCase) Execute(_ context.Context, _ *createAppointment.Request) (*createAppointment.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, uc *fakeUseCase, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))
	req.Header.Set("X-User-ID", "42")

	w := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle)).ServeHTTP(w, req)
	return w
}

func message(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Message
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"trainerId": 7,
		"serviceId": 1,
		"date":      "2025-10-15",
		"time":      "10:00",
	}
}

func TestHandleMalformedTime(t *testing.T) {
	body := validBody()
	body["time"] = "9:30"

	w := doRequest(t, &fakeUseCase{}, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "time format should be HH:mm (example: 09:30)", message(t, w))
}

func TestHandleMalformedDate(t *testing.T) {
	body := validBody()
	body["date"] = "15.10.2025"

	w := doRequest(t, &fakeUseCase{}, body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "tarih formatı YYYY-MM-DD olmalı (örnek: 2025-10-15)", message(t, w))
}

func TestHandleServiceNotFound(t *testing.T) {
	w := doRequest(t, &fakeUseCase{err: createAppointment.ErrServiceNotFound}, validBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service not found.", message(t, w))
}

func TestHandleTrainerNotAvailable(t *testing.T) {
	w := doRequest(t, &fakeUseCase{err: &createAppointment.NotAvailableError{DayName: "Çarşamba"}}, validBody())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Antrenör bu gün/saat aralığında müsait değil. (Gün: Çarşamba)", message(t, w))
}

func TestHandleSlotConflict(t *testing.T) {
	w := doRequest(t, &fakeUseCase{err: createAppointment.ErrSlotConflict}, validBody())

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Bu antrenör için seçilen saatte randevu var. Lütfen başka saat seç.", message(t, w))
}

func TestHandleMissingUser(t *testing.T) {
	payload, err := json.Marshal(validBody())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewReader(payload))

	w := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(NewHandler(&fakeUseCase{}, nopLogger{}).Handle)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandleCreated(t *testing.T) {
	uc := &fakeUseCase{resp: &createAppointment.Response{
		ID:                    1,
		TrainerID:             7,
		ServiceID:             1,
		UserID:                42,
		Status:                "pending",
		StoredPrice:           500,
		StoredDurationMinutes: 30,
	}}

	w := doRequest(t, uc, validBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "pending", resp.Status)
}
