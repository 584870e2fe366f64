package get_available_trainers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	findAvailableTrainers "github.com/sportclub/SC-AppointmentService/internal/usecase/find_available_trainers"
)

type fakeUseCase struct {
	err  error
	resp *findAvailableTrainers.Response
}

func (f *fakeUseCase) Execute(_ context.Context, _ *findAvailableTrainers.Request) (*findAvailableTrainers.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(uc *fakeUseCase, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trainers/available?"+query, nil)
	w := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(w, req)
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

func TestHandleMalformedTime(t *testing.T) {
	w := doRequest(&fakeUseCase{}, "serviceId=1&date=2025-10-15&time=9:30")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "time format should be HH:mm (example: 09:30)", message(t, w))
}

func TestHandleServiceNotFound(t *testing.T) {
	w := doRequest(&fakeUseCase{err: findAvailableTrainers.ErrServiceNotFound},
		"serviceId=1&date=2025-10-15&time=09:30")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Service not found.", message(t, w))
}

func TestHandleMalformedDate(t *testing.T) {
	w := doRequest(&fakeUseCase{}, "serviceId=1&date=15.10.2025&time=09:30")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleMissingServiceID(t *testing.T) {
	w := doRequest(&fakeUseCase{}, "date=2025-10-15&time=09:30")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleOK(t *testing.T) {
	uc := &fakeUseCase{resp: &findAvailableTrainers.Response{
		ServiceID: 1,
		Trainers: []findAvailableTrainers.Trainer{
			{ID: 4, FullName: "Ayşe Demir"},
			{ID: 5, FullName: "Mehmet Can"},
		},
	}}

	w := doRequest(uc, "serviceId=1&date=2025-10-15&time=09:30")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []TrainerResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, int64(4), resp[0].ID)
	assert.Equal(t, "Ayşe Demir", resp[0].FullName)
}
