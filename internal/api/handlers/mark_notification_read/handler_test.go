package mark_notification_read

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/service/notifications"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	err      error
	called   bool
	lastID   int64
	lastRead bool
}

func (f *fakeService) SetRead(_ context.Context, id int64, read bool) error {
	f.called = true
	f.lastID, f.lastRead = id, read
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		body       string
		err        error
		wantStatus int
		wantCalled bool
		wantRead   bool
	}{
		{name: "mark read", id: "5", body: `{"read":true}`, wantStatus: http.StatusNoContent, wantCalled: true, wantRead: true},
		{name: "mark unread", id: "5", body: `{"read":false}`, wantStatus: http.StatusNoContent, wantCalled: true},
		{name: "invalid id", id: "abc", body: `{"read":true}`, wantStatus: http.StatusBadRequest},
		{name: "missing read", id: "5", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "malformed body", id: "5", body: `{"read":`, wantStatus: http.StatusBadRequest},
		{name: "not found", id: "5", body: `{"read":true}`, err: notifications.ErrNotificationNotFound, wantStatus: http.StatusNotFound, wantCalled: true, wantRead: true},
		{name: "internal", id: "5", body: `{"read":true}`, err: errors.New("db down"), wantStatus: http.StatusInternalServerError, wantCalled: true, wantRead: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			h := NewHandler(svc, nopLogger{})

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/notifications/"+tt.id, strings.NewReader(tt.body))
			req = mux.SetURLVars(req, map[string]string{"notificationId": tt.id})
			rec := httptest.NewRecorder()
			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, svc.called)
			if tt.wantCalled {
				assert.Equal(t, int64(5), svc.lastID)
				assert.Equal(t, tt.wantRead, svc.lastRead)
			}
		})
	}
}
