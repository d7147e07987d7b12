package notifications

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-SalonService/internal/integrations/mailer"
	"github.com/m04kA/SMC-SalonService/internal/service/notifications/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRepo struct {
	created   []*domain.Notification
	createErr error
	setReadID int64
	setErr    error
}

func (r *fakeRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	n.ID = int64(len(r.created) + 1)
	r.created = append(r.created, n)
	return n, nil
}

func (r *fakeRepo) List(_ context.Context, filter domain.NotificationsFilter) ([]*domain.Notification, error) {
	result := make([]*domain.Notification, 0)
	for _, n := range r.created {
		if n.EmployeeID != filter.EmployeeID {
			continue
		}
		if filter.Read != nil && n.Read != *filter.Read {
			continue
		}
		result = append(result, n)
	}
	return result, nil
}

func (r *fakeRepo) SetRead(_ context.Context, id int64, _ bool) error {
	r.setReadID = id
	return r.setErr
}

type fakeMailer struct {
	mu      sync.Mutex
	sent    []mailer.Message
	err     error
	release chan struct{}
	ctxErr  error
}

func (m *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	if m.release != nil {
		<-m.release
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ctxErr = ctx.Err()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func assigned(email *string) models.AppointmentAssigned {
	return models.AppointmentAssigned{
		Employee:    &domain.Employee{ID: 7, Name: "Ana", Email: email},
		ClientName:  "Juan Pérez",
		ServiceName: "Corte",
		Date:        time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
	}
}

func TestAssignedMessage(t *testing.T) {
	assert.Equal(t,
		"Nuevo turno asignado: Juan Pérez - Corte el 2025-03-03 a las 10:00.",
		AssignedMessage(assigned(nil)))
}

func TestNotifyAssigned(t *testing.T) {
	t.Run("inbox and e-mail", func(t *testing.T) {
		repo, m := &fakeRepo{}, &fakeMailer{}
		svc := NewService(repo, nopLogger{}).WithMailer(m, "")

		require.NoError(t, svc.NotifyAssigned(context.Background(), assigned(ptr.Ptr("ana@salon.local"))))
		svc.Wait()

		require.Len(t, repo.created, 1)
		assert.Equal(t, int64(7), repo.created[0].EmployeeID)
		assert.False(t, repo.created[0].Read)
		require.Len(t, m.sent, 1)
		assert.Equal(t, "ana@salon.local", m.sent[0].To)
		assert.Equal(t, defaultSubject, m.sent[0].Subject)
		assert.Equal(t, repo.created[0].Message, m.sent[0].Body)
	})

	t.Run("no e-mail address", func(t *testing.T) {
		repo, m := &fakeRepo{}, &fakeMailer{}
		svc := NewService(repo, nopLogger{}).WithMailer(m, "Turno")

		require.NoError(t, svc.NotifyAssigned(context.Background(), assigned(nil)))
		svc.Wait()
		assert.Len(t, repo.created, 1)
		assert.Empty(t, m.sent)
	})

	t.Run("mail failure is not an error", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{}).WithMailer(&fakeMailer{err: errors.New("smtp down")}, "")

		require.NoError(t, svc.NotifyAssigned(context.Background(), assigned(ptr.Ptr("ana@salon.local"))))
		svc.Wait()
		assert.Len(t, repo.created, 1)
	})

	t.Run("slow mail does not block the caller", func(t *testing.T) {
		repo := &fakeRepo{}
		m := &fakeMailer{release: make(chan struct{})}
		svc := NewService(repo, nopLogger{}).WithMailer(m, "")

		ctx, cancel := context.WithCancel(context.Background())
		require.NoError(t, svc.NotifyAssigned(ctx, assigned(ptr.Ptr("ana@salon.local"))))
		require.Len(t, repo.created, 1)

		// запрос завершился раньше, чем письмо ушло
		cancel()
		close(m.release)
		svc.Wait()

		require.Len(t, m.sent, 1)
		assert.NoError(t, m.ctxErr)
	})

	t.Run("inbox failure", func(t *testing.T) {
		svc := NewService(&fakeRepo{createErr: errors.New("db down")}, nopLogger{})

		err := svc.NotifyAssigned(context.Background(), assigned(nil))
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("missing employee", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})

		err := svc.NotifyAssigned(context.Background(), models.AppointmentAssigned{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestList(t *testing.T) {
	repo := &fakeRepo{created: []*domain.Notification{
		{ID: 1, EmployeeID: 7, Message: "a", Read: true},
		{ID: 2, EmployeeID: 7, Message: "b"},
		{ID: 3, EmployeeID: 8, Message: "c"},
	}}
	svc := NewService(repo, nopLogger{})

	all, err := svc.List(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	unread, err := svc.List(context.Background(), 7, ptr.Ptr(false))
	require.NoError(t, err)
	require.Len(t, unread.Notifications, 1)
	assert.Equal(t, int64(2), unread.Notifications[0].ID)

	_, err = svc.List(context.Background(), 0, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSetRead(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.SetRead(context.Background(), 5, true))
	assert.Equal(t, int64(5), repo.setReadID)

	repo.setErr = notificationRepo.ErrNotificationNotFound
	assert.ErrorIs(t, svc.SetRead(context.Background(), 6, true), ErrNotificationNotFound)

	repo.setErr = errors.New("boom")
	assert.ErrorIs(t, svc.SetRead(context.Background(), 6, true), ErrInternal)
}
