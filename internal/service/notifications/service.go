package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	notificationRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/notification"
	"github.com/m04kA/SMC-SalonService/internal/integrations/mailer"
	"github.com/m04kA/SMC-SalonService/internal/service/notifications/models"
)

const defaultSubject = "Nuevo turno asignado"

// Service уведомления сотрудников: входящие в БД и (опционально) e-mail
type Service struct {
	repo    NotificationRepository
	mailer  Mailer
	subject string
	logger  Logger

	// mails письма, отправляемые в фоне
	mails sync.WaitGroup
}

// NewService создает сервис уведомлений без отправки писем
func NewService(repo NotificationRepository, logger Logger) *Service {
	return &Service{
		repo:    repo,
		subject: defaultSubject,
		logger:  logger,
	}
}

// WithMailer включает отправку писем сотрудникам с e-mail
func (s *Service) WithMailer(m Mailer, subject string) *Service {
	s.mailer = m
	if subject != "" {
		s.subject = subject
	}
	return s
}

// AssignedMessage текст уведомления о новой записи
func AssignedMessage(a models.AppointmentAssigned) string {
	return fmt.Sprintf("Nuevo turno asignado: %s - %s el %s a las %s.",
		a.ClientName, a.ServiceName, a.Date.Format(domain.DateFormat), a.StartTime)
}

// NotifyAssigned уведомляет сотрудника о назначенной записи
// Ошибка сохранения во входящие возвращается. Письмо отправляется в фоне,
// ошибка отправки только логируется.
func (s *Service) NotifyAssigned(ctx context.Context, a models.AppointmentAssigned) error {
	if a.Employee == nil {
		return fmt.Errorf("%w: employee is required", ErrInvalidInput)
	}

	message := AssignedMessage(a)

	_, err := s.repo.Create(ctx, &domain.Notification{
		EmployeeID: a.Employee.ID,
		Message:    message,
	})
	if err != nil {
		s.logger.Error("NotifyAssigned: failed to store notification for employee=%d: %v", a.Employee.ID, err)
		return fmt.Errorf("%w: NotifyAssigned - repository error: %v", ErrInternal, err)
	}

	if s.mailer != nil && a.Employee.HasEmail() {
		s.sendMail(context.WithoutCancel(ctx), a.Employee.ID, mailer.Message{
			To:      *a.Employee.Email,
			Subject: s.subject,
			Body:    message,
		})
	}

	s.logger.Info("NotifyAssigned: employee=%d notified", a.Employee.ID)
	return nil
}

// sendMail отправляет письмо в отдельной горутине, не задерживая ответ на запрос
func (s *Service) sendMail(ctx context.Context, employeeID int64, msg mailer.Message) {
	s.mails.Add(1)
	go func() {
		defer s.mails.Done()
		if err := s.mailer.Send(ctx, msg); err != nil {
			s.logger.Warn("NotifyAssigned: e-mail to employee=%d not sent: %v", employeeID, err)
		}
	}()
}

// Wait дожидается отправки писем, запущенных в фоне
func (s *Service) Wait() {
	s.mails.Wait()
}

// List получает уведомления сотрудника
func (s *Service) List(ctx context.Context, employeeID int64, read *bool) (*models.NotificationListResponse, error) {
	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: employee id must be positive", ErrInvalidInput)
	}

	list, err := s.repo.List(ctx, domain.NotificationsFilter{EmployeeID: employeeID, Read: read})
	if err != nil {
		s.logger.Error("List: repository error for employee=%d: %v", employeeID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(list), nil
}

// SetRead помечает уведомление прочитанным или непрочитанным
func (s *Service) SetRead(ctx context.Context, id int64, read bool) error {
	if err := s.repo.SetRead(ctx, id, read); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("SetRead: notification id=%d not found", id)
			return ErrNotificationNotFound
		}
		s.logger.Error("SetRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: SetRead - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetRead: notification id=%d read=%t", id, read)
	return nil
}
