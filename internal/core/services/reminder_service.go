package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"spabook/internal/adapters/persistence/repositories"
)

// ReminderService runs the daily schedule reminder on a cron timer.
type ReminderService struct {
	cron            *cron.Cron
	appointmentRepo repositories.AppointmentRepository
	notifier        *NotificationService
}

// NewReminderService creates a new reminder service
func NewReminderService(appointmentRepo repositories.AppointmentRepository, notifier *NotificationService) *ReminderService {
	return &ReminderService{
		cron:            cron.New(),
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
	}
}

// Start schedules the reminder jobs and starts the cron runner
func (s *ReminderService) Start() {
	// Daily schedule digest at 08:30
	s.cron.AddFunc("30 8 * * *", func() {
		if err := s.sendDailySchedule(); err != nil {
			log.Printf("⚠️ Daily schedule reminder failed: %v", err)
		}
	})

	s.cron.Start()
	log.Println("✅ Reminder service started (daily digest at 08:30)")
}

// Stop stops the cron runner
func (s *ReminderService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Reminder service stopped")
}

// sendDailySchedule pushes today's appointment list to the notifier
func (s *ReminderService) sendDailySchedule() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	today := time.Now()
	appts, err := s.appointmentRepo.ListByDate(ctx, today)
	if err != nil {
		return err
	}

	s.notifier.NotifyDailySchedule(today.Format("2006-01-02"), appts)
	return nil
}
