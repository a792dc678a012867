package services

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"spabook/internal/adapters/persistence/models"
)

// NotificationService pushes operator notifications to a webhook
// (e.g. a team chat channel). Disabled when no webhook is configured.
type NotificationService struct {
	webhookURL string
	authToken  string
	enabled    bool
}

// NewNotificationService creates a new notification service
func NewNotificationService() *NotificationService {
	webhookURL := os.Getenv("NOTIFY_WEBHOOK_URL")
	return &NotificationService{
		webhookURL: webhookURL,
		authToken:  os.Getenv("NOTIFY_WEBHOOK_TOKEN"),
		enabled:    webhookURL != "",
	}
}

// IsEnabled checks if notification is enabled
func (s *NotificationService) IsEnabled() bool {
	return s.enabled
}

// send posts a message to the configured webhook
func (s *NotificationService) send(message string) error {
	if !s.enabled {
		return nil
	}

	data := url.Values{}
	data.Set("message", message)

	req, err := http.NewRequest("POST", s.webhookURL, bytes.NewBufferString(data.Encode()))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if s.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+s.authToken)
	}

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return nil
}

// NotifyAppointmentBooked sends a notification for a new booking
func (s *NotificationService) NotifyAppointmentBooked(appt *models.Appointment) {
	clientName := ""
	if appt.Client != nil {
		clientName = appt.Client.Name
	}
	formulaName := ""
	if appt.Formula != nil {
		formulaName = appt.Formula.Name
	}

	message := fmt.Sprintf(`🆕 New appointment

📋 #%d
👤 Client: %s
💆 Formula: %s
📅 %s at %s`,
		appt.ID,
		clientName,
		formulaName,
		appt.Date.Format("2006-01-02"),
		appt.Time,
	)

	s.send(message)
}

// NotifyDailySchedule sends the morning reminder with today's bookings
func (s *NotificationService) NotifyDailySchedule(date string, appts []models.Appointment) {
	if len(appts) == 0 {
		return
	}

	message := fmt.Sprintf("🔔 Schedule for %s: %d appointment(s)\n", date, len(appts))
	for _, a := range appts {
		clientName := "?"
		if a.Client != nil {
			clientName = a.Client.Name
		}
		message += fmt.Sprintf("• %s %s\n", a.Time, clientName)
	}

	s.send(message)
}
