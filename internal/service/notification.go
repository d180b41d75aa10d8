package service

import (
	"context"
	"log"
	"time"

	"ridepool/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationPassengerJoined  NotificationType = "PASSENGER_JOINED"
	NotificationPassengerArrived NotificationType = "PASSENGER_ARRIVED"
	NotificationMatchesRefreshed NotificationType = "MATCHES_REFRESHED"
)

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	CreatedAt   time.Time
}

// NotificationService handles notification delivery. Delivery here is
// log-based; a production deployment would plug in push/SMS transports.
type NotificationService struct{}

// NewNotificationService creates a new NotificationService.
func NewNotificationService() *NotificationService {
	return &NotificationService{}
}

// NotifyPassengerJoined notifies a ride's creator that a passenger joined.
func (s *NotificationService) NotifyPassengerJoined(ctx context.Context, ride *domain.Ride, userID string) error {
	return s.send(ctx, Notification{
		Type:        NotificationPassengerJoined,
		RecipientID: ride.CreatorID,
		Title:       "New passenger",
		Message:     "A passenger joined your ride in sector " + ride.Sector,
		CreatedAt:   time.Now(),
	})
}

// NotifyPassengerArrived notifies a ride's creator that a passenger
// reached their pickup point.
func (s *NotificationService) NotifyPassengerArrived(ctx context.Context, ride *domain.Ride, userID string) error {
	return s.send(ctx, Notification{
		Type:        NotificationPassengerArrived,
		RecipientID: ride.CreatorID,
		Title:       "Passenger arrived",
		Message:     "A passenger is waiting at their pickup point",
		CreatedAt:   time.Now(),
	})
}

// NotifyMatchesRefreshed notifies a user that their companion matches
// were recomputed.
func (s *NotificationService) NotifyMatchesRefreshed(ctx context.Context, userID string) error {
	return s.send(ctx, Notification{
		Type:        NotificationMatchesRefreshed,
		RecipientID: userID,
		Title:       "Companion matches updated",
		Message:     "Your companion suggestions were refreshed",
		CreatedAt:   time.Now(),
	})
}

func (s *NotificationService) send(_ context.Context, n Notification) error {
	log.Printf("notification: type=%s recipient=%s message=%q", n.Type, n.RecipientID, n.Message)
	return nil
}
