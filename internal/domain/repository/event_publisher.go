package repository

import (
	"context"

	"flightcast-service/internal/domain/entity"
)

// EventPublisher defines the interface for emitting extraction events
type EventPublisher interface {
	PublishFlightExtracted(ctx context.Context, flight *entity.Flight) error
	Close()
}
