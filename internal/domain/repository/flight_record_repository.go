package repository

import (
	"context"

	"flightcast-service/internal/domain/entity"
)

// FlightRecordRepository defines the interface for persisting extraction results
type FlightRecordRepository interface {
	Save(ctx context.Context, flight *entity.Flight, source string) error
	FindByID(ctx context.Context, id string) (*entity.Flight, error)
	FindByPNR(ctx context.Context, pnr string) ([]*entity.Flight, error)
}
