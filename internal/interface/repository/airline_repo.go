package repository

import (
	"context"
	"time"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormAirlineRepository implements the AirlineRepository interface
type GormAirlineRepository struct {
	db *gorm.DB
}

// NewGormAirlineRepository creates a new GORM airline repository
func NewGormAirlineRepository(db *gorm.DB) repository.AirlineRepository {
	return &GormAirlineRepository{
		db: db,
	}
}

// Airlines GORM model for database mapping
type Airlines struct {
	gorm.Model
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	Name      string         `gorm:"column:name;unique"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airlines) TableName() string {
	return "m_airlines"
}

// GetByCode finds an airline by code
func (r *GormAirlineRepository) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	var airline Airlines
	result := r.db.WithContext(ctx).Unscoped().Where("code = ?", code).First(&airline)

	if result.Error != nil {
		return nil, result.Error
	}

	return toAirlineEntity(&airline), nil
}

// ListAll returns every airline row, used to overlay the embedded reference
// tables at startup
func (r *GormAirlineRepository) ListAll(ctx context.Context) ([]entity.Airline, error) {
	var rows []Airlines
	result := r.db.WithContext(ctx).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	airlines := make([]entity.Airline, 0, len(rows))
	for i := range rows {
		airlines = append(airlines, *toAirlineEntity(&rows[i]))
	}
	return airlines, nil
}

func toAirlineEntity(row *Airlines) *entity.Airline {
	return &entity.Airline{
		Code: row.Code,
		Name: row.Name,
	}
}
