package publisher

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/nats-io/nats.go"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"
	"flightcast-service/pkg/logger"
)

// NatsPublisher implements EventPublisher over a NATS connection
type NatsPublisher struct {
	nc     *nats.Conn
	logger logger.Logger
}

// NewNatsPublisher connects to NATS and returns the publisher
func NewNatsPublisher(url string, log logger.Logger) (repository.EventPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("flightcast-service"),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Warn("NATS disconnected", "error", err)
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			log.Info("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, err
	}
	return &NatsPublisher{nc: nc, logger: log}, nil
}

// PublishFlightExtracted emits the finished extraction on
// flights.extracted.<tripType>
func (p *NatsPublisher) PublishFlightExtracted(ctx context.Context, flight *entity.Flight) error {
	payload, err := json.Marshal(flight)
	if err != nil {
		return err
	}
	subject := "flights.extracted." + subjectToken(flight.TripType)
	if err := p.nc.Publish(subject, payload); err != nil {
		p.logger.Error("NATS publish failed", "subject", subject, "error", err)
		return err
	}
	p.logger.Debug("Published extraction", "subject", subject, "flightId", flight.ID)
	return nil
}

// Close drains and closes the connection
func (p *NatsPublisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		p.nc.Close()
	}
}

func subjectToken(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return "unknown"
	}
	repl := strings.NewReplacer(" ", "_", ".", "_", ">", "_", "*", "_", "/", "_")
	return repl.Replace(s)
}
