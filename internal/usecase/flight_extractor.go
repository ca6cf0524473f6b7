package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"
	"flightcast-service/internal/parser"
	"flightcast-service/pkg/logger"
	"flightcast-service/pkg/metrics"
)

// FlightExtractor orchestrates the extraction pipeline. GDS terminal output
// is parsed entirely by regex and never reaches the completion model; free
// text goes through hint mining, one model call, and reconciliation. Every
// public method returns flights, never an error: total failure degrades to
// an empty flight reconciled from hints alone.
type FlightExtractor struct {
	normalizer  *parser.TextNormalizer
	gds         *parser.GdsParser
	hints       *parser.HintExtractor
	post        *parser.PostProcessor
	completions repository.CompletionRepository
	records     repository.FlightRecordRepository
	publisher   repository.EventPublisher
	metrics     *metrics.Metrics
	maxTokens   int
	logger      logger.Logger
}

// NewFlightExtractor creates the pipeline. records and publisher may be nil
// when persistence or eventing is disabled.
func NewFlightExtractor(
	normalizer *parser.TextNormalizer,
	gds *parser.GdsParser,
	hints *parser.HintExtractor,
	post *parser.PostProcessor,
	completions repository.CompletionRepository,
	records repository.FlightRecordRepository,
	publisher repository.EventPublisher,
	m *metrics.Metrics,
	maxTokens int,
	log logger.Logger,
) *FlightExtractor {
	return &FlightExtractor{
		normalizer:  normalizer,
		gds:         gds,
		hints:       hints,
		post:        post,
		completions: completions,
		records:     records,
		publisher:   publisher,
		metrics:     m,
		maxTokens:   maxTokens,
		logger:      log,
	}
}

// ExtractFlight extracts a single flight from text. hasLayover is a caller
// hint that the input is one connecting itinerary; it widens the prompt and
// token budget but plays no part in detection.
func (u *FlightExtractor) ExtractFlight(ctx context.Context, rawText string, hasLayover bool) *entity.Flight {
	start := time.Now()
	u.metrics.ExtractionsTotal.Inc()
	defer func() {
		u.metrics.ExtractionTime.Observe(time.Since(start).Seconds())
	}()

	normalized := u.normalizer.Normalize(rawText)

	if flights := u.tryGds(normalized); len(flights) > 0 {
		u.finish(ctx, flights[0], "gds_regex")
		return flights[0]
	}

	hints := u.hints.Extract(normalized)
	prompt := buildSinglePrompt(hasLayover, hints.Dates, time.Now())
	tokens := u.maxTokens
	if hasLayover {
		tokens *= 2
	}

	flight := u.callModel(ctx, prompt, normalized, tokens)
	if flight == nil {
		u.logger.Warn("Completion returned no usable data, using fallback")
		flight = entity.EmptyFlight(uuid.NewString())
	}

	flight = u.post.Process(flight, hints, normalized, false)
	u.finish(ctx, flight, "llm")
	return flight
}

// ExtractMultipleFlights extracts every distinct flight from one text block.
func (u *FlightExtractor) ExtractMultipleFlights(ctx context.Context, rawText string) []*entity.Flight {
	start := time.Now()
	u.metrics.ExtractionsTotal.Inc()
	defer func() {
		u.metrics.ExtractionTime.Observe(time.Since(start).Seconds())
	}()

	normalized := u.normalizer.Normalize(rawText)

	if flights := u.tryGds(normalized); len(flights) > 0 {
		u.logger.Info("GDS parser returned itineraries", "count", len(flights))
		for _, f := range flights {
			u.finish(ctx, f, "gds_regex")
		}
		return flights
	}

	hints := u.hints.Extract(normalized)
	prompt := buildMultiPrompt(hints.Dates, time.Now())

	u.metrics.LlmCallsTotal.Inc()
	content, err := u.completions.Complete(ctx, prompt, normalized, u.maxTokens*2)
	if err != nil {
		u.metrics.LlmFailuresTotal.Inc()
		u.logger.Warn("Multi-flight extraction failed, falling back to single", "error", err)
		return []*entity.Flight{u.ExtractFlight(ctx, rawText, false)}
	}

	wires, ok := decodeFlightArray(content)
	if !ok {
		u.metrics.LlmFailuresTotal.Inc()
		u.logger.Warn("Multi-flight output unparseable, falling back to single")
		return []*entity.Flight{u.ExtractFlight(ctx, rawText, false)}
	}

	flights := make([]*entity.Flight, 0, len(wires))
	for i := range wires {
		f := toFlightEntity(&wires[i], uuid.NewString())
		f = u.post.Process(f, hints, normalized, true)
		u.finish(ctx, f, "llm")
		flights = append(flights, f)
	}
	u.logger.Info("Extracted flights", "count", len(flights))
	return flights
}

// tryGds runs the regex path when the detector fires. Detection runs on
// normalized text, so the GDS grammars accept normalized token forms too.
func (u *FlightExtractor) tryGds(normalized string) []*entity.Flight {
	if !u.gds.IsGds(normalized) {
		return nil
	}
	u.logger.Info("GDS format detected, using regex parser")
	flights := u.gds.Parse(normalized)
	if len(flights) > 0 {
		u.metrics.GdsParsedTotal.Inc()
	}
	return flights
}

func (u *FlightExtractor) callModel(ctx context.Context, prompt, text string, maxTokens int) *entity.Flight {
	u.metrics.LlmCallsTotal.Inc()
	content, err := u.completions.Complete(ctx, prompt, text, maxTokens)
	if err != nil {
		u.metrics.LlmFailuresTotal.Inc()
		u.logger.Error("Completion call failed", "error", err)
		return nil
	}
	wire, ok := decodeSingleFlight(content)
	if !ok {
		u.metrics.LlmFailuresTotal.Inc()
		u.logger.Error("Completion output unparseable")
		return nil
	}
	return toFlightEntity(wire, uuid.NewString())
}

// finish persists and publishes the result. Both sinks are best-effort; a
// storage or broker outage must not fail an extraction.
func (u *FlightExtractor) finish(ctx context.Context, flight *entity.Flight, source string) {
	if u.records != nil {
		if err := u.records.Save(ctx, flight, source); err != nil {
			u.metrics.ErrorsCount.WithLabelValues("save_flight").Inc()
			u.logger.Error("Failed to save flight record", "flightId", flight.ID, "error", err)
		}
	}
	if u.publisher != nil {
		if err := u.publisher.PublishFlightExtracted(ctx, flight); err != nil {
			u.metrics.ErrorsCount.WithLabelValues("publish_flight").Inc()
		}
	}
}
