package usecase

import (
	"context"
	"errors"
	"testing"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/parser"
	"flightcast-service/internal/refdata"
	"flightcast-service/pkg/logger"
	"flightcast-service/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warn(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Fatal(msg string, keysAndValues ...interface{}) {}
func (nopLogger) With(keysAndValues ...interface{}) logger.Logger {
	return nopLogger{}
}

// One shared registration; promauto panics on duplicates.
var testMetrics = metrics.NewMetrics("test")

type fakeCompletions struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompletions) Complete(ctx context.Context, systemPrompt, userContent string, maxTokens int) (string, error) {
	f.calls++
	return f.response, f.err
}

type fakeRecords struct {
	saved []*entity.Flight
}

func (f *fakeRecords) Save(ctx context.Context, flight *entity.Flight, source string) error {
	f.saved = append(f.saved, flight)
	return nil
}

func (f *fakeRecords) FindByID(ctx context.Context, id string) (*entity.Flight, error) {
	return nil, nil
}

func (f *fakeRecords) FindByPNR(ctx context.Context, pnr string) ([]*entity.Flight, error) {
	return nil, nil
}

func newTestExtractor(completions *fakeCompletions, records *fakeRecords) *FlightExtractor {
	ref := refdata.NewStore(nopLogger{})
	engine := parser.NewDurationEngine(ref, nopLogger{})
	return NewFlightExtractor(
		parser.NewTextNormalizer(ref),
		parser.NewGdsParser(ref, engine, 2026, nopLogger{}),
		parser.NewHintExtractor(ref, 1000, nopLogger{}),
		parser.NewPostProcessor(ref, engine, 2026, nopLogger{}),
		completions,
		records,
		nil,
		testMetrics,
		1000,
		nopLogger{},
	)
}

func TestExtractFlight_GdsBypassesModel(t *testing.T) {
	completions := &fakeCompletions{}
	records := &fakeRecords{}
	u := newTestExtractor(completions, records)

	f := u.ExtractFlight(context.Background(), "EY 156 E 18APR PRGAUH DK1 1120 1905", false)

	if completions.calls != 0 {
		t.Errorf("completion calls = %d, GDS text must never reach the model", completions.calls)
	}
	if f.DepartureAirport != "PRG" || f.ArrivalAirport != "AUH" {
		t.Errorf("route = %s-%s, want PRG-AUH", f.DepartureAirport, f.ArrivalAirport)
	}
	if f.Duration != "5h 45m" {
		t.Errorf("duration = %q, want 5h 45m", f.Duration)
	}
	if len(records.saved) != 1 {
		t.Errorf("saved %d records, want 1", len(records.saved))
	}
}

func TestExtractFlight_ModelPath(t *testing.T) {
	completions := &fakeCompletions{response: `{
		"airline": "Air India",
		"flight_number": "AI 380",
		"departure_airport": "DEL",
		"arrival_airport": "SIN",
		"departure_time": "23:15",
		"arrival_time": "06:15",
		"departure_date": "05 Jan 26"
	}`}
	u := newTestExtractor(completions, &fakeRecords{})

	f := u.ExtractFlight(context.Background(), "Air India from Delhi to Singapore on 05 Jan 26, 23:15 to 06:15", false)

	if completions.calls != 1 {
		t.Fatalf("completion calls = %d, want 1", completions.calls)
	}
	if f.DepartureAirport != "DEL" || f.ArrivalAirport != "SIN" {
		t.Errorf("route = %s-%s, want DEL-SIN", f.DepartureAirport, f.ArrivalAirport)
	}
	if f.DepartureDate != "05 Jan 26" {
		t.Errorf("date = %q, want 05 Jan 26", f.DepartureDate)
	}
	if f.DaysOffset != 1 {
		t.Errorf("days offset = %d, want 1 for the overnight arrival", f.DaysOffset)
	}
	if f.Duration != "4h 30m" {
		t.Errorf("duration = %q, want 4h 30m", f.Duration)
	}
}

func TestExtractFlight_ModelFailureFallsBack(t *testing.T) {
	completions := &fakeCompletions{err: errors.New("upstream timeout")}
	u := newTestExtractor(completions, &fakeRecords{})

	f := u.ExtractFlight(context.Background(), "Delhi to Singapore on 05 Jan 26", false)

	if f == nil {
		t.Fatal("ExtractFlight returned nil, want a reconciled fallback")
	}
	// Hints still resolve what regex alone can see.
	if f.DepartureDate != "05 Jan 26" {
		t.Errorf("date = %q, want hint-derived 05 Jan 26", f.DepartureDate)
	}
	if f.IsValid {
		t.Error("fallback flight with no times must not validate")
	}
}

func TestExtractMultipleFlights_Array(t *testing.T) {
	completions := &fakeCompletions{response: `[
		{"airline":"IndiGo","flight_number":"6E 508","departure_airport":"CCU","arrival_airport":"DEL","departure_time":"06:05","arrival_time":"08:25"},
		{"airline":"Air India","flight_number":"AI 302","departure_airport":"DEL","arrival_airport":"BOM","departure_time":"09:00","arrival_time":"11:05"}
	]`}
	records := &fakeRecords{}
	u := newTestExtractor(completions, records)

	flights := u.ExtractMultipleFlights(context.Background(), "two options for your trip")

	if len(flights) != 2 {
		t.Fatalf("got %d flights, want 2", len(flights))
	}
	if flights[0].FlightNumber != "6E 508" || flights[1].FlightNumber != "AI 302" {
		t.Errorf("flight numbers = %q, %q", flights[0].FlightNumber, flights[1].FlightNumber)
	}
	if len(records.saved) != 2 {
		t.Errorf("saved %d records, want 2", len(records.saved))
	}
}

func TestExtractMultipleFlights_UnparseableFallsBackToSingle(t *testing.T) {
	completions := &fakeCompletions{response: "cannot comply"}
	u := newTestExtractor(completions, &fakeRecords{})

	flights := u.ExtractMultipleFlights(context.Background(), "one flight Delhi to Mumbai")

	if len(flights) != 1 {
		t.Fatalf("got %d flights, want the single-flight fallback", len(flights))
	}
	// Two calls: the failed multi attempt, then the single retry.
	if completions.calls != 2 {
		t.Errorf("completion calls = %d, want 2", completions.calls)
	}
}
