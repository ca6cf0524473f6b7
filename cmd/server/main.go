package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"flightcast-service/internal/domain/repository"
	"flightcast-service/internal/infrastructure/config"
	"flightcast-service/internal/infrastructure/persistence"
	"flightcast-service/internal/interface/llm"
	"flightcast-service/internal/interface/publisher"
	dbRepo "flightcast-service/internal/interface/repository"
	"flightcast-service/internal/parser"
	"flightcast-service/internal/refdata"
	"flightcast-service/internal/usecase"
	"flightcast-service/pkg/logger"
	"flightcast-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting Flightcast Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Reference data: embedded tables, overlaid with database rows when a
	// Postgres DSN is configured
	ref := refdata.NewStore(log)
	if cfg.PostgresDSN != "" {
		gormDB, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", "error", err)
		}
		ref = loadReferenceData(ctx, gormDB, log)
	}

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)
	flightRecordRepo := dbRepo.NewMongoFlightRecordRepository(db)

	// Optional NATS publisher
	var events repository.EventPublisher
	if cfg.NatsURL != "" {
		events, err = publisher.NewNatsPublisher(cfg.NatsURL, log)
		if err != nil {
			log.Fatal("Failed to connect to NATS", "error", err)
		}
		defer events.Close()
	}

	// Completion client
	completions := llm.NewOpenRouterClient(
		cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel,
		cfg.LLMTemperature, cfg.LLMTimeout, log,
	)

	// Extraction pipeline
	m := metrics.NewMetrics("flightcast")
	engine := parser.NewDurationEngine(ref, log)
	extractor := usecase.NewFlightExtractor(
		parser.NewTextNormalizer(ref),
		parser.NewGdsParser(ref, engine, cfg.ReferenceYear, log),
		parser.NewHintExtractor(ref, cfg.MinFare, log),
		parser.NewPostProcessor(ref, engine, cfg.ReferenceYear, log),
		completions,
		flightRecordRepo,
		events,
		m,
		cfg.LLMMaxTokens,
		log,
	)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})
	mux.HandleFunc("/api/v1/extract", extractHandler(extractor, log))
	mux.HandleFunc("/api/v1/extract/multiple", extractMultipleHandler(extractor, log))

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(context.Background()); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("Flightcast Service stopped")
}

// loadReferenceData overlays the embedded airport/airline tables with rows
// from the reference database. Database failures degrade to the embedded
// tables rather than aborting startup.
func loadReferenceData(ctx context.Context, gormDB *gorm.DB, log logger.Logger) *refdata.Store {
	airlineRepository := dbRepo.NewGormAirlineRepository(gormDB)
	timezoneRepository := dbRepo.NewGormTimezoneRepository(gormDB)

	airports := make(map[string]refdata.Airport)
	airlines := make(map[string]string)

	rows, err := timezoneRepository.ListAll(ctx)
	if err != nil {
		log.Error("Failed to load timezone overrides", "error", err)
	} else {
		for _, tz := range rows {
			airports[tz.AirportCode] = refdata.Airport{Name: tz.CityName, TzName: tz.TzName}
		}
	}

	airlineRows, err := airlineRepository.ListAll(ctx)
	if err != nil {
		log.Error("Failed to load airline overrides", "error", err)
	} else {
		for _, al := range airlineRows {
			airlines[al.Code] = al.Name
		}
	}

	log.Info("Loaded reference data overrides", "airports", len(airports), "airlines", len(airlines))
	return refdata.NewStoreWithOverrides(airports, airlines, log)
}

type extractRequest struct {
	Text       string `json:"text"`
	HasLayover bool   `json:"has_layover"`
}

func extractHandler(extractor *usecase.FlightExtractor, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			http.Error(w, "body must be JSON with a non-empty text field", http.StatusBadRequest)
			return
		}
		flight := extractor.ExtractFlight(r.Context(), req.Text, req.HasLayover)
		writeJSON(w, flight, log)
	}
}

func extractMultipleHandler(extractor *usecase.FlightExtractor, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req extractRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
			http.Error(w, "body must be JSON with a non-empty text field", http.StatusBadRequest)
			return
		}
		flights := extractor.ExtractMultipleFlights(r.Context(), req.Text)
		writeJSON(w, flights, log)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}, log logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
