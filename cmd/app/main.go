package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/alan12292009/megaroll-core/pkg/casino"
	"github.com/alan12292009/megaroll-core/pkg/confirmations"
	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/handlers"
	"github.com/alan12292009/megaroll-core/pkg/marketplace"
	"github.com/alan12292009/megaroll-core/pkg/middleware"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/payments"
	"github.com/alan12292009/megaroll-core/pkg/scheduler"
	dydbstore "github.com/alan12292009/megaroll-core/pkg/storage/dynamodb"
)

// defaultInstruments is the tradeable set seeded at startup. Seeding is
// idempotent, so prices moved by admin tooling survive restarts.
var defaultInstruments = []models.Instrument{
	{Symbol: "BTC", Name: "Bitcoin", Price: decimal.NewFromInt(50000)},
	{Symbol: "ETH", Name: "Ethereum", Price: decimal.NewFromInt(3000)},
	{Symbol: "BNB", Name: "BNB", Price: decimal.NewFromInt(500)},
	{Symbol: "SOL", Name: "Solana", Price: decimal.NewFromInt(150)},
	{Symbol: "DOGE", Name: "Dogecoin", Price: decimal.RequireFromString("0.15")},
}

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := dydbstore.Tables{
		Accounts:    os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME"),
		Actions:     os.Getenv("DYNAMODB_ACTIONS_TABLE_NAME"),
		Duels:       os.Getenv("DYNAMODB_DUELS_TABLE_NAME"),
		Assets:      os.Getenv("DYNAMODB_ASSETS_TABLE_NAME"),
		Positions:   os.Getenv("DYNAMODB_POSITIONS_TABLE_NAME"),
		Instruments: os.Getenv("DYNAMODB_INSTRUMENTS_TABLE_NAME"),
		Ledger:      os.Getenv("DYNAMODB_LEDGER_TABLE_NAME"),
		Meta:        os.Getenv("DYNAMODB_META_TABLE_NAME"),
	}
	if tables.Accounts == "" || tables.Actions == "" || tables.Duels == "" ||
		tables.Assets == "" || tables.Positions == "" || tables.Instruments == "" ||
		tables.Ledger == "" || tables.Meta == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS Client and Scheduler
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	sqsScheduler := scheduler.NewSQSScheduler(sqsClient, sqsQueueURL)

	// The collector account receives every fee, tax and commission.
	collectorID, err := strconv.ParseInt(os.Getenv("COLLECTOR_ACCOUNT_ID"), 10, 64)
	if err != nil {
		log.Fatalf("COLLECTOR_ACCOUNT_ID environment variable is not a valid account id: %v", err)
	}

	// Create our storage implementation
	store := dydbstore.New(dbClient, collectorID, tables)

	// Seed the singleton jackpot item and the instrument set. Both are
	// idempotent across restarts.
	if err := store.SeedJackpot(context.TODO(), economy.JackpotSeed); err != nil {
		log.Fatalf("failed to seed jackpot: %v", err)
	}
	if err := store.SeedInstruments(context.TODO(), defaultInstruments); err != nil {
		log.Fatalf("failed to seed instruments: %v", err)
	}

	// Create the services and the handler
	broker := confirmations.NewBroker(store)
	handler := handlers.NewApiHandler(
		store,
		casino.NewEngine(store, casino.StdRNG{}),
		casino.NewDuelCoordinator(store, sqsScheduler, casino.StdRNG{}),
		broker,
		payments.NewService(store, broker),
		marketplace.NewService(store, broker),
	)

	// Create a new Chi router
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := chi.NewRouter()
	router.Use(chimiddleware.RequestID)
	router.Use(middleware.NewStructuredLogger(logger))
	router.Use(chimiddleware.Recoverer)

	handler.Routes(router)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080" // Default port if not specified
	}

	log.Printf("Starting server on port %s", port)

	// Start the server
	err = http.ListenAndServe(":"+port, router)
	if err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
