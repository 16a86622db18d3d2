package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/joho/godotenv"

	"github.com/alan12292009/megaroll-core/pkg/casino"
	"github.com/alan12292009/megaroll-core/pkg/scheduler"
	"github.com/alan12292009/megaroll-core/pkg/storage"
	dydbstore "github.com/alan12292009/megaroll-core/pkg/storage/dynamodb"
)

var store storage.Storage
var coordinator *casino.DuelCoordinator

// stuckDuelThreshold is deliberately wider than the scheduled duel expiry so
// the sweep only catches duels whose expiry message was lost.
const stuckDuelThreshold = 20 * time.Minute

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	tables := dydbstore.Tables{
		Accounts: os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME"),
		Actions:  os.Getenv("DYNAMODB_ACTIONS_TABLE_NAME"),
		Duels:    os.Getenv("DYNAMODB_DUELS_TABLE_NAME"),
		Ledger:   os.Getenv("DYNAMODB_LEDGER_TABLE_NAME"),
	}

	collectorID, err := strconv.ParseInt(os.Getenv("COLLECTOR_ACCOUNT_ID"), 10, 64)
	if err != nil {
		log.Fatalf("COLLECTOR_ACCOUNT_ID environment variable is not a valid account id: %v", err)
	}

	store = dydbstore.New(dbClient, collectorID, tables)
	coordinator = casino.NewDuelCoordinator(store, scheduler.NoOpScheduler{}, casino.StdRNG{})
}

// HandleRequest is triggered by an EventBridge Schedule.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting reconciliation process for stuck duels...")

	stuckDuels, err := store.GetStuckDuels(ctx, stuckDuelThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stuck duels: %v", err)
		return err
	}

	if len(stuckDuels) == 0 {
		log.Println("No stuck duels found.")
		return nil
	}

	log.Printf("Found %d stuck duels. Expiring them...", len(stuckDuels))

	for _, duel := range stuckDuels {
		if err := coordinator.ExpireDuel(ctx, duel.Token); err != nil {
			log.Printf("ERROR: failed to expire duel %s: %v", duel.Token, err)
			// Continue to the next duel, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully expired duel %s", duel.Token)
	}

	log.Println("Reconciliation process finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
