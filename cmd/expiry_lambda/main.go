package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
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

func init() {
	// Load environment variables from .env file (useful for local testing).
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Initialize dependencies once.
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
	if tables.Accounts == "" || tables.Actions == "" || tables.Duels == "" || tables.Ledger == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	collectorID, err := strconv.ParseInt(os.Getenv("COLLECTOR_ACCOUNT_ID"), 10, 64)
	if err != nil {
		log.Fatalf("COLLECTOR_ACCOUNT_ID environment variable is not a valid account id: %v", err)
	}

	store = dydbstore.New(dbClient, collectorID, tables)

	// The expiry consumer never schedules new expiries, so the coordinator
	// gets the no-op scheduler.
	coordinator = casino.NewDuelCoordinator(store, scheduler.NoOpScheduler{}, casino.StdRNG{})
}

// HandleRequest processes delayed expiry events: abandoned duels are refunded
// and unresolved confirmation tokens are discarded.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var msg scheduler.ExpiryMessage
		if err := json.Unmarshal([]byte(message.Body), &msg); err != nil {
			log.Printf("ERROR: failed to unmarshal expiry message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}

		switch msg.Kind {
		case scheduler.ExpireDuel:
			if err := coordinator.ExpireDuel(ctx, msg.Token); err != nil {
				log.Printf("ERROR: failed to expire duel %s: %v", msg.Token, err)
				return err
			}
			log.Printf("Expired duel %s", msg.Token)
		case scheduler.ExpireAction:
			err := store.ConsumeAction(ctx, msg.Token)
			if err != nil && !errors.Is(err, storage.ErrNotFound) {
				log.Printf("ERROR: failed to discard action %s: %v", msg.Token, err)
				return err
			}
			log.Printf("Discarded action %s", msg.Token)
		default:
			// Unknown kinds are dropped; retrying cannot make them known.
			log.Printf("WARN: unknown expiry kind %q in message %s", msg.Kind, message.MessageId)
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
