package dynamodb

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// Store implements the Storage interface using AWS DynamoDB. Every
// settlement operation is a single TransactWriteItems whose condition
// expressions re-validate balances and versions at commit time.
type Store struct {
	Client               DynamoDBAPI
	CollectorID          int64
	AccountsTableName    string
	ActionsTableName     string
	DuelsTableName       string
	AssetsTableName      string
	PositionsTableName   string
	InstrumentsTableName string
	LedgerTableName      string
	MetaTableName        string
}

// Tables groups the table names the store operates on.
type Tables struct {
	Accounts    string
	Actions     string
	Duels       string
	Assets      string
	Positions   string
	Instruments string
	Ledger      string
	Meta        string
}

// New creates a new Store. collectorID is the account that receives all
// fees and commissions.
func New(client DynamoDBAPI, collectorID int64, tables Tables) *Store {
	return &Store{
		Client:               client,
		CollectorID:          collectorID,
		AccountsTableName:    tables.Accounts,
		ActionsTableName:     tables.Actions,
		DuelsTableName:       tables.Duels,
		AssetsTableName:      tables.Assets,
		PositionsTableName:   tables.Positions,
		InstrumentsTableName: tables.Instruments,
		LedgerTableName:      tables.Ledger,
		MetaTableName:        tables.Meta,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

// recordTTL keeps transient records (actions, duels) from accumulating
// forever; terminal cleanup still happens through explicit expiry.
const recordTTL = 24 * time.Hour

func ttlFrom(now time.Time) int64 {
	return now.Add(recordTTL).Unix()
}

func numAV(v int64) *types.AttributeValueMemberN {
	return &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", v)}
}

func strAV(v string) *types.AttributeValueMemberS {
	return &types.AttributeValueMemberS{Value: v}
}

// cancelledAt reports whether the i-th operation of a cancelled write
// transaction failed its conditional check.
func cancelledAt(tce *types.TransactionCanceledException, i int) bool {
	if i >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[i].Code
	return code != nil && *code == "ConditionalCheckFailed"
}
