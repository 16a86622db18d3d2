package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"github.com/alan12292009/megaroll-core/pkg/economy"
	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

// ApplyGameSettlement commits a resolved bet in one write transaction:
// player balance and statistics, collector credit, jackpot accrual or reset,
// and ledger entries. The player's version and the jackpot version observed
// when the outcome was computed are both re-checked at commit time; any
// concurrent change cancels the whole transaction and nothing is applied.
func (s *Store) ApplyGameSettlement(ctx context.Context, settlement *models.GameSettlement, jackpotVersion int64) error {
	// 1. Get the current state of the player's account for optimistic locking.
	player, err := s.GetAccount(ctx, settlement.AccountID)
	if err != nil {
		return fmt.Errorf("failed to get player's account for settlement: %w", err)
	}

	now := time.Now()
	txID := uuid.New().String()

	slog.Log(ctx, slog.LevelDebug, "applying game settlement",
		"tx_id", txID, "account", settlement.AccountID, "game", settlement.Game,
		"outcome", settlement.Outcome, "player_delta", settlement.PlayerDelta)

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// 2. Compute the post-settlement statistics client-side; the version
	// condition guarantees they are applied against the state we read.
	games := player.TotalGames + 1
	wins := player.TotalWins
	losses := player.TotalLosses
	biggestWin := player.BiggestWin
	biggestLoss := player.BiggestLoss
	if settlement.Won() {
		wins++
		if settlement.PlayerDelta > biggestWin {
			biggestWin = settlement.PlayerDelta
		}
	} else {
		losses++
		if settlement.Bet > biggestLoss {
			biggestLoss = settlement.Bet
		}
	}

	// balance >= :floor re-validates the stake against the live balance.
	var floor int64
	if settlement.PlayerDelta < 0 {
		floor = -settlement.PlayerDelta
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Settle the player's balance and statistics.
			Update: &types.Update{
				TableName: aws.String(s.AccountsTableName),
				Key:       map[string]types.AttributeValue{"id": numAV(settlement.AccountID)},
				UpdateExpression: aws.String("SET balance = balance + :delta, version = version + :inc, last_active_at = :now, " +
					"total_games = :games, total_wins = :wins, total_losses = :losses, biggest_win = :bwin, biggest_loss = :bloss"),
				ConditionExpression: aws.String("version = :version AND balance >= :floor"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":delta":   numAV(settlement.PlayerDelta),
					":inc":     numAV(1),
					":now":     nowAV,
					":games":   numAV(games),
					":wins":    numAV(wins),
					":losses":  numAV(losses),
					":bwin":    numAV(biggestWin),
					":bloss":   numAV(biggestLoss),
					":version": numAV(player.Version),
					":floor":   numAV(floor),
				},
			},
		},
	}

	if settlement.CollectorDelta != 0 {
		items = append(items, types.TransactWriteItem{
			// Operation 2: Route the lost stake to the collector.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(s.CollectorID)},
				UpdateExpression:    aws.String("SET balance = balance + :delta, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":delta": numAV(settlement.CollectorDelta),
					":inc":   numAV(1),
				},
			},
		})
	}

	// Operation 3: Accrue into (or reset and re-seed) the jackpot pool.
	jackpotUpdate := &types.Update{
		TableName:           aws.String(s.MetaTableName),
		Key:                 map[string]types.AttributeValue{"id": strAV(models.JackpotID)},
		UpdateExpression:    aws.String("SET #v = #v + :delta, version = version + :inc"),
		ConditionExpression: aws.String("version = :jversion"),
		ExpressionAttributeNames: map[string]string{
			"#v": "value",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":delta":    numAV(settlement.JackpotDelta),
			":inc":      numAV(1),
			":jversion": numAV(jackpotVersion),
		},
	}
	if settlement.JackpotReset {
		// A jackpot hit pays the whole pool; it restarts from the seed
		// plus the tax withheld from the payout itself.
		jackpotUpdate.UpdateExpression = aws.String("SET #v = :seed + :delta, version = version + :inc")
		jackpotUpdate.ExpressionAttributeValues[":seed"] = numAV(economy.JackpotSeed)
	}
	items = append(items, types.TransactWriteItem{Update: jackpotUpdate})

	// Operations 4+: Ledger entries.
	var debit, credit int64
	if settlement.PlayerDelta < 0 {
		debit = -settlement.PlayerDelta
	} else {
		credit = settlement.PlayerDelta
	}
	playerEntry, err := s.ledgerPut(txID, settlement.AccountID, debit, credit,
		fmt.Sprintf("%s %s settlement", settlement.Game, settlement.Outcome), now)
	if err != nil {
		return err
	}
	items = append(items, playerEntry)

	if settlement.CollectorDelta != 0 {
		collectorEntry, err := s.ledgerPut(txID, s.CollectorID, 0, settlement.CollectorDelta,
			fmt.Sprintf("%s lost stake", settlement.Game), now)
		if err != nil {
			return err
		}
		items = append(items, collectorEntry)
	}

	// 3. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if cancelledAt(tce, 0) {
				if floor > 0 {
					return storage.ErrInsufficientFunds
				}
				return storage.ErrConflict
			}
			for i := 1; i < len(tce.CancellationReasons); i++ {
				if cancelledAt(tce, i) {
					return storage.ErrConflict
				}
			}
		}
		return fmt.Errorf("failed to execute settlement transaction: %w", err)
	}

	return nil
}
