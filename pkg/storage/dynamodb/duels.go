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

	"github.com/alan12292009/megaroll-core/pkg/models"
	"github.com/alan12292009/megaroll-core/pkg/storage"
)

const stuckDuelGSI = "status-updated_at-index"

// CreateDuel stores a new duel in PENDING state.
func (s *Store) CreateDuel(ctx context.Context, duel *models.Duel) (*models.Duel, error) {
	now := time.Now()
	duel.Status = models.DuelPending
	duel.CreatedAt = now
	duel.UpdatedAt = now
	duel.TTL = ttlFrom(now)

	duelAV, err := attributevalue.MarshalMap(duel)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal duel: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName:           aws.String(s.DuelsTableName),
		Item:                duelAV,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	}

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		return nil, fmt.Errorf("failed to create duel: %w", err)
	}

	return duel, nil
}

// GetDuel retrieves a duel by its token.
func (s *Store) GetDuel(ctx context.Context, token string) (*models.Duel, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(s.DuelsTableName),
		Key:       map[string]types.AttributeValue{"token": strAV(token)},
	}

	result, err := s.Client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get duel: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("duel %s: %w", token, storage.ErrNotFound)
	}

	var duel models.Duel
	if err := attributevalue.UnmarshalMap(result.Item, &duel); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duel: %w", err)
	}

	return &duel, nil
}

// RejectDuel moves a PENDING duel to REJECTED. No funds have been captured
// yet, so this is a pure status transition.
func (s *Store) RejectDuel(ctx context.Context, token string) error {
	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.DuelsTableName),
		Key:                 map[string]types.AttributeValue{"token": strAV(token)},
		UpdateExpression:    aws.String("SET #status = :rejected, updated_at = :now"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":rejected": strAV(string(models.DuelRejected)),
			":pending":  strAV(string(models.DuelPending)),
			":now":      nowAV,
		},
	}

	_, err = s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrAlreadyResolved
		}
		return fmt.Errorf("failed to reject duel: %w", err)
	}

	return nil
}

// ActivateDuel captures both stakes, routes the duel fee to the collector and
// moves the duel from PENDING to ACTIVE, all in one commit. Both balances are
// re-validated here because time has passed since the challenge was issued.
func (s *Store) ActivateDuel(ctx context.Context, duel *models.Duel) error {
	now := time.Now()
	txID := uuid.New().String()

	slog.Log(ctx, slog.LevelDebug, "activating duel",
		"duel", duel.Token, "stake", duel.Stake, "fee", duel.Fee, "pot", duel.Pot)

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	stakeUpdate := func(accountID int64) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(accountID)},
				UpdateExpression:    aws.String("SET balance = balance - :stake, version = version + :inc, last_active_at = :now"),
				ConditionExpression: aws.String("balance >= :stake"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":stake": numAV(duel.Stake),
					":inc":   numAV(1),
					":now":   nowAV,
				},
			},
		}
	}

	items := []types.TransactWriteItem{
		// Operations 1 and 2: Capture both stakes.
		stakeUpdate(duel.ChallengerID),
		stakeUpdate(duel.OpponentID),
		{
			// Operation 3: Route the duel fee to the collector.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(s.CollectorID)},
				UpdateExpression:    aws.String("SET balance = balance + :fee, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":fee": numAV(duel.Fee),
					":inc": numAV(1),
				},
			},
		},
		{
			// Operation 4: Move the duel to ACTIVE with the pot recorded.
			Update: &types.Update{
				TableName:           aws.String(s.DuelsTableName),
				Key:                 map[string]types.AttributeValue{"token": strAV(duel.Token)},
				UpdateExpression:    aws.String("SET #status = :active, pot = :pot, fee = :fee, updated_at = :now"),
				ConditionExpression: aws.String("#status = :pending"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":active":  strAV(string(models.DuelActive)),
					":pending": strAV(string(models.DuelPending)),
					":pot":     numAV(duel.Pot),
					":fee":     numAV(duel.Fee),
					":now":     nowAV,
				},
			},
		},
	}

	challengerEntry, err := s.ledgerPut(txID, duel.ChallengerID, duel.Stake, 0, fmt.Sprintf("Duel %s stake", duel.Token), now)
	if err != nil {
		return err
	}
	opponentEntry, err := s.ledgerPut(txID, duel.OpponentID, duel.Stake, 0, fmt.Sprintf("Duel %s stake", duel.Token), now)
	if err != nil {
		return err
	}
	feeEntry, err := s.ledgerPut(txID, s.CollectorID, 0, duel.Fee, fmt.Sprintf("Duel %s fee", duel.Token), now)
	if err != nil {
		return err
	}
	items = append(items, challengerEntry, opponentEntry, feeEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			if cancelledAt(tce, 0) || cancelledAt(tce, 1) {
				return storage.ErrInsufficientFunds
			}
			if cancelledAt(tce, 3) {
				return storage.ErrAlreadyResolved
			}
		}
		return fmt.Errorf("failed to execute duel activation transaction: %w", err)
	}

	return nil
}

// RecordRoll stores a participant's roll. The conditional write enforces the
// one-roll-per-participant rule at the storage layer, so two concurrent
// submissions cannot both land.
func (s *Store) RecordRoll(ctx context.Context, token string, participantID int64, roll int64) (*models.Duel, error) {
	duel, err := s.GetDuel(ctx, token)
	if err != nil {
		return nil, err
	}
	if !duel.IsParticipant(participantID) {
		return nil, storage.ErrForbidden
	}

	rollAttr := "challenger_roll"
	if participantID == duel.OpponentID {
		rollAttr = "opponent_roll"
	}

	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.DuelsTableName),
		Key:                 map[string]types.AttributeValue{"token": strAV(token)},
		UpdateExpression:    aws.String("SET #roll = :roll, updated_at = :now"),
		ConditionExpression: aws.String("#status = :active AND attribute_not_exists(#roll)"),
		ExpressionAttributeNames: map[string]string{
			"#roll":   rollAttr,
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":roll":   numAV(roll),
			":active": strAV(string(models.DuelActive)),
			":now":    nowAV,
		},
		ReturnValues: types.ReturnValueAllNew,
	}

	result, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			if duel.Status != models.DuelActive {
				return nil, storage.ErrAlreadyResolved
			}
			return nil, storage.ErrDuplicateRoll
		}
		return nil, fmt.Errorf("failed to record roll: %w", err)
	}

	var updated models.Duel
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated duel: %w", err)
	}

	return &updated, nil
}

// SettleDuel pays the pot to the winner, updates both participants' duel
// statistics and moves the duel from ACTIVE to RESOLVED. The status condition
// makes settlement idempotent: only one resolver wins the transition.
func (s *Store) SettleDuel(ctx context.Context, duel *models.Duel, winnerID int64) error {
	loserID := duel.ChallengerID
	if winnerID == duel.ChallengerID {
		loserID = duel.OpponentID
	}

	now := time.Now()
	txID := uuid.New().String()

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			// Operation 1: Credit the pot and a duel win to the winner.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(winnerID)},
				UpdateExpression:    aws.String("SET balance = balance + :pot, duel_wins = duel_wins + :one, version = version + :one, last_active_at = :now"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":pot": numAV(duel.Pot),
					":one": numAV(1),
					":now": nowAV,
				},
			},
		},
		{
			// Operation 2: Record the loss for the loser.
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(loserID)},
				UpdateExpression:    aws.String("SET duel_losses = duel_losses + :one, version = version + :one"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":one": numAV(1),
				},
			},
		},
		{
			// Operation 3: Move the duel to RESOLVED.
			Update: &types.Update{
				TableName:           aws.String(s.DuelsTableName),
				Key:                 map[string]types.AttributeValue{"token": strAV(duel.Token)},
				UpdateExpression:    aws.String("SET #status = :resolved, winner_id = :winner, updated_at = :now"),
				ConditionExpression: aws.String("#status = :active"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":resolved": strAV(string(models.DuelResolved)),
					":active":   strAV(string(models.DuelActive)),
					":winner":   numAV(winnerID),
					":now":      nowAV,
				},
			},
		},
	}

	potEntry, err := s.ledgerPut(txID, winnerID, 0, duel.Pot, fmt.Sprintf("Duel %s pot", duel.Token), now)
	if err != nil {
		return err
	}
	items = append(items, potEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && cancelledAt(tce, 2) {
			return storage.ErrAlreadyResolved
		}
		return fmt.Errorf("failed to execute duel settlement transaction: %w", err)
	}

	return nil
}

// RefundDuel returns each participant's stake and moves the duel from ACTIVE
// to the given terminal status. Used for ties and for expired duels; the fee
// captured at accept time is not refunded in either case.
func (s *Store) RefundDuel(ctx context.Context, duel *models.Duel, status models.DuelStatus) error {
	now := time.Now()
	txID := uuid.New().String()

	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	refundUpdate := func(accountID int64) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(s.AccountsTableName),
				Key:                 map[string]types.AttributeValue{"id": numAV(accountID)},
				UpdateExpression:    aws.String("SET balance = balance + :stake, version = version + :inc"),
				ConditionExpression: aws.String("attribute_exists(id)"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":stake": numAV(duel.Stake),
					":inc":   numAV(1),
				},
			},
		}
	}

	items := []types.TransactWriteItem{
		// Operations 1 and 2: Refund both stakes.
		refundUpdate(duel.ChallengerID),
		refundUpdate(duel.OpponentID),
		{
			// Operation 3: Terminal status transition.
			Update: &types.Update{
				TableName:           aws.String(s.DuelsTableName),
				Key:                 map[string]types.AttributeValue{"token": strAV(duel.Token)},
				UpdateExpression:    aws.String("SET #status = :status, updated_at = :now"),
				ConditionExpression: aws.String("#status = :active"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":status": strAV(string(status)),
					":active": strAV(string(models.DuelActive)),
					":now":    nowAV,
				},
			},
		},
	}

	challengerEntry, err := s.ledgerPut(txID, duel.ChallengerID, 0, duel.Stake, fmt.Sprintf("Duel %s stake refund", duel.Token), now)
	if err != nil {
		return err
	}
	opponentEntry, err := s.ledgerPut(txID, duel.OpponentID, 0, duel.Stake, fmt.Sprintf("Duel %s stake refund", duel.Token), now)
	if err != nil {
		return err
	}
	items = append(items, challengerEntry, opponentEntry)

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && cancelledAt(tce, 2) {
			return storage.ErrAlreadyResolved
		}
		return fmt.Errorf("failed to execute duel refund transaction: %w", err)
	}

	return nil
}

// GetStuckDuels retrieves duels that have been ACTIVE for longer than the
// specified duration. Used by the reconciliation sweep for duels whose expiry
// message was lost.
func (s *Store) GetStuckDuels(ctx context.Context, maxAge time.Duration) ([]models.Duel, error) {
	cutoffTime := time.Now().Add(-maxAge)
	cutoffTimeStr, err := cutoffTime.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.DuelsTableName),
		IndexName:              aws.String(stuckDuelGSI),
		KeyConditionExpression: aws.String("#status = :status AND updated_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": strAV(string(models.DuelActive)),
			":cutoff": strAV(string(cutoffTimeStr)),
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query for stuck duels: %w", err)
	}

	var duels []models.Duel
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &duels); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stuck duels: %w", err)
	}

	return duels, nil
}
