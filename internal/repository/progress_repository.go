package repository

import (
	"context"
	"fmt"
	"time"

	"ayurrag/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// ProgressRepository stores weekly progress logs in the progress_logs
// collection. Logs are append-only; duplicate (user, condition, week)
// rows are allowed and the id mixes in wall-clock time to keep them
// distinct.
type ProgressRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewProgressRepository(db *pgxpool.Pool, logger *zap.Logger) *ProgressRepository {
	return &ProgressRepository{
		db:     db,
		logger: logger,
	}
}

// Append stores one progress log and returns its id.
func (r *ProgressRepository) Append(ctx context.Context, log models.ProgressLog, vector []float32) (string, error) {
	now := time.Now()
	logID := progressLogID(log.UserID, log.Condition, log.Week, now)

	query := squirrel.Insert(models.CollectionProgressLogs).
		Columns("id", "user_id", "condition", "week", "logged_at",
			"energy_level", "symptoms_improvement", "digestion", "sleep_quality", "notes", "embedding").
		Values(logID, log.UserID, log.Condition, log.Week, now.Unix(),
			log.EnergyLevel, log.SymptomsImprovement, log.Digestion, log.SleepQuality, log.Notes,
			pgvector.NewVector(vector)).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return "", fmt.Errorf("failed to append progress log: %w", err)
	}

	r.logger.Info("Progress log stored",
		zap.String("user_id", log.UserID),
		zap.String("condition", log.Condition),
		zap.Int("week", log.Week),
	)
	return logID.String(), nil
}

// List returns every log for the (user, condition) pair in ascending
// week order.
func (r *ProgressRepository) List(ctx context.Context, userID, condition string) ([]models.ProgressLog, error) {
	sql, args, err := listLogsQuery(userID, condition)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list progress logs: %w", err)
	}
	defer rows.Close()

	var logs []models.ProgressLog
	for rows.Next() {
		var log models.ProgressLog
		if err := rows.Scan(
			&log.UserID, &log.Condition, &log.Week, &log.Timestamp,
			&log.EnergyLevel, &log.SymptomsImprovement, &log.Digestion, &log.SleepQuality, &log.Notes,
		); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

// listLogsQuery builds the history listing: exact match on the
// (user, condition) pair, ascending week order.
func listLogsQuery(userID, condition string) (string, []interface{}, error) {
	return squirrel.Select("user_id", "condition", "week", "logged_at",
		"energy_level", "symptoms_improvement", "digestion", "sleep_quality", "notes").
		From(models.CollectionProgressLogs).
		Where(squirrel.Eq{"user_id": userID, "condition": condition}).
		OrderBy("week ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// progressLogID is deterministic for a given (user, condition, week,
// instant) but unique across calls, so duplicate weeks coexist.
func progressLogID(userID, condition string, week int, now time.Time) uuid.UUID {
	seed := fmt.Sprintf("%s_%s_w%d_%d", userID, condition, week, now.UnixNano())
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed))
}
