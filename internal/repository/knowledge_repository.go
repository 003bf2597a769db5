package repository

import (
	"context"
	"errors"
	"fmt"

	"ayurrag/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// ErrUnknownCollection signals a programmer error: a collection name
// outside the fixed set was passed to Upsert or SearchByCondition.
var ErrUnknownCollection = errors.New("unknown collection")

var knownCollections = func() map[string]bool {
	m := make(map[string]bool, len(models.KnowledgeCollections))
	for _, name := range models.KnowledgeCollections {
		m[name] = true
	}
	return m
}()

// KnowledgeRepository owns the fixed set of vector collections. Each
// collection is a pgvector-backed table; all vectors share the
// configured embedding dimension.
type KnowledgeRepository struct {
	db       *pgxpool.Pool
	embedDim int
	logger   *zap.Logger
}

func NewKnowledgeRepository(db *pgxpool.Pool, embedDim int, logger *zap.Logger) *KnowledgeRepository {
	return &KnowledgeRepository{
		db:       db,
		embedDim: embedDim,
		logger:   logger,
	}
}

// EnsureCollections creates every required collection and its
// exact-match indexes if absent. Safe to call repeatedly; index
// creation failures on already-indexed fields are swallowed.
func (r *KnowledgeRepository) EnsureCollections(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, "CREATE EXTENSION IF NOT EXISTS vector"); err != nil {
		return fmt.Errorf("failed to enable pgvector extension: %w", err)
	}

	knowledgeDDL := `CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		condition TEXT NOT NULL,
		dosha TEXT NOT NULL DEFAULT '',
		type TEXT NOT NULL DEFAULT '',
		herb TEXT NOT NULL DEFAULT '',
		text TEXT NOT NULL,
		embedding vector(%d)
	)`

	for _, name := range models.KnowledgeCollections {
		if name == models.CollectionProgressLogs {
			continue
		}
		if _, err := r.db.Exec(ctx, fmt.Sprintf(knowledgeDDL, name, r.embedDim)); err != nil {
			return fmt.Errorf("failed to create collection %s: %w", name, err)
		}
		for _, field := range []string{"condition", "dosha", "type", "herb"} {
			idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)", name, field, name, field)
			if _, err := r.db.Exec(ctx, idx); err != nil {
				r.logger.Debug("Index creation skipped",
					zap.String("collection", name),
					zap.String("field", field),
					zap.Error(err),
				)
			}
		}
	}

	progressDDL := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		condition TEXT NOT NULL,
		week INT NOT NULL,
		logged_at BIGINT NOT NULL,
		energy_level TEXT NOT NULL DEFAULT '',
		symptoms_improvement TEXT NOT NULL DEFAULT '',
		digestion TEXT NOT NULL DEFAULT '',
		sleep_quality TEXT NOT NULL DEFAULT '',
		notes TEXT NOT NULL DEFAULT '',
		embedding vector(%d)
	)`, models.CollectionProgressLogs, r.embedDim)
	if _, err := r.db.Exec(ctx, progressDDL); err != nil {
		return fmt.Errorf("failed to create collection %s: %w", models.CollectionProgressLogs, err)
	}
	idx := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_user_condition ON %s (user_id, condition)",
		models.CollectionProgressLogs, models.CollectionProgressLogs)
	if _, err := r.db.Exec(ctx, idx); err != nil {
		r.logger.Debug("Index creation skipped",
			zap.String("collection", models.CollectionProgressLogs),
			zap.Error(err),
		)
	}

	return nil
}

// IsSeeded reports whether the collection holds at least one point.
// Errors degrade to false so callers simply reseed.
func (r *KnowledgeRepository) IsSeeded(ctx context.Context, collection string) bool {
	if !knownCollections[collection] {
		return false
	}

	var count int64
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", collection)
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.logger.Warn("Seed check failed", zap.String("collection", collection), zap.Error(err))
		return false
	}
	return count > 0
}

// Upsert writes entries with their positionally aligned vectors. Point
// ids are a stable hash of collection+entry id, so repeated seeding
// overwrites instead of duplicating.
func (r *KnowledgeRepository) Upsert(ctx context.Context, collection string, entries []models.KnowledgeEntry, vectors [][]float32) error {
	if !knownCollections[collection] {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	if len(entries) != len(vectors) {
		return fmt.Errorf("entries and vectors are misaligned: %d != %d", len(entries), len(vectors))
	}
	if len(entries) == 0 {
		return nil
	}

	query := squirrel.Insert(collection).
		Columns("id", "condition", "dosha", "type", "herb", "text", "embedding").
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			condition = EXCLUDED.condition,
			dosha = EXCLUDED.dosha,
			type = EXCLUDED.type,
			herb = EXCLUDED.herb,
			text = EXCLUDED.text,
			embedding = EXCLUDED.embedding`).
		PlaceholderFormat(squirrel.Dollar)

	for i, entry := range entries {
		query = query.Values(
			pointID(collection, entry.ID),
			entry.Condition,
			entry.Dosha,
			string(entry.Type),
			entry.Herb,
			entry.Text,
			pgvector.NewVector(vectors[i]),
		)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", collection, err)
	}

	r.logger.Info("Knowledge entries upserted",
		zap.String("collection", collection),
		zap.Int("count", len(entries)),
	)
	return nil
}

// SearchByCondition returns up to topK passages from the collection
// whose condition field exactly equals the argument, ranked by
// ascending cosine distance to the query vector.
func (r *KnowledgeRepository) SearchByCondition(ctx context.Context, collection string, queryVector []float32, condition string, topK int) ([]models.Passage, error) {
	if !knownCollections[collection] || collection == models.CollectionProgressLogs {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}

	sql, args, err := searchByConditionQuery(collection, queryVector, condition, topK)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s: %w", collection, err)
	}
	defer rows.Close()

	var results []models.Passage
	for rows.Next() {
		var p models.Passage
		var entryType string
		if err := rows.Scan(&p.Condition, &p.Dosha, &entryType, &p.Herb, &p.Text); err != nil {
			return nil, err
		}
		p.Type = models.EntryType(entryType)
		results = append(results, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// searchByConditionQuery builds the filtered similarity search: exact
// equality on condition, cosine ordering, hard row limit.
func searchByConditionQuery(collection string, queryVector []float32, condition string, topK int) (string, []interface{}, error) {
	return squirrel.Select("condition", "dosha", "type", "herb", "text").
		From(collection).
		Where(squirrel.Eq{"condition": condition}).
		OrderByClause("embedding <=> ?", pgvector.NewVector(queryVector)).
		Limit(uint64(topK)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// pointID derives the stored point id from the collection and logical
// entry id, mirroring a v5 UUID in the URL namespace.
func pointID(collection, logicalID string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(collection+"_"+logicalID))
}
