package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"eliteblog/logger"
	"eliteblog/models"
)

// AILogRepository persists gateway call records.
type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, log models.AILog) (*mongo.InsertOneResult, error) {
	if log.RequestedAt.IsZero() {
		log.RequestedAt = time.Now()
	}
	return r.col.InsertOne(ctx, log)
}

// Record implements gateway.LogSink. Failures to persist a log entry are
// logged and otherwise ignored; monitoring never blocks a user request.
func (r *AILogRepository) Record(ctx context.Context, log models.AILog) {
	if _, err := r.Insert(ctx, log); err != nil {
		logger.Log.Warnf("failed to insert ai log: %v", err)
	}
}
