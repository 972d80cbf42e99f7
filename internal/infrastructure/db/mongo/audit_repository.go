package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medisys/hms-api/internal/core/ports"
)

const auditCollection = "access_audit"

// MongoAuditRepository appends access-trail entries. Insert-only.
type MongoAuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *MongoAuditRepository {
	return &MongoAuditRepository{coll: db.Collection(auditCollection)}
}

type mongoAuditEntry struct {
	Username  string `bson:"username"`
	Role      string `bson:"role"`
	Operation string `bson:"operation"`
	Decision  string `bson:"decision"`
	Detail    string `bson:"detail,omitempty"`
	Timestamp int64  `bson:"timestamp"`
}

func (r *MongoAuditRepository) Insert(ctx context.Context, entry *ports.AuditEntry) error {
	doc := mongoAuditEntry{
		Username:  entry.Username,
		Role:      entry.Role,
		Operation: entry.Operation,
		Decision:  entry.Decision,
		Detail:    entry.Detail,
		Timestamp: entry.Timestamp.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}
