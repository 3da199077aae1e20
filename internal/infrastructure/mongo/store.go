package mongo

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"opsCalc/internal/domain"
	"opsCalc/internal/ports"
)

var _ ports.IOperationStore = (*OperationStore)(nil)

// operationDoc — документ в коллекции operations.
type operationDoc struct {
	ID        bson.ObjectID `bson:"_id"`
	Email     string        `bson:"email"`
	Operands  []float64     `bson:"operands"`
	Operator  string        `bson:"operator"`
	Result    float64       `bson:"result"`
	IsDeleted bool          `bson:"isDeleted"`
	CreatedAt time.Time     `bson:"createdAt"`
}

func (d operationDoc) toDomain() domain.Operation {
	return domain.Operation{
		ID:        d.ID.Hex(),
		Email:     d.Email,
		Operands:  d.Operands,
		Operator:  d.Operator,
		Result:    d.Result,
		IsDeleted: d.IsDeleted,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// OperationStore реализует ports.IOperationStore для MongoDB.
type OperationStore struct {
	client *Client
	log    *slog.Logger
}

// NewOperationStore возвращает хранилище операций.
func NewOperationStore(client *Client, log *slog.Logger) *OperationStore {
	return &OperationStore{client: client, log: log}
}

// Create вставляет документ одним InsertOne и возвращает hex ObjectID.
func (s *OperationStore) Create(ctx context.Context, op domain.Operation) (string, error) {
	doc := operationDoc{
		ID:        bson.NewObjectID(),
		Email:     op.Email,
		Operands:  op.Operands,
		Operator:  op.Operator,
		Result:    op.Result,
		IsDeleted: false,
		CreatedAt: op.CreatedAt,
	}
	if _, err := s.client.Coll().InsertOne(ctx, doc); err != nil {
		s.log.Debug("Create failed", "error", err)
		return "", err
	}
	return doc.ID.Hex(), nil
}

// ListByEmail возвращает неудалённые операции пользователя (последние сначала).
func (s *OperationStore) ListByEmail(ctx context.Context, email string) ([]domain.Operation, error) {
	filter := bson.D{{Key: "email", Value: email}, {Key: "isDeleted", Value: false}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.client.Coll().Find(ctx, filter, opts)
	if err != nil {
		s.log.Debug("ListByEmail failed", "error", err)
		return nil, err
	}
	defer cursor.Close(ctx)
	var docs []operationDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	list := make([]domain.Operation, 0, len(docs))
	for _, d := range docs {
		list = append(list, d.toDomain())
	}
	return list, nil
}

// MarkDeleted атомарно выставляет isDeleted по паре (_id, email).
// Уже удалённая запись находится тем же фильтром, повторный вызов успешен.
func (s *OperationStore) MarkDeleted(ctx context.Context, email, id string) (*domain.Operation, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}
	filter := bson.D{{Key: "_id", Value: oid}, {Key: "email", Value: email}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "isDeleted", Value: true}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc operationDoc
	err = s.client.Coll().FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		s.log.Debug("MarkDeleted failed", "error", err)
		return nil, err
	}
	op := doc.toDomain()
	return &op, nil
}

// MarkAllDeleted помечает удалёнными все неудалённые операции пользователя.
func (s *OperationStore) MarkAllDeleted(ctx context.Context, email string) (int64, error) {
	filter := bson.D{{Key: "email", Value: email}, {Key: "isDeleted", Value: false}}
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "isDeleted", Value: true}}}}
	res, err := s.client.Coll().UpdateMany(ctx, filter, update)
	if err != nil {
		s.log.Debug("MarkAllDeleted failed", "error", err)
		return 0, err
	}
	if res.MatchedCount == 0 {
		return 0, domain.ErrNotFound
	}
	return res.ModifiedCount, nil
}

// Ping проверяет доступность БД.
func (s *OperationStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}
