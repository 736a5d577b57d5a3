package transactions

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type transactionMongoRepository struct {
	Collection *mongo.Collection
}

var (
	transactionRepositoryInstance contracts.TransactionRepository
	onceTransactionRepository     sync.Once
)

func NewTransactionMongoRepository(db *mongo.Database, collectionName string) contracts.TransactionRepository {
	onceTransactionRepository.Do(func() {
		instance := &transactionMongoRepository{
			Collection: db.Collection(collectionName),
		}
		transactionRepositoryInstance = instance
	})
	return transactionRepositoryInstance
}

func (r *transactionMongoRepository) Insert(ctx context.Context, transaction *models.Transaction) (string, error) {
	result, err := r.Collection.InsertOne(ctx, transaction)
	if err != nil {
		return "", exceptions.ErrMongoInsert(err)
	}

	objectID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", nil
	}
	return objectID.Hex(), nil
}

func (r *transactionMongoRepository) UpdateStatus(ctx context.Context, transactionID string, status models.TransactionStatusPayment) error {
	objectID, err := primitive.ObjectIDFromHex(transactionID)
	if err != nil {
		return exceptions.ErrMongoUpdate(err)
	}

	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoUpdate(err)
	}
	return nil
}

func (r *transactionMongoRepository) FindBySessionID(ctx context.Context, sessionID string) (*models.Transaction, error) {
	transaction := new(models.Transaction)
	err := r.Collection.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(transaction)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, exceptions.ErrMongoFind(err)
	}
	return transaction, nil
}
