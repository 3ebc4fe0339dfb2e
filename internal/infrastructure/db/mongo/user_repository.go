package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ilgaur/auth-service/internal/core/domain"
)

const (
	userCollection    = "users"
	counterCollection = "counters"
	userCounterID     = "user_id"
)

// UserRepository persists users in MongoDB. Username and email uniqueness is
// enforced by unique indexes, so a race between two concurrent creates is
// settled atomically by the server: one insert wins, the other surfaces as
// domain.ErrDuplicateCredential.
type UserRepository struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		users:    db.Collection(userCollection),
		counters: db.Collection(counterCollection),
	}
}

type mongoUser struct {
	ID           int64  `bson:"_id"`
	Username     string `bson:"username"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"password_hash"`
	IsActive     bool   `bson:"is_active"`
	IsAdmin      bool   `bson:"is_admin"`
	CreatedAt    int64  `bson:"created_at"`
}

// EnsureIndexes creates the unique indexes backing the uniqueness invariant.
// Idempotent; called once at startup.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}

// Create inserts the user and returns it with its assigned numeric id.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	doc := mongoUser{
		ID:           id,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		IsActive:     user.IsActive,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt.Unix(),
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateCredential
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = id
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

// FindByUsernameOrEmail returns any user matching either value; used as the
// signup existence check.
func (r *UserRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"username": username},
		bson.M{"email": email},
	}})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var mu mongoUser
	if err := r.users.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	return &domain.User{
		ID:           mu.ID,
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		IsActive:     mu.IsActive,
		IsAdmin:      mu.IsAdmin,
		CreatedAt:    unixToTime(mu.CreatedAt),
	}, nil
}

// nextID allocates the next user id from the counters collection, the
// standard Mongo sequence pattern (FindOneAndUpdate $inc with upsert).
func (r *UserRepository) nextID(ctx context.Context) (int64, error) {
	var counter struct {
		Seq int64 `bson:"seq"`
	}

	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": userCounterID},
		bson.M{"$inc": bson.M{"seq": int64(1)}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("allocate user id: %w", err)
	}
	return counter.Seq, nil
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
