package mongodb

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dtroode/wedwisely-server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type userDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	Email             string             `bson:"email"`
	Password          string             `bson:"password"`
	FirstName         string             `bson:"firstName"`
	LastName          string             `bson:"lastName"`
	Role              string             `bson:"role"`
	Status            string             `bson:"status"`
	LastLogin         *time.Time         `bson:"lastLogin,omitempty"`
	PasswordChangedAt *time.Time         `bson:"passwordChangedAt,omitempty"`
	CreatedAt         time.Time          `bson:"createdAt"`
	UpdatedAt         time.Time          `bson:"updatedAt"`
}

func (d userDocument) toModel() model.User {
	return model.User{
		ID:                d.ID.Hex(),
		Email:             d.Email,
		PasswordHash:      d.Password,
		FirstName:         d.FirstName,
		LastName:          d.LastName,
		Role:              model.Role(d.Role),
		Status:            model.UserStatus(d.Status),
		LastLogin:         d.LastLogin,
		PasswordChangedAt: d.PasswordChangedAt,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

type roleStatsDocument struct {
	Role        string `bson:"_id"`
	Count       int64  `bson:"count"`
	ActiveCount int64  `bson:"activeCount"`
}

type UserRepository struct {
	users *mongo.Collection
	now   func() time.Time
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		users: db.DB.Collection(usersCollection),
		now:   time.Now,
	}
}

// timestamp matches the millisecond precision BSON dates are stored with.
func (r *UserRepository) timestamp() time.Time {
	return r.now().UTC().Truncate(time.Millisecond)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var doc userDocument
	err := r.users.FindOne(ctx, bson.M{"email": model.NormalizeEmail(email)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return doc.toModel(), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.User{}, model.ErrNotFound
	}

	var doc userDocument
	err = r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return doc.toModel(), nil
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := r.timestamp()
	doc := userDocument{
		ID:        primitive.NewObjectID(),
		Email:     model.NormalizeEmail(user.Email),
		Password:  user.PasswordHash,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      string(user.Role),
		Status:    string(user.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if doc.Role == "" {
		doc.Role = string(model.RoleUser)
	}
	if doc.Status == "" {
		doc.Status = string(model.StatusActive)
	}

	if _, err := r.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return model.User{}, model.ErrDuplicateEmail
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return doc.toModel(), nil
}

func (r *UserRepository) Update(ctx context.Context, id string, update model.UserUpdate) (model.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.User{}, model.ErrNotFound
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDocument
	err = r.users.FindOneAndUpdate(ctx, bson.M{"_id": oid}, buildUpdate(update, r.timestamp()), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return doc.toModel(), nil
}

func (r *UserRepository) SetPassword(ctx context.Context, id string, passwordHash string, changedAt time.Time) error {
	return r.updateOne(ctx, id, bson.M{
		"password":          passwordHash,
		"passwordChangedAt": changedAt.UTC(),
		"updatedAt":         r.timestamp(),
	}, "set password")
}

func (r *UserRepository) SetLastLogin(ctx context.Context, id string, at time.Time) error {
	return r.updateOne(ctx, id, bson.M{"lastLogin": at.UTC()}, "set last login")
}

func (r *UserRepository) Deactivate(ctx context.Context, id string) error {
	return r.updateOne(ctx, id, bson.M{
		"status":    string(model.StatusDeactivated),
		"updatedAt": r.timestamp(),
	}, "deactivate user")
}

func (r *UserRepository) updateOne(ctx context.Context, id string, set bson.M, op string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return model.ErrNotFound
	}

	res, err := r.users.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to %s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) List(ctx context.Context, params model.ListUsersParams) ([]model.User, int64, error) {
	params = params.Normalize()
	filter := buildListFilter(params)

	total, err := r.users.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	opts := options.Find().
		SetSort(buildSort(params)).
		SetSkip(params.Skip()).
		SetLimit(params.Limit)

	cursor, err := r.users.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer cursor.Close(ctx)

	users := make([]model.User, 0, params.Limit)
	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, total, nil
}

func (r *UserRepository) Stats(ctx context.Context) (model.UserStats, error) {
	cursor, err := r.users.Aggregate(ctx, statsPipeline())
	if err != nil {
		return model.UserStats{}, fmt.Errorf("failed to aggregate user stats: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []roleStatsDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return model.UserStats{}, fmt.Errorf("failed to decode user stats: %w", err)
	}

	stats := model.UserStats{ByRole: make([]model.RoleStats, 0, len(docs))}
	for _, d := range docs {
		stats.Total += d.Count
		stats.Active += d.ActiveCount
		stats.ByRole = append(stats.ByRole, model.RoleStats{
			Role:        model.Role(d.Role),
			Count:       d.Count,
			ActiveCount: d.ActiveCount,
		})
	}
	stats.Inactive = stats.Total - stats.Active

	return stats, nil
}

func (r *UserRepository) Ping(ctx context.Context) error {
	return r.users.Database().Client().Ping(ctx, nil)
}

func buildUpdate(update model.UserUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if update.FirstName != nil {
		set["firstName"] = *update.FirstName
	}
	if update.LastName != nil {
		set["lastName"] = *update.LastName
	}
	if update.Role != nil {
		set["role"] = string(*update.Role)
	}
	if update.Status != nil {
		set["status"] = string(*update.Status)
	}
	return bson.M{"$set": set}
}

func buildListFilter(params model.ListUsersParams) bson.M {
	filter := bson.M{}
	if !params.IncludeInactive {
		filter["status"] = string(model.StatusActive)
	}
	if params.Role != nil {
		filter["role"] = string(*params.Role)
	}
	if params.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(params.Search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": pattern},
			bson.M{"lastName": pattern},
			bson.M{"email": pattern},
		}
	}
	return filter
}

// buildSort expects normalized params. Unknown fields fall back to createdAt;
// _id breaks ties so pages stay stable.
func buildSort(params model.ListUsersParams) bson.D {
	field := params.SortBy
	if !model.SortableUserFields[field] {
		field = "createdAt"
	}
	dir := -1
	if params.SortOrder == model.SortAsc {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}, {Key: "_id", Value: dir}}
}

func statsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$role"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "activeCount", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$eq", Value: bson.A{"$status", string(model.StatusActive)}}},
					1,
					0,
				}},
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
