package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/imadityagolu/mct-5-amazone/apperr"
	"github.com/imadityagolu/mct-5-amazone/models"
)

// Connect opens a client and verifies the connection with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return client, nil
}

// MongoCartRepository keeps one document per (user, product).
type MongoCartRepository struct {
	collection *mongo.Collection
}

func NewMongoCartRepository(db *mongo.Database) *MongoCartRepository {
	return &MongoCartRepository{collection: db.Collection("carts")}
}

func (r *MongoCartRepository) AddOrIncrement(ctx context.Context, userID string, product models.Product) (models.CartItem, error) {
	filter := bson.M{"user_id": userID, "product_id": product.ID}
	// Single server-side upsert so two rapid adds both land: no
	// read-then-write window.
	update := bson.M{
		"$inc": bson.M{"quantity": 1},
		"$setOnInsert": bson.M{
			"user_id":     userID,
			"product_id":  product.ID,
			"name":        product.Name,
			"type":        product.Type,
			"price":       product.Price,
			"description": product.Description,
			"image":       product.Image,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var item models.CartItem
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&item); err != nil {
		return models.CartItem{}, apperr.Wrap(apperr.CodeRemote, err, "adding item to cart")
	}
	return item, nil
}

func (r *MongoCartRepository) ListItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeRemote, err, "fetching cart")
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperr.Wrap(apperr.CodeRemote, err, "reading cart")
	}
	return items, nil
}

func (r *MongoCartRepository) SetQuantity(ctx context.Context, userID string, productID, quantity int) error {
	filter := bson.M{"user_id": userID, "product_id": productID}
	result, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"quantity": quantity}})
	if err != nil {
		return apperr.Wrap(apperr.CodeRemote, err, "updating cart quantity")
	}
	if result.MatchedCount == 0 {
		return apperr.New(apperr.CodeNotFound, "item not found")
	}
	return nil
}

func (r *MongoCartRepository) DeleteItem(ctx context.Context, userID string, productID int) (bool, error) {
	filter := bson.M{"user_id": userID, "product_id": productID}
	result, err := r.collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, apperr.Wrap(apperr.CodeRemote, err, "removing cart item")
	}
	return result.DeletedCount > 0, nil
}

func (r *MongoCartRepository) Clear(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return apperr.Wrap(apperr.CodeRemote, err, "clearing cart")
	}
	return nil
}

// MongoWishlistRepository keys documents by "{userID}:{productID}" so a
// duplicate add surfaces as a key collision.
type MongoWishlistRepository struct {
	collection *mongo.Collection
}

func NewMongoWishlistRepository(db *mongo.Database) *MongoWishlistRepository {
	return &MongoWishlistRepository{collection: db.Collection("wishlists")}
}

func wishlistKey(userID string, productID int) string {
	return fmt.Sprintf("%s:%d", userID, productID)
}

func (r *MongoWishlistRepository) AddItem(ctx context.Context, userID string, product models.Product) error {
	doc := bson.M{
		"_id":         wishlistKey(userID, product.ID),
		"user_id":     userID,
		"product_id":  product.ID,
		"name":        product.Name,
		"type":        product.Type,
		"price":       product.Price,
		"description": product.Description,
		"image":       product.Image,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperr.New(apperr.CodeDuplicate, "item already in wishlist")
		}
		return apperr.Wrap(apperr.CodeRemote, err, "adding item to wishlist")
	}
	return nil
}

func (r *MongoWishlistRepository) ListItems(ctx context.Context, userID string) ([]models.Product, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeRemote, err, "fetching wishlist")
	}
	defer cursor.Close(ctx)

	items := []models.Product{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, apperr.Wrap(apperr.CodeRemote, err, "reading wishlist")
	}
	return items, nil
}

func (r *MongoWishlistRepository) DeleteItem(ctx context.Context, userID string, productID int) error {
	filter := bson.M{"_id": wishlistKey(userID, productID)}
	if _, err := r.collection.DeleteOne(ctx, filter); err != nil {
		return apperr.Wrap(apperr.CodeRemote, err, "removing wishlist item")
	}
	return nil
}

// MongoProfileRepository keeps one profile document per user, keyed by the
// user id.
type MongoProfileRepository struct {
	collection *mongo.Collection
}

func NewMongoProfileRepository(db *mongo.Database) *MongoProfileRepository {
	return &MongoProfileRepository{collection: db.Collection("profiles")}
}

func (r *MongoProfileRepository) Get(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile
	err := r.collection.FindOne(ctx, bson.M{"_id": userID}).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Profile{}, apperr.New(apperr.CodeNotFound, "profile not found")
		}
		return models.Profile{}, apperr.Wrap(apperr.CodeRemote, err, "fetching profile")
	}
	return profile, nil
}

func (r *MongoProfileRepository) Merge(ctx context.Context, userID string, profile models.Profile) error {
	// The omitempty tags drop unset fields, so this writes only what the
	// caller provided.
	raw, err := bson.Marshal(profile)
	if err != nil {
		return apperr.Wrap(apperr.CodeRemote, err, "encoding profile")
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return apperr.Wrap(apperr.CodeRemote, err, "encoding profile")
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": fields}, opts); err != nil {
		return apperr.Wrap(apperr.CodeRemote, err, "updating profile")
	}
	return nil
}

// MongoUserRepository stores auth accounts.
type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection("users")}
}

func (r *MongoUserRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.CodeRemote, err, "checking existing user")
	}
	if count > 0 {
		return models.User{}, apperr.New(apperr.CodeDuplicate, "user already exists")
	}

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		return models.User{}, apperr.Wrap(apperr.CodeRemote, err, "creating user")
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	return user, nil
}

func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, apperr.New(apperr.CodeNotFound, "user not found")
		}
		return models.User{}, apperr.Wrap(apperr.CodeRemote, err, "fetching user")
	}
	return user, nil
}

// MongoOrderRepository stores checkout records.
type MongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{collection: db.Collection("orders")}
}

func (r *MongoOrderRepository) Create(ctx context.Context, order models.Order) (models.Order, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return models.Order{}, apperr.Wrap(apperr.CodeRemote, err, "creating order")
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		order.ID = id
	}
	return order, nil
}

func (r *MongoOrderRepository) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeRemote, err, "fetching orders")
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, apperr.Wrap(apperr.CodeRemote, err, "reading orders")
	}
	return orders, nil
}

func (r *MongoOrderRepository) MarkPaid(ctx context.Context, userID, gatewayOrderID, paymentID string) (models.Order, error) {
	// Only pending orders transition; a replayed confirmation finds nothing.
	filter := bson.M{
		"user_id":          userID,
		"gateway_order_id": gatewayOrderID,
		"status":           models.OrderStatusCreated,
	}
	update := bson.M{"$set": bson.M{
		"status":     models.OrderStatusPaid,
		"payment_id": paymentID,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order models.Order
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Order{}, apperr.New(apperr.CodeNotFound, "order not found")
		}
		return models.Order{}, apperr.Wrap(apperr.CodeRemote, err, "updating order")
	}
	return order, nil
}
