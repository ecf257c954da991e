package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/misranrifat/book-store/internal/core/domain"
)

const authorsCollection = "authors"

type AuthorRepository struct {
	coll *mongo.Collection
}

func NewAuthorRepository(db *mongo.Database) *AuthorRepository {
	return &AuthorRepository{coll: db.Collection(authorsCollection)}
}

type mongoAuthor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Biography string             `bson:"biography,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (a mongoAuthor) toDomain() *domain.Author {
	return &domain.Author{
		ID:        a.ID.Hex(),
		Name:      a.Name,
		Biography: a.Biography,
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}
}

func (r *AuthorRepository) Create(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := mongoAuthor{
		Name:      author.Name,
		Biography: author.Biography,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert author: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AuthorRepository) FindByID(ctx context.Context, id string) (*domain.Author, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.NotFound("Author", id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAuthor
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFound("Author", id)
		}
		return nil, fmt.Errorf("find author: %w", err)
	}
	return ma.toDomain(), nil
}

func (r *AuthorRepository) FindAll(ctx context.Context) ([]domain.Author, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer cur.Close(ctx)

	var authors []domain.Author
	for cur.Next(ctx) {
		var ma mongoAuthor
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode author: %w", err)
		}
		authors = append(authors, *ma.toDomain())
	}
	return authors, cur.Err()
}

func (r *AuthorRepository) Update(ctx context.Context, author *domain.Author) (*domain.Author, error) {
	oid, err := primitive.ObjectIDFromHex(author.ID)
	if err != nil {
		return nil, domain.NotFound("Author", author.ID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":       author.Name,
		"biography":  author.Biography,
		"updated_at": time.Now().UTC(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("update author: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.NotFound("Author", author.ID)
	}
	return r.FindByID(ctx, author.ID)
}

func (r *AuthorRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NotFound("Author", id)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete author: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFound("Author", id)
	}
	return nil
}

func (r *AuthorRepository) DeleteAll(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("delete authors: %w", err)
	}
	return nil
}
