package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/keepnote/notes-api/internal/core/domain"
)

const notesCollection = "notes"

// NoteRepository persists notes. All single-document filters include the
// owner alongside the ID, so a foreign note and a missing note produce the
// identical not-found result with no observable difference.
type NoteRepository struct {
	coll *mongo.Collection
}

func NewNoteRepository(db *mongo.Database) *NoteRepository {
	return &NoteRepository{coll: db.Collection(notesCollection)}
}

type mongoNote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	OwnerID   primitive.ObjectID `bson:"user"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	Tags      []string           `bson:"tags"`
	IsPinned  bool               `bson:"is_pinned"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (mn mongoNote) toDomain() *domain.Note {
	tags := mn.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.Note{
		ID:        mn.ID.Hex(),
		OwnerID:   mn.OwnerID.Hex(),
		Title:     mn.Title,
		Content:   mn.Content,
		Tags:      tags,
		IsPinned:  mn.IsPinned,
		CreatedAt: mn.CreatedAt,
		UpdatedAt: mn.UpdatedAt,
	}
}

// ownerFilter builds the joint {_id, user} predicate. A note ID that is not
// a well-formed ObjectID cannot reference any document and is reported as
// not found, same as a nonexistent one.
func ownerFilter(id, ownerID string) (bson.M, error) {
	noteOID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNoteNotFound
	}
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, domain.ErrNoteNotFound
	}
	return bson.M{"_id": noteOID, "user": ownerOID}, nil
}

func (r *NoteRepository) Create(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	ownerOID, err := primitive.ObjectIDFromHex(note.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("insert note: invalid owner id %q", note.OwnerID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoNote{
		OwnerID:   ownerOID,
		Title:     note.Title,
		Content:   note.Content,
		Tags:      note.Tags,
		IsPinned:  note.IsPinned,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert note: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert note: unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *NoteRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Note, error) {
	filter, err := ownerFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mn mongoNote
	if err := r.coll.FindOne(ctx, filter).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("find note: %w", err)
	}
	return mn.toDomain(), nil
}

// ListByOwner returns all notes of ownerID, pinned first, then newest first.
// The sort matches the compound index created by EnsureIndexes.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Note, error) {
	ownerOID, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []*domain.Note{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "is_pinned", Value: -1},
		{Key: "created_at", Value: -1},
	})
	cursor, err := r.coll.Find(ctx, bson.M{"user": ownerOID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := []*domain.Note{}
	for cursor.Next(ctx) {
		var mn mongoNote
		if err := cursor.Decode(&mn); err != nil {
			return nil, fmt.Errorf("decode note: %w", err)
		}
		notes = append(notes, mn.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}

// Update replaces the mutable fields of the note matching {ID, OwnerID} and
// returns the document as stored. The owner field is never part of the $set.
func (r *NoteRepository) Update(ctx context.Context, note *domain.Note) (*domain.Note, error) {
	filter, err := ownerFilter(note.ID, note.OwnerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":      note.Title,
		"content":    note.Content,
		"tags":       note.Tags,
		"is_pinned":  note.IsPinned,
		"updated_at": note.UpdatedAt,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var mn mongoNote
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&mn); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	return mn.toDomain(), nil
}

func (r *NoteRepository) Delete(ctx context.Context, id, ownerID string) error {
	filter, err := ownerFilter(id, ownerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNoteNotFound
	}
	return nil
}

// EnsureIndexes creates the compound index backing the list ordering.
func (r *NoteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user", Value: 1},
			{Key: "is_pinned", Value: -1},
			{Key: "created_at", Value: -1},
		},
	})
	return err
}
