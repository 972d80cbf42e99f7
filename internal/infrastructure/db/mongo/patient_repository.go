package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medisys/hms-api/internal/core/domain"
)

const (
	patientCollection = "patients"
	counterCollection = "counters"
)

// MongoPatientRepository persists patient records. Patients carry small
// integer ids (allocated from a counters collection) so they can be named in
// chatbot queries.
type MongoPatientRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) *MongoPatientRepository {
	return &MongoPatientRepository{
		coll:     db.Collection(patientCollection),
		counters: db.Collection(counterCollection),
	}
}

type mongoPatient struct {
	ID          int64  `bson:"_id"`
	FirstName   string `bson:"first_name"`
	LastName    string `bson:"last_name"`
	Email       string `bson:"email"`
	PhoneNumber string `bson:"phone_number"`
	DateOfBirth int64  `bson:"date_of_birth"`
	Address     string `bson:"address"`
	Gender      string `bson:"gender"`
	CreatedAt   int64  `bson:"created_at"`
	UpdatedAt   int64  `bson:"updated_at"`
}

// nextSeq atomically allocates the next integer id for the named sequence.
func nextSeq(ctx context.Context, counters *mongo.Collection, name string) (int64, error) {
	var doc struct {
		Seq int64 `bson:"seq"`
	}
	err := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next sequence %s: %w", name, err)
	}
	return doc.Seq, nil
}

func (r *MongoPatientRepository) Create(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	id, err := nextSeq(ctx, r.counters, patientCollection)
	if err != nil {
		return nil, err
	}

	doc := toMongoPatient(p)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert patient: %w", err)
	}

	out := *p
	out.ID = id
	return &out, nil
}

func (r *MongoPatientRepository) Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	doc := toMongoPatient(p)
	doc.ID = p.ID

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": p.ID}, doc)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPatientNotFound
	}
	return p, nil
}

func (r *MongoPatientRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPatientNotFound
	}
	return nil
}

func (r *MongoPatientRepository) FindByID(ctx context.Context, id int64) (*domain.Patient, error) {
	var mp mongoPatient
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient: %w", err)
	}
	return fromMongoPatient(&mp), nil
}

func (r *MongoPatientRepository) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	var mp mongoPatient
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&mp); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("find patient by email: %w", err)
	}
	return fromMongoPatient(&mp), nil
}

func (r *MongoPatientRepository) List(ctx context.Context) ([]domain.Patient, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Patient
	for cur.Next(ctx) {
		var mp mongoPatient
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode patient: %w", err)
		}
		out = append(out, *fromMongoPatient(&mp))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return out, nil
}

func toMongoPatient(p *domain.Patient) mongoPatient {
	return mongoPatient{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
		DateOfBirth: p.DateOfBirth.Unix(),
		Address:     p.Address,
		Gender:      p.Gender,
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
}

func fromMongoPatient(mp *mongoPatient) *domain.Patient {
	return &domain.Patient{
		ID:          mp.ID,
		FirstName:   mp.FirstName,
		LastName:    mp.LastName,
		Email:       mp.Email,
		PhoneNumber: mp.PhoneNumber,
		DateOfBirth: unixToTime(mp.DateOfBirth),
		Address:     mp.Address,
		Gender:      mp.Gender,
		CreatedAt:   unixToTime(mp.CreatedAt),
		UpdatedAt:   unixToTime(mp.UpdatedAt),
	}
}
