package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medisys/hms-api/internal/core/domain"
)

const appointmentCollection = "appointments"

type MongoAppointmentRepository struct {
	coll     *mongo.Collection
	counters *mongo.Collection
}

func NewAppointmentRepository(db *mongo.Database) *MongoAppointmentRepository {
	return &MongoAppointmentRepository{
		coll:     db.Collection(appointmentCollection),
		counters: db.Collection(counterCollection),
	}
}

type mongoAppointment struct {
	ID         int64  `bson:"_id"`
	PatientID  int64  `bson:"patient_id"`
	DoctorName string `bson:"doctor_name"`
	Time       int64  `bson:"time"`
	Reason     string `bson:"reason"`
	Status     string `bson:"status"`
	CreatedAt  int64  `bson:"created_at"`
}

func (r *MongoAppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	id, err := nextSeq(ctx, r.counters, appointmentCollection)
	if err != nil {
		return nil, err
	}

	doc := mongoAppointment{
		ID:         id,
		PatientID:  a.PatientID,
		DoctorName: a.DoctorName,
		Time:       a.Time.Unix(),
		Reason:     a.Reason,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.Unix(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}

	out := *a
	out.ID = id
	return &out, nil
}

func (r *MongoAppointmentRepository) FindByPatient(ctx context.Context, patientID int64) ([]domain.Appointment, error) {
	cur, err := r.coll.Find(ctx, bson.M{"patient_id": patientID}, options.Find().SetSort(bson.D{{Key: "time", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Appointment
	for cur.Next(ctx) {
		var ma mongoAppointment
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode appointment: %w", err)
		}
		out = append(out, domain.Appointment{
			ID:         ma.ID,
			PatientID:  ma.PatientID,
			DoctorName: ma.DoctorName,
			Time:       unixToTime(ma.Time),
			Reason:     ma.Reason,
			Status:     domain.AppointmentStatus(ma.Status),
			CreatedAt:  unixToTime(ma.CreatedAt),
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out, nil
}
