package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"clinic-booking-api/models"
)

type PrescriptionStore struct {
	coll *mongo.Collection
}

func NewPrescriptionStore(database *mongo.Database) *PrescriptionStore {
	return &PrescriptionStore{coll: database.Collection("prescriptions")}
}

func (s *PrescriptionStore) Create(ctx context.Context, p *models.Prescription) error {
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	_, err := s.coll.InsertOne(ctx, p)
	return err
}

func (s *PrescriptionStore) ByAppointment(ctx context.Context, appointmentID uint) ([]models.Prescription, error) {
	cur, err := s.coll.Find(ctx, bson.M{"appointmentId": appointmentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Prescription
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
