package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookingStatus is the lifecycle state of a mentoring session booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a session booked by a student with a mentor. Only completed bookings
// count toward earnings, session and retention figures.
type Booking struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	MentorID    primitive.ObjectID `bson:"mentor" json:"mentorId"`
	StudentID   primitive.ObjectID `bson:"student" json:"studentId"`
	Status      BookingStatus      `bson:"status" json:"status"`
	Amount      Money              `bson:"amount" json:"amount"`
	SessionDate time.Time          `bson:"sessionDate" json:"sessionDate"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
