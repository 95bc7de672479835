package mentorRepo

import (
	"context"
	"errors"

	"mentorlink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

//go:generate mockgen -source=interface.go -destination=../mocks/mentor_repository.go -package=mocks

// ErrUserNotFound is returned when no user document matches the id.
var ErrUserNotFound = errors.New("user not found")

// MentorRepository reads mentor profile data. It never writes.
type MentorRepository interface {
	GetSkills(ctx context.Context, mentorID string) ([]string, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
}

type mongoMentorRepo struct {
	users    *mongo.Collection
	profiles *mongo.Collection
}

// NewMongoMentorRepo constructs a MentorRepository over the users and mentorprofiles collections.
func NewMongoMentorRepo(db *mongo.Database) MentorRepository {
	return &mongoMentorRepo{
		users:    db.Collection("users"),
		profiles: db.Collection("mentorprofiles"),
	}
}
