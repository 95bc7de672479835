package mentorRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorlink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const queryTimeout = 5 * time.Second

// GetSkills returns the declared skills of a mentor, or an empty list when the
// mentor has no profile.
func (r *mongoMentorRepo) GetSkills(ctx context.Context, mentorID string) ([]string, error) {
	oid, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return []string{}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"skills": 1})
	var profile models.MentorProfile
	err = r.profiles.FindOne(ctx, bson.M{"user": oid}, opts).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor profile: %w", err)
	}
	if profile.Skills == nil {
		return []string{}, nil
	}
	return profile.Skills, nil
}

// GetUser fetches the public fields of a user.
func (r *mongoMentorRepo) GetUser(ctx context.Context, userID string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"password": 0})
	var user models.User
	err = r.users.FindOne(ctx, bson.M{"_id": oid}, opts).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	return &user, nil
}
