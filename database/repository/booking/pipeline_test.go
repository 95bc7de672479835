package bookingRepo

import (
	"context"
	"testing"
	"time"

	"mentorlink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// sentPipeline returns the stages of the aggregate command the repository issued.
func sentPipeline(mt *mtest.T) []bson.Raw {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt)
	require.Equal(mt, "aggregate", evt.CommandName)

	values, err := evt.Command.Lookup("pipeline").Array().Values()
	require.NoError(mt, err)

	stages := make([]bson.Raw, 0, len(values))
	for _, v := range values {
		stages = append(stages, v.Document())
	}
	return stages
}

// stageNames lists the operator of every stage in order.
func stageNames(mt *mtest.T, stages []bson.Raw) []string {
	mt.Helper()
	names := make([]string, 0, len(stages))
	for _, st := range stages {
		elems, err := st.Elements()
		require.NoError(mt, err)
		require.Len(mt, elems, 1)
		names = append(names, elems[0].Key())
	}
	return names
}

// sortKeys returns the keys and directions of a $sort stage in order.
func sortKeys(mt *mtest.T, st bson.Raw) ([]string, []int64) {
	mt.Helper()
	elems, err := st.Lookup("$sort").Document().Elements()
	require.NoError(mt, err)

	keys := make([]string, 0, len(elems))
	dirs := make([]int64, 0, len(elems))
	for _, e := range elems {
		keys = append(keys, e.Key())
		dirs = append(dirs, asInt64(mt, e.Value()))
	}
	return keys, dirs
}

func asInt64(mt *mtest.T, v bson.RawValue) int64 {
	mt.Helper()
	switch v.Type {
	case bsontype.Int32:
		return int64(v.Int32())
	case bsontype.Int64:
		return v.Int64()
	default:
		mt.Fatalf("expected an integer, got %s", v.Type)
		return 0
	}
}

// assertCompletedMatch checks the mentor and status predicates every query shares.
func assertCompletedMatch(mt *mtest.T, match bson.Raw) {
	mt.Helper()
	mentor, err := primitive.ObjectIDFromHex(testMentorID)
	require.NoError(mt, err)

	assert.Equal(mt, mentor, match.Lookup("mentor").ObjectID())
	assert.Equal(mt, string(models.BookingCompleted), match.Lookup("status").StringValue())
}

func TestDailyStats_Pipeline(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("windowed completed bookings by UTC day", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		since := time.Date(2024, 1, 1, 6, 30, 0, 0, time.FixedZone("EAT", 3*3600))
		_, err := repo.DailyStats(context.Background(), testMentorID, since)
		require.NoError(mt, err)

		stages := sentPipeline(mt)
		require.Equal(mt, []string{"$match", "$group", "$sort"}, stageNames(mt, stages))

		match := stages[0].Lookup("$match").Document()
		assertCompletedMatch(mt, match)
		gte := match.Lookup("sessionDate", "$gte")
		require.Equal(mt, bsontype.DateTime, gte.Type)
		assert.True(mt, since.Equal(gte.Time()))

		day := stages[1].Lookup("$group", "_id", "$dateToString").Document()
		assert.Equal(mt, "%Y-%m-%d", day.Lookup("format").StringValue())
		assert.Equal(mt, "$sessionDate", day.Lookup("date").StringValue())
		assert.Equal(mt, "UTC", day.Lookup("timezone").StringValue())
		assert.Equal(mt, "$amount", stages[1].Lookup("$group", "earnings", "$sum").StringValue())

		keys, dirs := sortKeys(mt, stages[2])
		assert.Equal(mt, []string{"_id"}, keys)
		assert.Equal(mt, []int64{1}, dirs)
	})
}

func TestStudentBookingCounts_Pipeline(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("lifetime completed bookings grouped by student", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		_, err := repo.StudentBookingCounts(context.Background(), testMentorID)
		require.NoError(mt, err)

		stages := sentPipeline(mt)
		require.Equal(mt, []string{"$match", "$group"}, stageNames(mt, stages))

		match := stages[0].Lookup("$match").Document()
		assertCompletedMatch(mt, match)
		_, err = match.LookupErr("sessionDate")
		assert.Error(mt, err, "lifetime query must not be windowed")
		assert.Equal(mt, bsontype.Null, match.Lookup("student", "$ne").Type)

		assert.Equal(mt, "$student", stages[1].Lookup("$group", "_id").StringValue())
	})
}

func TestLifetimeTotals_Pipeline(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("every completed booking in one group", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		_, err := repo.LifetimeTotals(context.Background(), testMentorID)
		require.NoError(mt, err)

		stages := sentPipeline(mt)
		require.Equal(mt, []string{"$match", "$group"}, stageNames(mt, stages))

		match := stages[0].Lookup("$match").Document()
		assertCompletedMatch(mt, match)
		_, err = match.LookupErr("sessionDate")
		assert.Error(mt, err, "lifetime query must not be windowed")

		group := stages[1].Lookup("$group").Document()
		assert.Equal(mt, bsontype.Null, group.Lookup("_id").Type)
		assert.Equal(mt, "$amount", group.Lookup("totalEarnings", "$sum").StringValue())
	})
}

func TestRecentCompleted_Pipeline(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("newest sessions first, capped, with student names", func(mt *mtest.T) {
		repo := NewMongoBookingRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNS, mtest.FirstBatch))

		_, err := repo.RecentCompleted(context.Background(), testMentorID, 10)
		require.NoError(mt, err)

		stages := sentPipeline(mt)
		require.Equal(mt, []string{"$match", "$sort", "$limit", "$lookup", "$project"}, stageNames(mt, stages))

		assertCompletedMatch(mt, stages[0].Lookup("$match").Document())

		keys, dirs := sortKeys(mt, stages[1])
		assert.Equal(mt, []string{"sessionDate", "_id"}, keys)
		assert.Equal(mt, []int64{-1, -1}, dirs)

		assert.Equal(mt, int64(10), asInt64(mt, stages[2].Lookup("$limit")))

		lookup := stages[3].Lookup("$lookup").Document()
		assert.Equal(mt, "users", lookup.Lookup("from").StringValue())
		assert.Equal(mt, "student", lookup.Lookup("localField").StringValue())
	})
}
