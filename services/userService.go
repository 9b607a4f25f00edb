package services

import (
	"context"
	"sort"
	"time"

	"github.com/singhAyush18/progress-tracker/config"
	"github.com/singhAyush18/progress-tracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func GetUserByID(userID string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("users")

	var user models.User
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if err != nil {
		return nil, err
	}
	user.Password = nil
	user.Token = nil
	user.Refresh_token = nil
	return &user, nil
}

func UpdateProfile(userID, firstName, lastName string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("users")

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "first_name", Value: firstName},
		{Key: "last_name", Value: lastName},
		{Key: "updated_at", Value: time.Now()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var user models.User
	if err := coll.FindOneAndUpdate(ctx, bson.M{"user_id": userID}, update, opts).Decode(&user); err != nil {
		return nil, err
	}
	user.Password = nil
	user.Token = nil
	user.Refresh_token = nil
	return &user, nil
}

type LeaderboardEntry struct {
	UserID        string `json:"userId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	TotalDuration int    `json:"totalDuration"` // seconds
}

// GetLeaderboard totals every user's study seconds, descending. One pass
// over the tasks collection instead of a per-user query.
func GetLeaderboard() ([]LeaderboardEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	taskColl := config.OpenCollection("tasks")
	cursor, err := taskColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	totals := make(map[string]int)
	for _, task := range tasks {
		totals[task.UserID] += ParseDuration(task.Duration)
	}

	userColl := config.OpenCollection("users")
	userCursor, err := userColl.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"first_name": 1, "last_name": 1, "user_id": 1}))
	if err != nil {
		return nil, err
	}
	defer userCursor.Close(ctx)
	var users []models.User
	if err := userCursor.All(ctx, &users); err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, 0, len(users))
	for _, user := range users {
		leaderboard = append(leaderboard, LeaderboardEntry{
			UserID:        user.User_id,
			FirstName:     deref(user.First_name),
			LastName:      deref(user.Last_name),
			TotalDuration: totals[user.User_id],
		})
	}
	sort.Slice(leaderboard, func(i, j int) bool {
		return leaderboard[i].TotalDuration > leaderboard[j].TotalDuration
	})
	return leaderboard, nil
}
