package services

import (
	"context"
	"time"

	"github.com/singhAyush18/progress-tracker/config"
	"github.com/singhAyush18/progress-tracker/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateTask(userID, date string, items []string, duration string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")
	now := time.Now()

	task := &models.Task{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		Tasks:     items,
		Duration:  duration,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err := coll.InsertOne(ctx, task)
	return task, err
}

func GetTasksByUser(userID string) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)
	var out []models.Task
	err = cursor.All(ctx, &out)
	return out, err
}

// UpdateTask modifies a task only when it belongs to userID. Returns
// mongo.ErrNoDocuments when no such task exists.
func UpdateTask(userID, taskID, date string, items []string, duration string) (*models.Task, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")

	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	filter := bson.M{"_id": oid, "user_id": userID}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "date", Value: date},
		{Key: "tasks", Value: items},
		{Key: "duration", Value: duration},
		{Key: "updated_at", Value: time.Now()},
	}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var task models.Task
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&task); err != nil {
		return nil, err
	}
	return &task, nil
}

func DeleteTask(userID, taskID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	coll := config.OpenCollection("tasks")

	oid, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return mongo.ErrNoDocuments
	}

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
