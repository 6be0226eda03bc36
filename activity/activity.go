package activity

import (
	"context"
	"log"
	"net/http"
	"time"

	"luxadmin/db"
	"luxadmin/models"
	"luxadmin/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Log records one audit-trail entry. Auditing never blocks or fails the
// operation it describes.
func Log(userID, action, entityType, entityID, outcome string) {
	entry := models.Activity{
		UserID:     userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Outcome:    outcome,
		Timestamp:  time.Now(),
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := db.ActivitiesCollection.InsertOne(ctx, entry); err != nil {
		log.Printf("[activity] insert failed: %v", err)
	}
}

// GetActivityFeed returns the latest audit entries for the signed-in
// operator.
func GetActivityFeed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)

	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(50)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := db.ActivitiesCollection.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode activity")
		return
	}
	utils.SendResponse(w, http.StatusOK, activities, "", nil)
}

// GetRecentActivity returns the latest audit entries across all operators.
func GetRecentActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(20)
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cursor, err := db.ActivitiesCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activity")
		return
	}
	defer cursor.Close(ctx)

	activities := []models.Activity{}
	if err := cursor.All(ctx, &activities); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode activity")
		return
	}
	utils.SendResponse(w, http.StatusOK, activities, "", nil)
}
