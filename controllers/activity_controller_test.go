package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/humspot/api-go/models"
)

func TestCreateEventRequiresPrivilege(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, models.AccountTypeUser, models.AccountStatusActive)

	w := env.do(t, http.MethodPost, "/api/activities/events", token, map[string]interface{}{
		"name":     "Unauthorized Event",
		"location": "Somewhere",
	})
	assertStatus(t, w, http.StatusBadRequest)

	if got := env.countRows(t, &models.Activity{}, ""); got != 0 {
		t.Fatalf("unauthorized create must not persist, got %d rows", got)
	}
}

func TestCreateEventWritesAllRows(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, models.AccountTypeOrganizer, models.AccountStatusActive)

	w := env.do(t, http.MethodPost, "/api/activities/events", token, map[string]interface{}{
		"name":        "Bay Regatta",
		"description": "Sailing on the bay",
		"location":    "Humboldt Bay",
		"date":        "2026-09-20",
		"time":        "10:00",
		"latitude":    40.8021,
		"longitude":   -124.1637,
		"organizer":   "Yacht Club",
		"tags":        []string{"Outdoors", "Sports"},
		"photoUrls":   []string{"https://cdn.example.com/regatta.jpg"},
	})
	assertStatus(t, w, http.StatusCreated)
	body := decodeJSONMap(t, w)

	activityID, ok := body["activityID"].(string)
	if !ok || activityID == "" {
		t.Fatalf("expected activityID, got %v", body)
	}

	var event models.Event
	if err := env.db.First(&event, "activity_id = ?", activityID).Error; err != nil {
		t.Fatalf("expected event detail row: %v", err)
	}
	if event.Organizer != "Yacht Club" || event.Date != "2026-09-20" {
		t.Fatalf("event fields not persisted: %+v", event)
	}

	if got := env.countRows(t, &models.ActivityTag{}, "activity_id = ?", activityID); got != 2 {
		t.Fatalf("expected 2 tag links, got %d", got)
	}
	if got := env.countRows(t, &models.ActivityPhoto{}, "activity_id = ?", activityID); got != 1 {
		t.Fatalf("expected 1 photo, got %d", got)
	}
}

func TestCreateEventSharesTags(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, models.AccountTypeAdmin, models.AccountStatusActive)

	for i := 0; i < 2; i++ {
		w := env.do(t, http.MethodPost, "/api/activities/events", token, map[string]interface{}{
			"name":     fmt.Sprintf("Tagged Event %d", i),
			"location": "Plaza",
			"tags":     []string{"Music"},
		})
		assertStatus(t, w, http.StatusCreated)
	}

	if got := env.countRows(t, &models.Tag{}, "name = ?", "Music"); got != 1 {
		t.Fatalf("tag rows must be shared across activities, got %d", got)
	}
	if got := env.countRows(t, &models.ActivityTag{}, ""); got != 2 {
		t.Fatalf("expected 2 tag links, got %d", got)
	}
}

func TestCreateEventRollsBackOnFailure(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, models.AccountTypeOrganizer, models.AccountStatusActive)

	// Sabotage the event detail insert so the transaction must unwind the
	// already-written activity row.
	if err := env.db.Migrator().DropTable(&models.Event{}); err != nil {
		t.Fatalf("failed to drop events table: %v", err)
	}

	w := env.do(t, http.MethodPost, "/api/activities/events", token, map[string]interface{}{
		"name":     "Doomed Event",
		"location": "Nowhere",
	})
	assertStatus(t, w, http.StatusInternalServerError)

	if got := env.countRows(t, &models.Activity{}, ""); got != 0 {
		t.Fatalf("failed create must leave no activity rows, got %d", got)
	}
}

func TestGetActivityIncludesDetail(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, models.AccountTypeAdmin, models.AccountStatusActive)

	w := env.do(t, http.MethodPost, "/api/activities/attractions", token, map[string]interface{}{
		"name":       "Sequoia Park Zoo",
		"location":   "Eureka",
		"openTimes":  "Tue-Sun 10-5",
		"websiteUrl": "https://example.com/zoo",
		"tags":       []string{"Family"},
		"photoUrls":  []string{"https://cdn.example.com/zoo.jpg"},
	})
	assertStatus(t, w, http.StatusCreated)
	activityID := decodeJSONMap(t, w)["activityID"].(string)

	w = env.do(t, http.MethodGet, "/api/activities/"+activityID, token, nil)
	assertStatus(t, w, http.StatusOK)
	body := decodeJSONMap(t, w)

	if body["name"] != "Sequoia Park Zoo" || body["activityType"] != "attraction" {
		t.Fatalf("unexpected activity payload: %v", body)
	}
	if tags, ok := body["tags"].([]interface{}); !ok || len(tags) != 1 || tags[0] != "Family" {
		t.Fatalf("expected tags [Family], got %v", body["tags"])
	}
	if photos, ok := body["photoUrls"].([]interface{}); !ok || len(photos) != 1 {
		t.Fatalf("expected 1 photo url, got %v", body["photoUrls"])
	}
	if body["attraction"] == nil {
		t.Fatalf("expected attraction detail, got %v", body)
	}
}

func TestGetEventsPagePaging(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, models.AccountTypeAdmin, models.AccountStatusActive)

	for i := 0; i < 25; i++ {
		w := env.do(t, http.MethodPost, "/api/activities/events", token, map[string]interface{}{
			"name":     fmt.Sprintf("Event %d", i),
			"location": "Plaza",
		})
		assertStatus(t, w, http.StatusCreated)
	}

	w := env.do(t, http.MethodGet, "/api/activities/events/page/1", token, nil)
	assertStatus(t, w, http.StatusOK)
	body := decodeJSONMap(t, w)
	if rows, ok := body["events"].([]interface{}); !ok || len(rows) != 20 {
		t.Fatalf("expected 20 events on page 1, got %v", body["events"])
	}

	w = env.do(t, http.MethodGet, "/api/activities/events/page/2", token, nil)
	assertStatus(t, w, http.StatusOK)
	body = decodeJSONMap(t, w)
	if rows, ok := body["events"].([]interface{}); !ok || len(rows) != 5 {
		t.Fatalf("expected 5 events on page 2, got %v", body["events"])
	}
}

func TestDeleteActivityCascades(t *testing.T) {
	env := setupTestEnv(t)
	user, _ := env.createUser(t, models.AccountTypeUser, models.AccountStatusActive)
	_, adminToken := env.createUser(t, models.AccountTypeAdmin, models.AccountStatusActive)
	activity := env.createActivity(t, "Doomed Festival", models.ActivityTypeEvent)

	seed := []interface{}{
		&models.Event{ID: uuid.New().String(), ActivityID: activity.ID, Date: "2026-09-01"},
		&models.Favorite{ID: uuid.New().String(), UserID: user.ID, ActivityID: activity.ID},
		&models.Rating{ID: uuid.New().String(), UserID: user.ID, ActivityID: activity.ID, Rating: 4},
		&models.Comment{ID: uuid.New().String(), UserID: user.ID, ActivityID: activity.ID, Text: "fun"},
	}
	for _, row := range seed {
		if err := env.db.Create(row).Error; err != nil {
			t.Fatalf("failed to seed dependent row: %v", err)
		}
	}

	w := env.do(t, http.MethodDelete, "/api/activities/"+activity.ID, adminToken, nil)
	assertStatus(t, w, http.StatusOK)

	if got := env.countRows(t, &models.Activity{}, "id = ?", activity.ID); got != 0 {
		t.Fatalf("activity must be gone, got %d rows", got)
	}
	for _, model := range []interface{}{&models.Event{}, &models.Favorite{}, &models.Rating{}, &models.Comment{}} {
		if got := env.countRows(t, model, "activity_id = ?", activity.ID); got != 0 {
			t.Fatalf("dependent %T rows must be gone, got %d", model, got)
		}
	}
}

func TestDeleteActivityRequiresAdmin(t *testing.T) {
	env := setupTestEnv(t)
	_, token := env.createUser(t, models.AccountTypeOrganizer, models.AccountStatusActive)
	activity := env.createActivity(t, "Protected Event", models.ActivityTypeEvent)

	w := env.do(t, http.MethodDelete, "/api/activities/"+activity.ID, token, nil)
	assertStatus(t, w, http.StatusBadRequest)

	if got := env.countRows(t, &models.Activity{}, "id = ?", activity.ID); got != 1 {
		t.Fatalf("activity must survive non-admin delete, got %d rows", got)
	}
}
