package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"wakeline/pkg/model"
	"wakeline/test/integration/testutil"
)

func TestBookingFlow(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	session := testutil.NewSessionBuilder().
		WithID("flow-session").
		WithSeats(1, 4, 3).
		Build()
	mongo.InsertDocument(t, testutil.SessionsCollection, session)

	// A booking below the confirmation threshold leaves the session unconfirmed.
	resp := client.POST(t, "/api/v1/sessions/id/flow-session/book", map[string]any{"rider_id": "rider-1"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result model.BookingResult
	testutil.DecodeData(t, resp, &result)
	if result.Session.BookedSeats != 2 {
		t.Errorf("expected 2 booked seats, got %d", result.Session.BookedSeats)
	}
	if result.FillState != model.FillBelowMinimum {
		t.Errorf("expected BELOW_MINIMUM, got %s", result.FillState)
	}

	// The third seat crosses the threshold.
	resp = client.POST(t, "/api/v1/sessions/id/flow-session/book", map[string]any{"rider_id": "rider-2"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.DecodeData(t, resp, &result)
	if !result.Confirmed {
		t.Error("expected session to be confirmed at minimum riders")
	}

	// The last seat fills the session.
	resp = client.POST(t, "/api/v1/sessions/id/flow-session/book", map[string]any{"rider_id": "rider-3"})
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	testutil.DecodeData(t, resp, &result)
	if !result.Full {
		t.Error("expected session to be full after last seat")
	}

	// A booking against a full session is rejected.
	resp = client.POST(t, "/api/v1/sessions/id/flow-session/book", map[string]any{"rider_id": "rider-4"})
	testutil.AssertStatusCode(t, resp, http.StatusConflict)

	// The turned-away rider can join the waitlist.
	resp = client.POST(t, "/api/v1/sessions/id/flow-session/waitlist", map[string]any{"rider_id": "rider-4"})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	if count := mongo.CountDocuments(t, testutil.WaitlistCollection); count != 1 {
		t.Errorf("expected 1 waitlist entry, got %d", count)
	}

	// Rider bookings resolve to full session documents.
	resp = client.GET(t, "/api/v1/riders/id/rider-1/bookings")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var sessions []*model.Session
	testutil.DecodeData(t, resp, &sessions)
	if len(sessions) != 1 || sessions[0].ID != "flow-session" {
		t.Errorf("unexpected rider bookings: %+v", sessions)
	}
}

func TestWaitlistRequiresFullSession(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	session := testutil.NewSessionBuilder().
		WithID("open-session").
		WithSeats(1, 6, 3).
		Build()
	mongo.InsertDocument(t, testutil.SessionsCollection, session)

	resp := client.POST(t, "/api/v1/sessions/id/open-session/waitlist", map[string]any{"rider_id": "rider-1"})
	testutil.AssertStatusCode(t, resp, http.StatusConflict)
}

func TestCatalogFilters(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 18, 0, 0, 0, time.UTC)

	mongo.InsertDocument(t, testutil.SessionsCollection, testutil.NewSessionBuilder().
		WithID("today-session").
		WithTitle("Sunset Wakeboarding").
		WithStartTime(today).
		Build())
	mongo.InsertDocument(t, testutil.SessionsCollection, testutil.NewSessionBuilder().
		WithID("tomorrow-session").
		WithTitle("Deep Sea Fishing").
		WithStartTime(today.AddDate(0, 0, 1)).
		WithLanguages("English", "Russian").
		Build())

	var sessions []*model.Session

	resp := client.GET(t, "/api/v1/sessions?window=now")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	total := testutil.DecodePaginated(t, resp, &sessions)
	if total != 1 || sessions[0].ID != "today-session" {
		t.Errorf("NOW window: expected only today-session, got %d results", total)
	}

	resp = client.GET(t, "/api/v1/sessions?q=fishing")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	total = testutil.DecodePaginated(t, resp, &sessions)
	if total != 1 || sessions[0].ID != "tomorrow-session" {
		t.Errorf("query filter: expected only tomorrow-session, got %d results", total)
	}

	resp = client.GET(t, "/api/v1/sessions?language=russian")
	testutil.AssertStatusCode(t, resp, http.StatusOK)
	total = testutil.DecodePaginated(t, resp, &sessions)
	if total != 1 || sessions[0].ID != "tomorrow-session" {
		t.Errorf("language filter: expected only tomorrow-session, got %d results", total)
	}
}

func TestTripRequestAndClaim(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	tomorrow := time.Now().Add(24 * time.Hour).Format("2006-01-02")
	resp := client.POST(t, "/api/v1/sessions/requests", map[string]any{
		"rider_id": "rider-1",
		"activity": "wakeboarding",
		"date":     tomorrow,
		"time":     "08:30",
		"location": "Palm Jumeirah",
	})
	testutil.AssertStatusCode(t, resp, http.StatusCreated)

	var request model.Session
	testutil.DecodeData(t, resp, &request)
	if !request.IsRequested || request.RequestStatus != model.RequestOpen {
		t.Fatalf("expected OPEN request, got %+v", request)
	}
	if request.BookedSeats != 1 {
		t.Errorf("requester should hold the first seat, got %d", request.BookedSeats)
	}
	if request.Title != "wakeboarding Request" {
		t.Errorf("unexpected request title: %q", request.Title)
	}
	if request.OperatorName != "Crowdsourced Request" {
		t.Errorf("unexpected request operator: %q", request.OperatorName)
	}
	if request.MeetingPoint != "TBD - Waiting for Captain" {
		t.Errorf("unexpected request meeting point: %q", request.MeetingPoint)
	}

	claim := map[string]any{
		"operator_name": "WakeOps Dubai",
		"meeting_point": "Pier 7, Dubai Marina",
		"captain": map[string]any{
			"name":      "Captain Omar",
			"rating":    4.9,
			"verified":  true,
			"languages": []string{"English", "Arabic"},
		},
	}

	claimPath := fmt.Sprintf("/api/v1/sessions/id/%s/claim", request.ID)
	resp = client.POST(t, claimPath, claim)
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var claimed model.Session
	testutil.DecodeData(t, resp, &claimed)
	if claimed.IsRequested {
		t.Error("claimed session should leave the request board")
	}
	if claimed.RequestStatus != model.RequestClaimed {
		t.Errorf("expected CLAIMED, got %s", claimed.RequestStatus)
	}
	if claimed.OperatorName != "WakeOps Dubai" {
		t.Errorf("operator not recorded: %s", claimed.OperatorName)
	}
	if !claimed.Captain.Verified {
		t.Error("claimed captain should be verified")
	}

	// A second operator loses the race.
	resp = client.POST(t, claimPath, map[string]any{
		"operator_name": "Second Operator",
		"meeting_point": "Somewhere else",
		"captain": map[string]any{
			"name":      "Captain Late",
			"languages": []string{"English"},
		},
	})
	testutil.AssertStatusCode(t, resp, http.StatusConflict)
}

func TestDuplicateBookingKeepsSingleReference(t *testing.T) {
	testutil.RequireIntegration(t)

	env := testutil.NewTestEnv()
	mongo, client := env.Setup(t)
	defer env.Cleanup(t, mongo)

	session := testutil.NewSessionBuilder().
		WithID("dup-session").
		WithSeats(0, 6, 3).
		Build()
	mongo.InsertDocument(t, testutil.SessionsCollection, session)

	for i := 0; i < 2; i++ {
		resp := client.POST(t, "/api/v1/sessions/id/dup-session/book", map[string]any{"rider_id": "rider-1"})
		testutil.AssertStatusCode(t, resp, http.StatusOK)
	}

	// Both seats are consumed but the rider keeps one reference document.
	if count := mongo.CountDocuments(t, testutil.BookingsCollection); count != 1 {
		t.Errorf("expected 1 booking reference, got %d", count)
	}

	resp := client.GET(t, "/api/v1/sessions/id/dup-session")
	testutil.AssertStatusCode(t, resp, http.StatusOK)

	var result model.Session
	testutil.DecodeData(t, resp, &result)
	if result.BookedSeats != 2 {
		t.Errorf("expected 2 seats consumed, got %d", result.BookedSeats)
	}
}
