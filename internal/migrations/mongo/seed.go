package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"wakeline/pkg/model"
)

func seedSessions(now time.Time) []*model.Session {
	today := func(hour, min int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
	}
	tomorrow := func(hour, min int) time.Time {
		return today(hour, min).AddDate(0, 0, 1)
	}
	dayAfter := func(hour, min int) time.Time {
		return today(hour, min).AddDate(0, 0, 2)
	}

	return []*model.Session{
		{
			ID:                 "seed-session-1",
			Title:              "Sunset Wakeboarding",
			Type:               model.ActivityWakeboarding,
			Location:           "Dubai Marina",
			MeetingPoint:       "Pier 7, Dock B",
			Coordinates:        []float64{25.0803, 55.1403},
			StartTime:          today(16, 30),
			DurationMinutes:    60,
			PricePerSeat:       180,
			OriginalPrice:      2000,
			Currency:           "AED",
			TotalSeats:         5,
			BookedSeats:        3,
			MinRidersToConfirm: 3,
			SkillLevel:         model.SkillMixed,
			Weather:            model.WeatherSunny,
			Captain: model.Captain{
				Name:      "Ahmed Al-Mansour",
				Rating:    4.9,
				Verified:  true,
				Languages: []string{"English", "Arabic"},
			},
			OperatorName: "Sea Riders UAE",
		},
		{
			ID:                 "seed-session-2",
			Title:              "Deep Sea Sport Fishing",
			Type:               model.ActivityFishing,
			Location:           "Palm Jumeirah",
			MeetingPoint:       "Palm West Beach",
			Coordinates:        []float64{25.1124, 55.1390},
			StartTime:          tomorrow(6, 0),
			DurationMinutes:    240,
			PricePerSeat:       349,
			OriginalPrice:      2400,
			Currency:           "AED",
			TotalSeats:         6,
			BookedSeats:        2,
			MinRidersToConfirm: 4,
			SkillLevel:         model.SkillBeginner,
			Weather:            model.WeatherCloudy,
			Captain: model.Captain{
				Name:      "Capt. Steve",
				Rating:    4.7,
				Verified:  true,
				Languages: []string{"English", "Russian"},
			},
			OperatorName: "Blue Wake Dubai",
		},
		{
			ID:                 "seed-session-3",
			Title:              "Advanced Wakeboarding",
			Type:               model.ActivityWakesurfing,
			Location:           "JBR Beach",
			MeetingPoint:       "Rixos Premium Jetty",
			Coordinates:        []float64{25.0780, 55.1390},
			StartTime:          tomorrow(8, 0),
			DurationMinutes:    90,
			PricePerSeat:       220,
			OriginalPrice:      2400,
			Currency:           "AED",
			TotalSeats:         6,
			BookedSeats:        6,
			MinRidersToConfirm: 3,
			SkillLevel:         model.SkillAdvanced,
			Weather:            model.WeatherWindy,
			Captain: model.Captain{
				Name:      "Sarah Jones",
				Rating:    5.0,
				Verified:  true,
				Languages: []string{"English", "French"},
			},
			OperatorName: "CrazyWake",
		},
		{
			ID:                 "seed-session-4",
			Title:              "Early Morning Fishing",
			Type:               model.ActivityFishing,
			Location:           "Dubai Marina",
			MeetingPoint:       "Marina Walk",
			Coordinates:        []float64{25.0785, 55.1395},
			StartTime:          today(6, 0),
			DurationMinutes:    240,
			PricePerSeat:       270,
			OriginalPrice:      2999,
			Currency:           "AED",
			TotalSeats:         6,
			BookedSeats:        3,
			MinRidersToConfirm: 4,
			SkillLevel:         model.SkillBeginner,
			Weather:            model.WeatherSunny,
			Captain: model.Captain{
				Name:      "Capt. Rashid",
				Rating:    4.9,
				Verified:  true,
				Languages: []string{"English", "Arabic", "Russian"},
			},
			OperatorName: "Nanje Yachts",
		},
		{
			ID:                 "seed-session-5",
			Title:              "Pro Wake Training",
			Type:               model.ActivityWakeboarding,
			Location:           "Dubai Harbour",
			MeetingPoint:       "Harbour Master Office",
			Coordinates:        []float64{25.0900, 55.1450},
			StartTime:          dayAfter(14, 0),
			DurationMinutes:    120,
			PricePerSeat:       400,
			Currency:           "AED",
			TotalSeats:         3,
			BookedSeats:        0,
			MinRidersToConfirm: 2,
			SkillLevel:         model.SkillPro,
			Weather:            model.WeatherSunny,
			Captain: model.Captain{
				Name:      "Mikey D.",
				Rating:    4.9,
				Verified:  true,
				Languages: []string{"English"},
			},
			OperatorName: "Wake Nation",
		},
	}
}

func seedOperators() []*model.Operator {
	return []*model.Operator{
		{
			ID:          "seed-operator-1",
			Name:        "Sea Riders UAE",
			Category:    model.CategoryWakeboarding,
			City:        model.CityDubai,
			Location:    "Dubai Marina",
			Rating:      4.9,
			Reviews:     127,
			Sessions:    24,
			Emoji:       "🏄",
			Pricing:     "AED 625 / hour",
			Description: "Premium wake & surf coaching. Operating in Jumeirah 1 & Marina. Known for new boats and pro coaching.",
		},
		{
			ID:          "seed-operator-2",
			Name:        "CrazyWake",
			Category:    model.CategoryWakeboarding,
			City:        model.CityDubai,
			Location:    "Dubai Marina",
			Rating:      4.8,
			Reviews:     94,
			Sessions:    18,
			Emoji:       "🏄",
			Pricing:     "AED 650 / hour",
			Description: "High-energy sessions for groups up to 6. Located in Dubai Marina with specialized wake boats.",
		},
		{
			ID:          "seed-operator-3",
			Name:        "Nanje Yachts",
			Category:    model.CategoryFishing,
			City:        model.CityDubai,
			Location:    "Dubai Marina",
			Rating:      4.9,
			Reviews:     234,
			Sessions:    31,
			Emoji:       "🎣",
			Pricing:     "AED 2,199 / 4h Charter",
			Description: "Professional sport fishing charters. Deep sea fishing specialists with fully equipped yachts.",
		},
		{
			ID:          "seed-operator-4",
			Name:        "Blue Wake Dubai",
			Category:    model.CategoryWakeboarding,
			City:        model.CityDubai,
			Location:    "Palm Jumeirah",
			Rating:      4.9,
			Reviews:     112,
			Sessions:    21,
			Emoji:       "🏄",
			Pricing:     "AED 550 / hour",
			Description: "Family friendly wakeboarding and wakesurfing. Great for beginners and intermediate riders.",
		},
		{
			ID:          "seed-operator-5",
			Name:        "Wake2Wake",
			Category:    model.CategoryWakeboarding,
			City:        model.CityDubai,
			Location:    "Dubai Marina",
			Rating:      4.7,
			Reviews:     81,
			Sessions:    16,
			Emoji:       "🏄",
			Pricing:     "AED 500 / h (Weekdays)",
			Description: "Affordable fun on the water. Weekend premium pricing applies (AED 600/h).",
		},
	}
}

// RunSeed loads the demo catalog. Documents are replaced by _id so the job
// can run repeatedly without duplicating fixtures.
func RunSeed(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	now := time.Now()
	fmt.Printf("🌱 Seeding Wakeline fixtures into database: %s\n", dbName)

	sessions := db.Collection("Sessions")
	for _, session := range seedSessions(now) {
		session.CreatedAt = now.UTC().Truncate(time.Millisecond)
		filter := bson.M{"_id": session.ID}
		opts := options.Replace().SetUpsert(true)
		if _, err := sessions.ReplaceOne(ctx, filter, session, opts); err != nil {
			return fmt.Errorf("failed to seed session %s: %w", session.ID, err)
		}
	}
	fmt.Printf("📦 Seeded %d sessions\n", len(seedSessions(now)))

	operators := db.Collection("Operators")
	for _, operator := range seedOperators() {
		operator.CreatedAt = now.UTC().Truncate(time.Millisecond)
		filter := bson.M{"_id": operator.ID}
		opts := options.Replace().SetUpsert(true)
		if _, err := operators.ReplaceOne(ctx, filter, operator, opts); err != nil {
			return fmt.Errorf("failed to seed operator %s: %w", operator.ID, err)
		}
	}
	fmt.Printf("📦 Seeded %d operators\n", len(seedOperators()))

	fmt.Println("✅ Seeding completed.")
	return nil
}
