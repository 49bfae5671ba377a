package validators

import "go.mongodb.org/mongo-driver/bson"

var SessionValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"title",
			"type",
			"location",
			"meeting_point",
			"start_time",
			"duration_minutes",
			"currency",
			"total_seats",
			"booked_seats",
			"min_riders_to_confirm",
			"skill_level",
			"captain",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"title": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 120,
			},

			"type": bson.M{
				"bsonType": "string",
				"enum": []string{
					"WAKEBOARDING",
					"WAKESURFING",
					"FISHING",
					"CRUISING",
				},
			},

			"location": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 120,
			},

			"meeting_point": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 200,
			},

			"coordinates": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "double",
				},
			},

			"start_time": bson.M{
				"bsonType": "date",
			},

			"duration_minutes": bson.M{
				"bsonType": "int",
				"minimum":  15,
				"maximum":  480,
			},

			"price_per_seat": bson.M{
				"bsonType": []string{"double", "int"},
				"minimum":  0,
			},

			"currency": bson.M{
				"bsonType":  "string",
				"minLength": 3,
				"maxLength": 3,
			},

			"total_seats": bson.M{
				"bsonType": "int",
				"minimum":  1,
				"maximum":  50,
			},

			"booked_seats": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"min_riders_to_confirm": bson.M{
				"bsonType": "int",
				"minimum":  1,
			},

			"skill_level": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Beginner",
					"Intermediate",
					"Mixed",
					"Advanced",
					"Pro",
				},
			},

			"weather": bson.M{
				"bsonType": "string",
				"enum": []string{
					"Sunny",
					"Cloudy",
					"Windy",
					"Risky",
				},
			},

			"captain": bson.M{
				"bsonType": "object",
				"required": []string{"name", "languages"},
				"properties": bson.M{
					"name": bson.M{
						"bsonType":  "string",
						"minLength": 2,
						"maxLength": 100,
					},
					"rating": bson.M{
						"bsonType": []string{"double", "int"},
						"minimum":  0,
						"maximum":  5,
					},
					"verified": bson.M{
						"bsonType": "bool",
					},
					"languages": bson.M{
						"bsonType": "array",
						"items": bson.M{
							"bsonType": "string",
						},
					},
				},
			},

			"is_requested": bson.M{
				"bsonType": "bool",
			},

			"request_status": bson.M{
				"bsonType": "string",
				"enum": []string{
					"OPEN",
					"CLAIMED",
				},
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
