package validators

import "go.mongodb.org/mongo-driver/bson"

var OperatorValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"name",
			"category",
			"city",
			"created_at",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},

			"name": bson.M{
				"bsonType":  "string",
				"minLength": 2,
				"maxLength": 120,
			},

			"category": bson.M{
				"bsonType": "string",
				"enum": []string{
					"wakeboarding",
					"fishing",
				},
			},

			"city": bson.M{
				"bsonType": "string",
				"enum": []string{
					"dubai",
					"abudhabi",
				},
			},

			"location": bson.M{
				"bsonType":  "string",
				"maxLength": 120,
			},

			"rating": bson.M{
				"bsonType": []string{"double", "int"},
				"minimum":  0,
				"maximum":  5,
			},

			"reviews": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"sessions": bson.M{
				"bsonType": "int",
				"minimum":  0,
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
