package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// searchFilter busca q como subcadena literal (metacaracteres escapados), sin distinguir
// mayúsculas, en name, email o phone.
func searchFilter(q string) bson.M {
	re := primitive.Regex{Pattern: regexp.QuoteMeta(q), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": re},
		bson.M{"email": re},
		bson.M{"phone": re},
	}}
}

// idsFilter selecciona todos los documentos cuyo _id está en ids.
func idsFilter(ids []string) bson.M {
	return bson.M{"_id": bson.M{"$in": ids}}
}

// isDuplicateKey detecta violaciones del índice único (E11000).
func isDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
