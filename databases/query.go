package databases

import "go.mongodb.org/mongo-driver/bson"

// CarQuery holds the optional catalog list filters, a nil field means the
// caller did not supply that filter
type CarQuery struct {
	Make     *string
	Type     *string
	Year     *int
	MinPrice *float64
	MaxPrice *float64
}

// Filter translates the supplied filters into a mongo filter document.
// Clauses combine with an implicit AND, both price bounds are inclusive
// and an empty query matches every car.
func (q CarQuery) Filter() bson.M {
	filter := bson.M{}
	if q.Make != nil {
		filter["make"] = *q.Make
	}
	if q.Type != nil {
		filter["type"] = *q.Type
	}
	if q.Year != nil {
		filter["year"] = *q.Year
	}
	if q.MinPrice != nil || q.MaxPrice != nil {
		price := bson.M{}
		if q.MinPrice != nil {
			price["$gte"] = *q.MinPrice
		}
		if q.MaxPrice != nil {
			price["$lte"] = *q.MaxPrice
		}
		filter["price"] = price
	}
	return filter
}
