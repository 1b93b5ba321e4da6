package provider

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kintacos/internal/dto"
)

// MongoProvider stores one document per order in a MongoDB collection. The
// collection's ObjectID is surfaced to callers as the opaque string id; the
// id never lives inside the document body.
type MongoProvider struct {
	coll *mongo.Collection
}

func NewMongoProvider(coll *mongo.Collection) *MongoProvider {
	return &MongoProvider{coll: coll}
}

func (p *MongoProvider) Create(ctx context.Context, doc map[string]any) (map[string]any, error) {
	res, err := p.coll.InsertOne(ctx, toPayload(doc))
	if err != nil {
		return nil, fmt.Errorf("inserting document: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}

	stored := cloneDoc(doc)
	stored["id"] = oid.Hex()
	return stored, nil
}

func (p *MongoProvider) FindByID(ctx context.Context, id string) (map[string]any, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id cannot match any document.
		return nil, nil
	}

	var raw bson.M
	err = p.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("finding document: %w", err)
	}

	return fromRaw(raw), nil
}

func (p *MongoProvider) FindAll(ctx context.Context, filters dto.ListFilters) ([]map[string]any, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := p.coll.Find(ctx, listFilterQuery(filters), opts)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer cursor.Close(ctx)

	var results []map[string]any
	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding document: %w", err)
		}
		results = append(results, fromRaw(raw))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return results, nil
}

func (p *MongoProvider) Update(ctx context.Context, id string, doc map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	_, err = p.coll.UpdateByID(ctx, oid, bson.M{"$set": toPayload(doc)})
	if err != nil {
		return fmt.Errorf("updating document: %w", err)
	}
	return nil
}

func (p *MongoProvider) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := p.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// listFilterQuery builds the bson filter: equality on status and
// deliveryOption, inclusive createdAt range for the date bounds. Zero-valued
// filter fields add no constraint.
func listFilterQuery(filters dto.ListFilters) bson.M {
	filter := bson.M{}
	if filters.Status != "" {
		filter["status"] = filters.Status
	}
	if filters.DeliveryOption != "" {
		filter["deliveryOption"] = filters.DeliveryOption
	}

	createdAt := bson.M{}
	if filters.StartDate != "" {
		createdAt["$gte"] = filters.StartDate
	}
	if filters.EndDate != "" {
		createdAt["$lte"] = filters.EndDate
	}
	if len(createdAt) > 0 {
		filter["createdAt"] = createdAt
	}

	return filter
}

// toPayload strips the id key so it never shadows the collection's _id.
func toPayload(doc map[string]any) bson.M {
	payload := bson.M{}
	for k, v := range doc {
		if k == "id" {
			continue
		}
		payload[k] = v
	}
	return payload
}

func fromRaw(raw bson.M) map[string]any {
	doc := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "_id" {
			if oid, ok := v.(primitive.ObjectID); ok {
				doc["id"] = oid.Hex()
			}
			continue
		}
		doc[k] = v
	}
	return doc
}
