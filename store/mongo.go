package store

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"RealtyAPI/utils"
)

const DefaultTimeout = 10 * time.Second

// Mongo is the MongoDB-backed Store. A Mongo without a database (no
// DATABASE_URL, or a URL the driver rejected) reports ErrUnavailable from
// every operation.
type Mongo struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
}

// NewMongo connects to uri. The driver connects lazily, so an unreachable
// server surfaces on the first operation rather than here.
func NewMongo(ctx context.Context, uri, dbName string, timeout time.Duration) (*Mongo, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	m := &Mongo{timeout: timeout}
	if uri == "" {
		utils.Logger.Warn("DATABASE_URL is not set, database operations will fail")
		return m, nil
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return m, &Error{Op: "connect", Err: err}
	}
	m.client = client
	m.db = client.Database(dbName)
	utils.Logger.Infof("MongoDB client ready for database %q", dbName)
	return m, nil
}

func (m *Mongo) collection(op string, coll Collection) (*mongo.Collection, error) {
	if m == nil || m.db == nil {
		return nil, &Error{Op: op, Collection: coll, Err: ErrUnavailable}
	}
	return m.db.Collection(string(coll)), nil
}

func (m *Mongo) Insert(ctx context.Context, coll Collection, record any) (string, error) {
	c, err := m.collection("insert", coll)
	if err != nil {
		return "", err
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	res, err := c.InsertOne(ctx, record)
	if err != nil {
		return "", &Error{Op: "insert", Collection: coll, Err: err}
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return "", &Error{Op: "insert", Collection: coll, Err: errors.New("store assigned a non-ObjectId identifier")}
}

func (m *Mongo) Find(ctx context.Context, coll Collection, filter bson.M, limit int64) ([]bson.M, error) {
	c, err := m.collection("find", coll)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := c.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, &Error{Op: "find", Collection: coll, Err: err}
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &Error{Op: "find", Collection: coll, Err: err}
	}
	return docs, nil
}

func (m *Mongo) FindOne(ctx context.Context, coll Collection, id string) (bson.M, error) {
	c, err := m.collection("find one", coll)
	if err != nil {
		return nil, err
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, &Error{Op: "find one", Collection: coll, Err: err}
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	var doc bson.M
	if err := c.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, &Error{Op: "find one", Collection: coll, Err: err}
	}
	return doc, nil
}

func (m *Mongo) Diagnose(ctx context.Context) Diagnostics {
	if m == nil || m.db == nil {
		return Diagnostics{}
	}
	d := Diagnostics{Configured: true, DatabaseName: m.db.Name()}

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()
	names, err := m.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		d.Err = err
		return d
	}
	d.Collections = names
	return d
}

func (m *Mongo) Close(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
