package mongocheck

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Client is the slice of a database client the probe needs.
type Client interface {
	Ping(ctx context.Context) error
	Disconnect(ctx context.Context) error
}

// Connector opens a Client for a connection string.
type Connector interface {
	Connect(ctx context.Context, uri string, timeout time.Duration) (Client, error)
}

// RealConnector connects with the official MongoDB driver.
type RealConnector struct{}

// Connect creates a driver client bounded by timeout for server
// selection and the initial socket connect.
func (RealConnector) Connect(ctx context.Context, uri string, timeout time.Duration) (Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)
	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	return &driverClient{client: c}, nil
}

type driverClient struct {
	client *mongo.Client
}

// Ping runs the server's ping command against the admin database.
func (d *driverClient) Ping(ctx context.Context) error {
	return d.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (d *driverClient) Disconnect(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
