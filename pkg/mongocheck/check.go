// Package mongocheck probes a MongoDB server for liveness.
package mongocheck

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/vertti/devsetup/pkg/check"
)

const (
	// DefaultURI is the local development server.
	DefaultURI = "mongodb://localhost:27017"
	// DefaultTimeout bounds the connection attempt.
	DefaultTimeout = 5000 * time.Millisecond
)

const runningHint = "Make sure MongoDB is installed and running."

// Check verifies that a MongoDB server accepts connections and answers ping.
type Check struct {
	URI       string        // connection string (default: DefaultURI)
	Timeout   time.Duration // connect timeout (default: 5s)
	Connector Connector     // injected for testing
}

// Run connects, pings and always releases the client before returning.
// It never returns an error or panics; every failure becomes a failed Result.
func (c *Check) Run(ctx context.Context) (result check.Result) {
	uri := c.URI
	if uri == "" {
		uri = DefaultURI
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	result = check.Result{Name: "mongodb: " + uri}

	// Registered first so it runs after the client is released.
	defer func() {
		if p := recover(); p != nil {
			result = c.fail(result, errors.Newf("unexpected failure: %v", p))
		}
	}()

	client, err := c.Connector.Connect(ctx, uri, timeout)
	if err != nil {
		return c.fail(result, err)
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		_ = client.Disconnect(releaseCtx)
	}()

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		return c.fail(result, err)
	}

	result.AddDetail("MongoDB is running and accessible.")
	return result.Pass()
}

func (c *Check) fail(result check.Result, err error) check.Result {
	result.AddDetail("MongoDB connection failed")
	return result.Fail(fmt.Sprintf("error: %s", err.Error()), errors.WithHint(err, runningHint))
}
