package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const esImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"

type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// NewESContainer starts a single-node Elasticsearch with security disabled
// and terminates it when t finishes.
func NewESContainer(ctx context.Context, t *testing.T) *ESContainer {
	t.Helper()
	requireContainers(t, "elasticsearch")

	c, err := elasticsearch.Run(ctx,
		esImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start elasticsearch container: %v", err)
	}
	t.Cleanup(func() { terminate(t, c, "elasticsearch") })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("failed to get elasticsearch host: %v", err)
	}
	port, err := c.MappedPort(ctx, "9200")
	if err != nil {
		t.Fatalf("failed to get elasticsearch port: %v", err)
	}

	return &ESContainer{
		Container: c,
		Address:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}

// requireContainers skips t in -short mode or without a container runtime.
func requireContainers(t *testing.T, name string) {
	t.Helper()
	if testing.Short() {
		t.Skipf("skipping %s container in short mode", name)
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
}

func terminate(t *testing.T, c testcontainers.Container, name string) {
	if err := testcontainers.TerminateContainer(c); err != nil {
		t.Logf("failed to terminate %s container: %v", name, err)
	}
}
