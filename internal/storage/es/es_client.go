package es

import (
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
)

type ClientConfig struct {
	Addresses   []string
	IndexPrefix string
	Username    string
	Password    string
}

func (c ClientConfig) runsIndex() string {
	return fmt.Sprintf("%s-runs", c.IndexPrefix)
}

func (c ClientConfig) tokenizationsIndex() string {
	return fmt.Sprintf("%s-tokenizations", c.IndexPrefix)
}

func newClient(config ClientConfig) (*elasticsearch.TypedClient, error) {
	cfg := elasticsearch.Config{
		Addresses: config.Addresses,
	}

	if config.Username != "" && config.Password != "" {
		cfg.Username = config.Username
		cfg.Password = config.Password
	}

	client, err := elasticsearch.NewTypedClient(cfg)

	return client, err
}
