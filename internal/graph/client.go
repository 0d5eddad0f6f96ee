package graph

import (
	"context"
	"errors"

	"github.com/vanshika/airroute/internal/config"
)

// Client is the narrow contract the repository needs from a graph database.
type Client interface {
	// Read runs a single read-only statement.
	Read(ctx context.Context, stmt Statement) (Result, error)
	// WriteBatch runs the statements in one write transaction. Either all
	// of them are committed or none are.
	WriteBatch(ctx context.Context, stmts []Statement) error
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Statement is a cypher query with its parameters.
type Statement struct {
	Cypher string
	Params map[string]any
}

// Result is a simplified representation of a query response.
type Result struct {
	Records []Record
}

// Record groups key-value pairs returned from the graph engine.
type Record map[string]any

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// OptionsFromConfig maps the graph section of the application config.
func OptionsFromConfig(cfg config.GraphConfig) Options {
	return Options{
		URI:            cfg.URI,
		Database:       cfg.Database,
		Username:       cfg.Username,
		Password:       cfg.Password,
		MaxConnections: cfg.MaxConnections,
	}
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")
