package graph

import (
	"context"
	"sync"
)

// MemoryClient is an in-memory Client used to test export logic without a
// running graph database. Batches are recorded in call order.
type MemoryClient struct {
	mu           sync.Mutex
	batches      [][]Statement
	reads        []Statement
	readResults  []Result
	failAfter    int
	err          error
	connectivity error
}

// NewMemoryClient instantiates an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{failAfter: -1}
}

// WithError makes every call fail with err.
func (m *MemoryClient) WithError(err error) *MemoryClient {
	return m.FailAfter(0, err)
}

// FailAfter lets n write batches succeed and fails the following ones with err.
func (m *MemoryClient) FailAfter(n int, err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAfter = n
	m.err = err
	return m
}

// WithConnectivityError forces VerifyConnectivity to return the supplied error.
func (m *MemoryClient) WithConnectivityError(err error) *MemoryClient {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectivity = err
	return m
}

// PushReadResult queues a result for the next Read call.
func (m *MemoryClient) PushReadResult(res Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readResults = append(m.readResults, res)
}

func (m *MemoryClient) Read(_ context.Context, stmt Statement) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil && m.failAfter == 0 {
		return Result{}, m.err
	}
	m.reads = append(m.reads, cloneStatement(stmt))

	if len(m.readResults) == 0 {
		return Result{}, nil
	}
	res := m.readResults[0]
	m.readResults = m.readResults[1:]
	return res, nil
}

func (m *MemoryClient) WriteBatch(ctx context.Context, stmts []Statement) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil && m.failAfter >= 0 && len(m.batches) >= m.failAfter {
		return m.err
	}
	batch := make([]Statement, 0, len(stmts))
	for _, s := range stmts {
		batch = append(batch, cloneStatement(s))
	}
	m.batches = append(m.batches, batch)
	return nil
}

func (m *MemoryClient) VerifyConnectivity(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.connectivity
}

func (m *MemoryClient) Close(context.Context) error {
	return nil
}

// Batches returns a snapshot of committed write batches.
func (m *MemoryClient) Batches() [][]Statement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([][]Statement(nil), m.batches...)
}

// Statements flattens every committed write statement.
func (m *MemoryClient) Statements() []Statement {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Statement
	for _, b := range m.batches {
		out = append(out, b...)
	}
	return out
}

// Reads returns a snapshot of executed read statements.
func (m *MemoryClient) Reads() []Statement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Statement(nil), m.reads...)
}

func cloneStatement(s Statement) Statement {
	if s.Params == nil {
		return s
	}
	params := make(map[string]any, len(s.Params))
	for k, v := range s.Params {
		params[k] = v
	}
	return Statement{Cypher: s.Cypher, Params: params}
}
