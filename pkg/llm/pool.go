package llm

import (
	"container/list"
	"context"
	"sync"
)

// Client is a closable per-model LLM client, pooled by the core so repeated
// calls reuse connections.
type Client interface {
	Gateway
	Close() error
}

// ClientFactory builds a client for a (provider, model) pair.
type ClientFactory func(provider Provider, model string) (Client, error)

// ClientPool is a bounded LRU of live clients keyed by (provider, model).
// Evicted clients are closed asynchronously.
type ClientPool struct {
	mu      sync.Mutex
	factory ClientFactory
	max     int
	order   *list.List // front = most recently used
	entries map[string]*list.Element
}

type poolEntry struct {
	key    string
	client Client
}

// NewClientPool creates a pool bounded to max clients.
func NewClientPool(factory ClientFactory, max int) *ClientPool {
	return &ClientPool{
		factory: factory,
		max:     max,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

// Get returns the pooled client for the model, creating (and possibly
// evicting) as needed.
func (p *ClientPool) Get(model string) (Client, error) {
	provider := ProviderFor(model)
	key := string(provider) + "/" + model

	p.mu.Lock()
	defer p.mu.Unlock()

	if elem, ok := p.entries[key]; ok {
		p.order.MoveToFront(elem)
		return elem.Value.(*poolEntry).client, nil
	}

	client, err := p.factory(provider, model)
	if err != nil {
		return nil, err
	}

	p.entries[key] = p.order.PushFront(&poolEntry{key: key, client: client})

	for p.order.Len() > p.max {
		oldest := p.order.Back()
		entry := oldest.Value.(*poolEntry)
		p.order.Remove(oldest)
		delete(p.entries, entry.key)
		go func(c Client) { _ = c.Close() }(entry.client)
	}
	return client, nil
}

// PoolGateway routes each call to the pooled client for its model, so one
// Gateway value serves every model a handler touches.
type PoolGateway struct {
	pool *ClientPool
}

// NewPoolGateway creates a gateway over the pool.
func NewPoolGateway(pool *ClientPool) *PoolGateway {
	return &PoolGateway{pool: pool}
}

// CallLLM implements Gateway.
func (g *PoolGateway) CallLLM(ctx context.Context, input CallInput) (*CallOutput, error) {
	client, err := g.pool.Get(input.Model)
	if err != nil {
		return nil, err
	}
	return client.CallLLM(ctx, input)
}

// Close closes every pooled client.
func (p *ClientPool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for elem := p.order.Front(); elem != nil; elem = elem.Next() {
		_ = elem.Value.(*poolEntry).client.Close()
	}
	p.order.Init()
	p.entries = make(map[string]*list.Element)
}
