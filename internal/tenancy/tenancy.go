// Package tenancy resolves the database pool that backs a tenant's ledger.
package tenancy

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/cafe_ledger/internal/apperrors"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ctxKey struct{}

// WithTenant returns a copy of ctx carrying tenantID.
func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, tenantID)
}

// FromContext returns the tenant stored in ctx, or "" when none was set.
func FromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}

// PoolFactory opens a pool for a connection string.
type PoolFactory func(ctx context.Context, databaseURL string) (*pgxpool.Pool, error)

// Resolver hands out the pool for a tenant.
type Resolver interface {
	Resolve(ctx context.Context, tenantID string) (*pgxpool.Pool, error)
}

// Registry caches one pool per tenant. Tenants without a dedicated
// database share the default pool.
type Registry struct {
	mu       sync.Mutex
	urls     map[string]string
	pools    map[string]*pgxpool.Pool
	fallback *pgxpool.Pool
	open     PoolFactory
	logger   *slog.Logger
	// tenants already reported as running on the default pool
	warned map[string]struct{}
}

var _ Resolver = (*Registry)(nil)

// NewRegistry builds a registry over the default pool. urls maps tenant ids
// to connection strings; those pools are opened on first use.
func NewRegistry(fallback *pgxpool.Pool, urls map[string]string, open PoolFactory, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		urls:     urls,
		pools:    make(map[string]*pgxpool.Pool),
		fallback: fallback,
		open:     open,
		logger:   logger,
		warned:   make(map[string]struct{}),
	}
}

// Resolve returns the pool for tenantID.
func (r *Registry) Resolve(ctx context.Context, tenantID string) (*pgxpool.Pool, error) {
	url, dedicated := r.urls[tenantID]
	if tenantID == "" || !dedicated {
		if r.fallback == nil {
			return nil, apperrors.NewAppError(500, "no database configured for tenant", fmt.Errorf("tenant %q", tenantID))
		}
		if tenantID != "" {
			r.warnFallback(tenantID)
		}
		return r.fallback, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if pool, ok := r.pools[tenantID]; ok {
		return pool, nil
	}
	pool, err := r.open(ctx, url)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to open tenant database", err)
	}
	r.pools[tenantID] = pool
	r.logger.Info("Opened tenant database pool", slog.String("tenant_id", tenantID))
	return pool, nil
}

func (r *Registry) warnFallback(tenantID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, seen := r.warned[tenantID]; seen {
		return
	}
	r.warned[tenantID] = struct{}{}
	r.logger.Warn("Tenant has no dedicated database, using the default pool", slog.String("tenant_id", tenantID))
}

// Close closes every tenant pool and the default pool.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, pool := range r.pools {
		pool.Close()
		delete(r.pools, id)
	}
	if r.fallback != nil {
		r.fallback.Close()
	}
}

// ParseTenantURLs parses "tenant=url;tenant2=url2". Blank segments are skipped.
func ParseTenantURLs(raw string) (map[string]string, error) {
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, url, ok := strings.Cut(part, "=")
		id, url = strings.TrimSpace(id), strings.TrimSpace(url)
		if !ok || id == "" || url == "" {
			return nil, fmt.Errorf("invalid tenant database entry %q", part)
		}
		out[id] = url
	}
	return out, nil
}
