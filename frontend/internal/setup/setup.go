package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"

	"github.com/gamefeed/gamefeed/frontend/internal/apiclient"
	"github.com/gamefeed/gamefeed/frontend/internal/handler"
	"github.com/gamefeed/gamefeed/frontend/internal/markdown"
	"github.com/gamefeed/gamefeed/frontend/internal/session"
	"github.com/gamefeed/gamefeed/shared/config"
	"github.com/gamefeed/gamefeed/shared/logger"
)

const defaultStaticDir = "frontend/static"

type Dependencies struct {
	Handler   *handler.Handler
	Sessions  *session.Manager
	Public    config.Public
	StaticDir string
	Redis     *redis.Client // nil when sessions live in memory only
}

// SetupDependencies builds everything the router needs from cfg. It only
// fails when templates do not parse or a configured Redis is unreachable.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	// Templates are embedded, so a parse error is a build defect
	templates, err := handler.LoadTemplates(handler.TemplateFS)
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	// Posts API client, shared by all session stores
	apiClient := apiclient.New(cfg.Public.APIBaseURL, cfg.Public.APITimeout)
	h := handler.New(templates, cfg.Public, markdown.New(), apiClient)

	deps := &Dependencies{
		Handler:   h,
		Public:    cfg.Public,
		StaticDir: defaultStaticDir,
	}
	// Static files are served from disk so they can change without a rebuild
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		deps.StaticDir = dir
	}

	// Sessions: in memory by default, snapshotted to Redis when configured
	sessionCfg := session.Config{TTL: cfg.Public.SessionTTL}
	if addr := cfg.Public.Redis.Addr; addr != "" {
		rdb, err := session.NewRedisClient(ctx, addr, cfg.Private.RedisPassword, cfg.Public.Redis.DB)
		if err != nil {
			return nil, err
		}
		deps.Redis = rdb
		// Readiness follows Redis once sessions depend on it
		h.HealthChecker = redisPinger{rdb}
		sessionCfg.Snapshots = session.NewRedisSnapshots(rdb, cfg.Public.SessionTTL)
		logger.Log.Info("session snapshots enabled", "redis", addr)
	}
	deps.Sessions = session.NewManager(sessionCfg)

	return deps, nil
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Cleanup closes every session store, saving snapshots, then the Redis
// connection.
func (d *Dependencies) Cleanup(ctx context.Context) {
	d.Sessions.Close(ctx)
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			logger.Log.Warn("closing redis", "error", err)
		}
	}
}
