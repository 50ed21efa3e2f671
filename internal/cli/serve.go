package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgsmith/svgsmith/internal/server"
	"github.com/svgsmith/svgsmith/pkg/cache"
	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/pipeline"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		storeKind string
		mongoURI  string
		cacheKind string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the scene rendering HTTP server",
		Long: `Run the scene rendering HTTP server.

The server stores scene manifests and renders them on demand. Scenes are
created with POST /scenes and rendered with GET /scenes/{id}/render; ad-hoc
manifests can be rendered without storing via POST /api/render.

The memory store keeps scenes in process memory and loses them on restart;
use --store mongo for persistence. The render cache defaults to the same
file cache the render command uses; --cache redis shares results across
hosts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, storeKind, mongoURI, cacheKind, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().StringVar(&storeKind, "store", "memory", "scene store backend: memory, mongo")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string (default mongodb://localhost:27017)")
	cmd.Flags().StringVar(&cacheKind, "cache", "file", "render cache backend: file, redis, none")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (default localhost:6379)")

	return cmd
}

// runServe assembles the store, cache, and runner, then serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, addr, storeKind, mongoURI, cacheKind, redisAddr string) error {
	st, err := newStore(ctx, storeKind, mongoURI)
	if err != nil {
		return fmt.Errorf("connect scene store: %w", err)
	}
	defer st.Close(context.Background())

	ca, err := c.newServeCache(ctx, cacheKind, redisAddr)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(ca, nil, c.Logger)
	defer runner.Close()

	srv := server.New(server.Config{
		Addr:   addr,
		Store:  st,
		Runner: runner,
		Logger: c.Logger,
	})

	printInfo("Serving on %s", StyleLink.Render(displayURL(addr)))
	printDetail("store: %s · cache: %s", storeKind, cacheKind)
	return srv.Start(ctx)
}

// newServeCache builds the render cache for the server. An unreachable
// Redis degrades to the local file cache rather than failing startup.
func (c *CLI) newServeCache(ctx context.Context, kind, redisAddr string) (cache.Cache, error) {
	switch kind {
	case "none":
		return cache.NewNullCache(), nil
	case "file":
		return newCache(false)
	case "redis":
		rc := cache.NewRedisCache(cache.RedisOptions{Addr: redisAddr})
		if err := rc.Ping(ctx); err != nil {
			printWarning("Redis unreachable, using file cache: %v", err)
			return newCache(false)
		}
		return rc, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown cache kind: %q (valid: file, redis, none)", kind)
	}
}

// displayURL turns a listen address into something clickable.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
