package cli

import (
	"context"
	stderrors "errors"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordscatter/pkg/cache"
	"github.com/matzehuels/wordscatter/pkg/config"
	"github.com/matzehuels/wordscatter/pkg/render/cloud"
	"github.com/matzehuels/wordscatter/pkg/scatter"
	"github.com/matzehuels/wordscatter/pkg/words"
)

const (
	maxRequestBody  = 1 << 20 // word lists are tiny; anything bigger is abuse
	serveCacheTTL   = time.Hour
	shutdownTimeout = 5 * time.Second
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr       string
	redisAddr  string
	configPath string
}

// newServeCmd creates the serve command, which runs an HTTP server
// rendering posted word lists.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve word clouds over HTTP",
		Long: `Serve word clouds over HTTP.

POST a plain-text word list to /v1/cloud and receive the rendered SVG.
Layout settings come from the config file and can be overridden per
request with query parameters: width, height, font_size, seed, boxes.

Rendered artifacts are cached; pass --redis for a shared cache in
multi-instance deployments, otherwise a per-process file cache is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.redisAddr, "redis", "", "redis address for a shared artifact cache (host:port)")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file (default: ./wordscatter.toml if present)")

	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadServeConfig(opts.configPath)
	if err != nil {
		return err
	}

	store, err := openServeCache(ctx, opts.redisAddr)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:    opts.addr,
		Handler: newRouter(ctx, cfg, store),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func loadServeConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.Discover()
}

// openServeCache picks the cache backend: redis when configured,
// otherwise a process-local file cache, degrading to no cache.
func openServeCache(ctx context.Context, redisAddr string) (cache.Cache, error) {
	if redisAddr != "" {
		return cache.NewRedisCache(ctx, redisAddr)
	}
	if store, err := cache.NewFileCache(".wordscatter-cache"); err == nil {
		return store, nil
	}
	return cache.NewNullCache(), nil
}

// newRouter builds the chi route tree. The base context's logger is
// propagated into request handling.
func newRouter(base context.Context, cfg config.Config, store cache.Cache) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(requestLogger(base))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/v1/cloud", cloudHandler(cfg, store))

	return r
}

// requestIDMiddleware tags every request and response with a UUID so
// log lines can be correlated across instances.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		id := req.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, req.WithContext(withRequestID(req.Context(), id)))
	})
}

// requestIDKey is the context key for the request ID.
const requestIDKey ctxKey = 1

func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// requestLogger logs each request with its ID, method, path, and duration.
func requestLogger(base context.Context) func(http.Handler) http.Handler {
	logger := loggerFromContext(base)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, req)
			logger.Debugf("%s %s id=%s (%s)", req.Method, req.URL.Path,
				requestIDFromContext(req.Context()), time.Since(start).Round(time.Millisecond))
		})
	}
}

// cloudHandler renders a posted word list as SVG.
func cloudHandler(cfg config.Config, store cache.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		tokens, err := words.Read(http.MaxBytesReader(w, req.Body, maxRequestBody))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		scfg, seed, seeded, boxes, err := requestSettings(req, cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		key := cache.ArtifactKey(tokens, struct {
			Layout scatter.Config
			Boxes  bool
		}{scfg, boxes}, "svg", seed)

		if seeded {
			if data, found, err := store.Get(req.Context(), key); err == nil && found {
				writeSVG(w, data)
				return
			}
		}

		rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
		placements, err := scatter.Layout(rng, tokens, scfg)
		if err != nil {
			var infeasible *scatter.InfeasibleError
			if stderrors.As(err, &infeasible) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		svgOpts := []cloud.SVGOption{
			cloud.WithBackground(cfg.Render.Background),
			cloud.WithFontFamily(cfg.Render.FontFamily),
		}
		if boxes {
			svgOpts = append(svgOpts, cloud.WithBoxes())
		}
		data := cloud.RenderSVG(placements, scfg, svgOpts...)

		if seeded {
			_ = store.Set(req.Context(), key, data, serveCacheTTL)
		}
		writeSVG(w, data)
	}
}

// requestSettings merges per-request query parameters over the server
// configuration.
func requestSettings(req *http.Request, cfg config.Config) (scatter.Config, uint64, bool, bool, error) {
	scfg := cfg.Scatter()
	q := req.URL.Query()

	if v := q.Get("width"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return scfg, 0, false, false, stderrors.New("width must be a positive number")
		}
		scfg.Width = f
	}
	if v := q.Get("height"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return scfg, 0, false, false, stderrors.New("height must be a positive number")
		}
		scfg.Height = f
	}
	if v := q.Get("font_size"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 {
			return scfg, 0, false, false, stderrors.New("font_size must be a positive number")
		}
		scfg.FontSize = f
	}

	seeded := false
	var seed uint64
	if v := q.Get("seed"); v != "" {
		s, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return scfg, 0, false, false, stderrors.New("seed must be an unsigned integer")
		}
		seed = s
		seeded = true
	} else {
		seed = uint64(time.Now().UnixNano())
	}

	boxes := q.Get("boxes") == "true"
	return scfg, seed, seeded, boxes, nil
}

func writeSVG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(data)
}
