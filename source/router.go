package source

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/kbukum/kthmin/errors"
	"github.com/kbukum/kthmin/logger"
	"github.com/kbukum/kthmin/observability"
	"github.com/kbukum/kthmin/util"
)

// Router dispatches locators to an Opener by scheme.
type Router struct {
	openers map[string]Opener
	log     *logger.Logger
}

// NewRouter creates an empty router.
func NewRouter(log *logger.Logger) *Router {
	if log == nil {
		log = logger.Nop()
	}
	return &Router{
		openers: make(map[string]Opener),
		log:     log.WithComponent("source"),
	}
}

// New builds a router from config: local paths always, S3 when enabled.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*Router, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := NewRouter(log)
	local, err := NewLocal(cfg.BasePath)
	if err != nil {
		return nil, err
	}
	r.Register(SchemeFile, local)

	if cfg.S3.Enabled {
		s3, err := NewS3(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		r.Register(SchemeS3, s3)
		fields := logger.Fields("region", cfg.S3.Region, "endpoint", cfg.S3.Endpoint)
		if cfg.S3.AccessKey != "" {
			fields["access_key"] = util.MaskSecret(cfg.S3.AccessKey, 4)
		}
		r.log.Info("s3 sources enabled", fields)
	}
	return r, nil
}

// Register sets the opener for a scheme, replacing any previous one.
func (r *Router) Register(scheme string, o Opener) {
	r.openers[scheme] = o
}

// Open implements Opener.
func (r *Router) Open(ctx context.Context, locator string) (io.ReadCloser, error) {
	scheme := Scheme(locator)
	o, ok := r.openers[scheme]
	if !ok {
		return nil, errors.InvalidInput("path", fmt.Sprintf("%s sources are not enabled", scheme))
	}
	r.log.Debug("opening source", logger.Fields(logger.FieldLocator, locator, "scheme", scheme))
	return o.Open(ctx, locator)
}

// Schemes returns the registered schemes in sorted order.
func (r *Router) Schemes() []string {
	schemes := make([]string, 0, len(r.openers))
	for s := range r.openers {
		schemes = append(schemes, s)
	}
	slices.Sort(schemes)
	return schemes
}

// CheckHealth reports the enabled schemes. A local base path that is
// missing or not a directory marks the source down.
func (r *Router) CheckHealth(_ context.Context) observability.Health {
	h := observability.Health{
		Name:    "source",
		Status:  observability.HealthStatusUp,
		Details: map[string]string{"schemes": strings.Join(r.Schemes(), ",")},
	}
	if local, ok := r.openers[SchemeFile].(*Local); ok {
		if err := local.check(); err != nil {
			h.Status = observability.HealthStatusDown
			h.Message = err.Error()
		}
	}
	return h
}
