package service

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"animated-nav/internal/render"
	"animated-nav/pkg/cache"
	"animated-nav/pkg/logger"
	"animated-nav/pkg/navigation"
)

const cacheKeyPrefix = "nav:"

var (
	metricsOnce         sync.Once
	renderDuration      prometheus.Histogram
	fragmentCacheLookup *prometheus.CounterVec
)

func initMetrics() {
	metricsOnce.Do(func() {
		renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "animated_nav",
			Subsystem: "menu",
			Name:      "render_duration_seconds",
			Help:      "Duration of navigation fragment renders",
			Buckets:   []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025},
		})

		fragmentCacheLookup = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "animated_nav",
			Subsystem: "menu",
			Name:      "fragment_cache_lookups_total",
			Help:      "Fragment cache lookups by result",
		}, []string{"result"})
	})
}

// FragmentCache stores rendered fragments by key. *cache.Cache implements it.
type FragmentCache interface {
	Enabled() bool
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string, expiration time.Duration) error
}

// MenuService builds the navigation view model and renders it.
type MenuService struct {
	registry *navigation.Registry
	options  navigation.Options
	renderer *render.Renderer

	cache    FragmentCache
	cacheTTL time.Duration
	cacheKey string
	group    singleflight.Group
}

// NewMenuService returns a service rendering registry with opts. fragments may
// be nil or disabled, in which case every call renders fresh.
func NewMenuService(registry *navigation.Registry, renderer *render.Renderer, opts navigation.Options, fragments FragmentCache, ttl time.Duration) *MenuService {
	if registry == nil || renderer == nil {
		return nil
	}
	if fragments == nil {
		fragments = cache.Disabled()
	}

	initMetrics()

	s := &MenuService{
		registry: registry,
		options:  opts.WithDefaults(),
		renderer: renderer,
		cache:    fragments,
		cacheTTL: ttl,
	}
	s.cacheKey = cacheKeyPrefix + s.fingerprint()

	return s
}

// Items returns the registry contents in display order.
func (s *MenuService) Items() []navigation.Item {
	if s == nil {
		return nil
	}
	return s.registry.Items()
}

// Menu builds a fresh view model from the registry.
func (s *MenuService) Menu() navigation.Menu {
	return navigation.Build(s.Items(), s.options)
}

// Render returns the navigation fragment. With a cache configured, fragments
// are memoised under a key derived from the registry contents and options.
func (s *MenuService) Render(ctx context.Context) (template.HTML, error) {
	if s == nil {
		return "", errors.New("menu service not configured")
	}

	if !s.cache.Enabled() {
		return s.renderFresh()
	}

	cached, err := s.cache.GetString(ctx, s.cacheKey)
	switch {
	case err == nil:
		fragmentCacheLookup.WithLabelValues("hit").Inc()
		return template.HTML(cached), nil
	case errors.Is(err, cache.ErrNotFound):
		fragmentCacheLookup.WithLabelValues("miss").Inc()
	default:
		fragmentCacheLookup.WithLabelValues("error").Inc()
		logger.FromContext(ctx).WithError(err).Warn("Fragment cache lookup failed")
	}

	result, err, _ := s.group.Do(s.cacheKey, func() (interface{}, error) {
		fragment, err := s.renderFresh()
		if err != nil {
			return nil, err
		}
		if setErr := s.cache.SetString(ctx, s.cacheKey, string(fragment), s.cacheTTL); setErr != nil {
			logger.FromContext(ctx).WithError(setErr).Warn("Failed to store navigation fragment")
		}
		return fragment, nil
	})
	if err != nil {
		return "", err
	}

	return result.(template.HTML), nil
}

func (s *MenuService) renderFresh() (template.HTML, error) {
	timer := prometheus.NewTimer(renderDuration)
	defer timer.ObserveDuration()

	return s.renderer.Nav(s.Menu())
}

func (s *MenuService) fingerprint() string {
	digest := xxhash.New()
	for _, item := range s.registry.Items() {
		fmt.Fprintf(digest, "%q|%q|%t|%t\n", item.ID, item.Label, item.Accent, item.Highlight)
	}
	fmt.Fprintf(digest, "%+v|%d|%q|%q|%q", s.options.Styles, s.options.Stagger, s.options.AriaLabel, s.options.Brand.Mark, s.options.Brand.Text)
	return strconv.FormatUint(digest.Sum64(), 16)
}
