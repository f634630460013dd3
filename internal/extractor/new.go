package extractor

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"task-assistant/internal/model"
	"task-assistant/pkg/gemini"
	pkgLog "task-assistant/pkg/log"
)

const (
	// DefaultTimeout bounds a single LLM call.
	DefaultTimeout = 15 * time.Second

	// DefaultCacheSize is the extraction result cache capacity.
	DefaultCacheSize = 256

	// maxAttempts = first call + one retry. Never more.
	maxAttempts = 2

	extractionTemperature = 0.2
	extractionMaxTokens   = 1024
)

// Config holds extractor tuning knobs.
type Config struct {
	Timeout   time.Duration
	CacheSize int
}

// Service is the Gemini-backed Extractor. Same input and instructions are
// idempotent in intent, so successful results are memoized in a bounded LRU.
type Service struct {
	l       pkgLog.Logger
	llm     gemini.IGemini
	cache   *lru.Cache[string, model.TaskCandidate]
	timeout time.Duration
}

var _ Extractor = (*Service)(nil)

// New creates a new extraction Service.
func New(l pkgLog.Logger, llm gemini.IGemini, cfg Config) (*Service, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}

	cache, err := lru.New[string, model.TaskCandidate](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("extractor: failed to create result cache: %w", err)
	}

	return &Service{
		l:       l,
		llm:     llm,
		cache:   cache,
		timeout: cfg.Timeout,
	}, nil
}
