// Package resilient bounds and retries calls to another domain.Generator.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/avast/retry-go"

	"github.com/davidbz/chefgenius/internal/domain"
	"github.com/davidbz/chefgenius/internal/observability"
)

// Config contains the generation deadline and retry policy.
type Config struct {
	Timeout       time.Duration `env:"GENERATION_TIMEOUT"        envDefault:"120s"`
	RetryAttempts uint          `env:"GENERATION_RETRY_ATTEMPTS" envDefault:"1"`
	RetryDelay    time.Duration `env:"GENERATION_RETRY_DELAY"    envDefault:"500ms"`
}

// Generator decorates a domain.Generator with a per-attempt deadline and retries.
type Generator struct {
	next   domain.Generator
	config Config
}

var _ domain.Generator = (*Generator)(nil)

// NewGenerator wraps next. Zero attempts is treated as one.
func NewGenerator(next domain.Generator, config Config) (*Generator, error) {
	if next == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if config.RetryAttempts == 0 {
		config.RetryAttempts = 1
	}

	return &Generator{next: next, config: config}, nil
}

// Generate calls the wrapped generator until it returns non-empty text,
// the attempts are spent, or ctx ends.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	logger := observability.FromContext(ctx)

	var text string
	err := retry.Do(
		func() error {
			out, err := g.attempt(ctx, prompt)
			if err != nil {
				if ctx.Err() != nil {
					return retry.Unrecoverable(err)
				}
				return err
			}
			text = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(g.config.RetryAttempts),
		retry.Delay(g.config.RetryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("retrying generation",
				observability.Int("attempt", int(n)+1),
				observability.Error(err))
		}),
	)
	if err != nil {
		return "", err
	}

	return text, nil
}

// Name returns the wrapped generator's identifier.
func (g *Generator) Name() string {
	return g.next.Name()
}

type result struct {
	text string
	err  error
}

// attempt runs one call bounded by the configured timeout, even when the
// wrapped generator ignores cancellation.
func (g *Generator) attempt(ctx context.Context, prompt string) (string, error) {
	attemptCtx := ctx
	if g.config.Timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, g.config.Timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		text, err := g.next.Generate(attemptCtx, prompt)
		done <- result{text: text, err: err}
	}()

	var res result
	select {
	case res = <-done:
	case <-attemptCtx.Done():
		res = result{err: attemptCtx.Err()}
	}

	if res.err != nil {
		if ctx.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w after %s: %w", domain.ErrGenerationTimeout, g.config.Timeout, res.err)
		}
		return "", res.err
	}

	if strings.TrimSpace(res.text) == "" {
		return "", domain.ErrEmptyGeneration
	}

	return res.text, nil
}
