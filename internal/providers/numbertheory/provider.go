package numbertheory

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/logging"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory/common"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory/divisibility"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory/primes"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory/sequences"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// ServiceID prefixes every tool ID of this provider
const ServiceID = "ntp"

// Provider implements number theory operations
type Provider struct {
	primes       *primes.PrimesOps
	divisibility *divisibility.DivisibilityOps
	sequences    *sequences.SequenceOps

	logger  *logging.Logger
	metrics *monitoring.Metrics
}

// Option configures a Provider
type Option func(*Provider, *common.Ops)

// WithLimits replaces the default input ceilings
func WithLimits(limits common.Limits) Option {
	return func(_ *Provider, ops *common.Ops) { ops.Limits = limits }
}

// WithLogger logs internal errors to logger
func WithLogger(logger *logging.Logger) Option {
	return func(p *Provider, _ *common.Ops) { p.logger = logger }
}

// WithMetrics records every call in metrics
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(p *Provider, _ *common.Ops) { p.metrics = metrics }
}

// NewProvider creates a modular number theory provider
func NewProvider(opts ...Option) *Provider {
	ops := &common.Ops{Limits: common.DefaultLimits()}
	p := &Provider{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p, ops)
	}

	p.primes = &primes.PrimesOps{Ops: ops}
	p.divisibility = &divisibility.DivisibilityOps{Ops: ops}
	p.sequences = &sequences.SequenceOps{Ops: ops}
	return p
}

// Limits returns the input ceilings in effect
func (m *Provider) Limits() common.Limits {
	return m.primes.Limits
}

// Definition returns service metadata with all module tools
func (m *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, m.primes.GetTools()...)
	tools = append(tools, m.divisibility.GetTools()...)
	tools = append(tools, m.sequences.GetTools()...)

	return types.Service{
		ID:          ServiceID,
		Name:        "Number Theory Service",
		Description: "Number theory calculations (primes, factorization, gcd, lcm, goldbach, pythagorean triples, sequences)",
		Category:    types.CategoryNumberTheory,
		Capabilities: []string{
			"primality",
			"prime_factorization",
			"divisibility",
			"gcd",
			"lcm",
			"euclidean_algorithm",
			"goldbach",
			"twin_primes",
			"two_squares",
			"pythagorean_triples",
			"fibonacci",
			"doubling",
		},
		Tools: tools,
	}
}

// Execute routes to the appropriate module, timing and logging the call
func (m *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timer := monitoring.NewTimer(m.metrics, toolID)
	result, err := m.route(ctx, toolID, params, appCtx)

	switch {
	case err != nil:
		timer.Stop(monitoring.StatusInternal)
		m.logger.ForCall(toolID, appCtx).Error("calculation failed", zap.Any("params", params), zap.Error(err))
	case result.Success:
		timer.Stop(monitoring.StatusSuccess)
	default:
		timer.Stop(monitoring.StatusInvalid)
		m.logger.ForCall(toolID, appCtx).Debug("calculation rejected", logging.Reason(result.Error))
	}
	return result, err
}

func (m *Provider) route(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	// Primes
	case "ntp.isPrime":
		return m.primes.IsPrime(ctx, params, appCtx)
	case "ntp.primes":
		return m.primes.Primes(ctx, params, appCtx)
	case "ntp.twinPrimes":
		return m.primes.TwinPrimes(ctx, params, appCtx)
	case "ntp.goldbach":
		return m.primes.Goldbach(ctx, params, appCtx)
	case "ntp.twoSquare":
		return m.primes.TwoSquare(ctx, params, appCtx)

	// Divisibility
	case "ntp.factorize":
		return m.divisibility.Factorize(ctx, params, appCtx)
	case "ntp.divisibility":
		return m.divisibility.Divisibility(ctx, params, appCtx)
	case "ntp.gcdLcm":
		return m.divisibility.GCDLCM(ctx, params, appCtx)
	case "ntp.euclid":
		return m.divisibility.Euclid(ctx, params, appCtx)

	// Sequences
	case "ntp.pythagoreanTriples":
		return m.sequences.PythagoreanTriples(ctx, params, appCtx)
	case "ntp.fibonacciLike":
		return m.sequences.FibonacciLike(ctx, params, appCtx)
	case "ntp.doubling":
		return m.sequences.Doubling(ctx, params, appCtx)

	default:
		return common.Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}
