package primes

import (
	"context"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
	"github.com/GriffinCanCode/numbertheory/internal/numtheory/explain"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory/common"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// PrimesOps handles primality, prime listings and prime sums
type PrimesOps struct {
	*common.Ops
}

// GetTools returns prime tool definitions
func (p *PrimesOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "ntp.isPrime",
			Name:        "Is Prime",
			Description: "Test whether a number is prime",
			Parameters: []types.Parameter{
				p.Limits.IsPrime.Parameter("n", "Number to test"),
				common.ExplainParameter,
			},
			Returns: "boolean",
		},
		{
			ID:          "ntp.primes",
			Name:        "Primes After",
			Description: "List the first 30 primes greater than or equal to n",
			Parameters: []types.Parameter{
				p.Limits.Primes.Parameter("n", "Starting number"),
				common.ExplainParameter,
			},
			Returns: "array",
		},
		{
			ID:          "ntp.twinPrimes",
			Name:        "Twin Primes After",
			Description: "List the first 20 twin prime pairs whose smaller member is at least n",
			Parameters: []types.Parameter{
				p.Limits.TwinPrimes.Parameter("n", "Starting number"),
				common.ExplainParameter,
			},
			Returns: "array",
		},
		{
			ID:          "ntp.goldbach",
			Name:        "Goldbach Pairs",
			Description: "List every pair of primes p <= q with p + q = n for an even n",
			Parameters: []types.Parameter{
				p.Limits.Goldbach.Parameter("n", "Even number to split"),
				common.ExplainParameter,
			},
			Returns: "array",
		},
		{
			ID:          "ntp.twoSquare",
			Name:        "Two Square",
			Description: "Find the first prime p >= n with p ≡ 1 (mod 4) and write it as a sum of two squares",
			Parameters: []types.Parameter{
				p.Limits.TwoSquare.Parameter("n", "Starting number"),
				common.ExplainParameter,
			},
			Returns: "object",
		},
	}
}

// IsPrime tests n for primality
func (p *PrimesOps) IsPrime(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", p.Limits.IsPrime)
	if err != nil {
		return common.Failure(err.Error())
	}

	prime := numtheory.IsPrime(n)
	data := map[string]interface{}{"n": n, "is_prime": prime}
	if common.WantExplain(params) {
		data["explanation"] = []string{explain.IsPrime(n, prime)}
	}
	return common.Success(data)
}

// Primes lists primes from n upward
func (p *PrimesOps) Primes(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", p.Limits.Primes)
	if err != nil {
		return common.Failure(err.Error())
	}

	primes, err := numtheory.PrimesAfter(n)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"n": n, "primes": primes}
	if common.WantExplain(params) {
		data["explanation"] = explain.Primes(n, primes)
	}
	return common.Success(data)
}

// TwinPrimes lists twin prime pairs from n upward
func (p *PrimesOps) TwinPrimes(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", p.Limits.TwinPrimes)
	if err != nil {
		return common.Failure(err.Error())
	}

	pairs, err := numtheory.TwinPrimesAfter(n)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"n": n, "pairs": pairs}
	if common.WantExplain(params) {
		data["explanation"] = explain.TwinPrimes(n, pairs)
	}
	return common.Success(data)
}

// Goldbach lists the prime pairs summing to n
func (p *PrimesOps) Goldbach(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", p.Limits.Goldbach)
	if err != nil {
		return common.Failure(err.Error())
	}

	pairs, err := numtheory.GoldbachPairs(n)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"n": n, "pairs": pairs}
	if common.WantExplain(params) {
		data["explanation"] = explain.Goldbach(n, pairs)
	}
	return common.Success(data)
}

// TwoSquare finds a prime and its two-square representation
func (p *PrimesOps) TwoSquare(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", p.Limits.TwoSquare)
	if err != nil {
		return common.Failure(err.Error())
	}

	r, err := numtheory.TwoSquareInfo(n)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"n": n, "representation": r}
	if common.WantExplain(params) {
		data["explanation"] = []string{explain.TwoSquare(r)}
	}
	return common.Success(data)
}
