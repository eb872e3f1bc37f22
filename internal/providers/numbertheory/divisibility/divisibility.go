package divisibility

import (
	"context"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
	"github.com/GriffinCanCode/numbertheory/internal/numtheory/explain"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory/common"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// DivisibilityOps handles factorization, divisibility and common divisors
type DivisibilityOps struct {
	*common.Ops
}

// GetTools returns divisibility tool definitions
func (d *DivisibilityOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "ntp.factorize",
			Name:        "Prime Factorization",
			Description: "Factor n into ascending prime powers and count its divisors",
			Parameters: []types.Parameter{
				d.Limits.Factorize.Parameter("n", "Number to factor"),
				common.ExplainParameter,
			},
			Returns: "object",
		},
		{
			ID:          "ntp.divisibility",
			Name:        "Divisibility",
			Description: "Check digit divisibility rules and list every proper divisor with its factorization",
			Parameters: []types.Parameter{
				d.Limits.Divisibility.Parameter("n", "Number to inspect"),
				common.ExplainParameter,
			},
			Returns: "object",
		},
		{
			ID:          "ntp.gcdLcm",
			Name:        "GCD and LCM",
			Description: "Compute GCD and LCM by merging the prime factorizations of a and b",
			Parameters: []types.Parameter{
				d.Limits.GCDLCM.Parameter("a", "First number"),
				d.Limits.GCDLCM.Parameter("b", "Second number"),
				common.ExplainParameter,
			},
			Returns: "object",
		},
		{
			ID:          "ntp.euclid",
			Name:        "Euclidean Algorithm",
			Description: "Trace the Euclidean algorithm on a and b",
			Parameters: []types.Parameter{
				d.Limits.Euclid.Parameter("a", "First number"),
				d.Limits.Euclid.Parameter("b", "Second number"),
				common.ExplainParameter,
			},
			Returns: "object",
		},
	}
}

// Factorize factors n
func (d *DivisibilityOps) Factorize(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", d.Limits.Factorize)
	if err != nil {
		return common.Failure(err.Error())
	}

	f, err := numtheory.Factorize(n)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{
		"n":             n,
		"factorization": f,
		"divisor_count": f.FactorCount(),
	}
	if common.WantExplain(params) {
		data["explanation"] = []string{explain.FactorizationSentence(f), explain.DivisorCount(f)}
	}
	return common.Success(data)
}

// Divisibility reports digit rules and proper divisors of n
func (d *DivisibilityOps) Divisibility(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", d.Limits.Divisibility)
	if err != nil {
		return common.Failure(err.Error())
	}

	report, err := numtheory.Divisibility(n)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"n": n, "report": report}
	if common.WantExplain(params) {
		lines := []string{explain.DivisibilityTricks(report)}
		data["explanation"] = append(lines, explain.DivisibilityFactors(report)...)
	}
	return common.Success(data)
}

// GCDLCM combines the factorizations of a and b
func (d *DivisibilityOps) GCDLCM(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := common.RequireInteger(params, "a", d.Limits.GCDLCM)
	if err != nil {
		return common.Failure(err.Error())
	}
	b, err := common.RequireInteger(params, "b", d.Limits.GCDLCM)
	if err != nil {
		return common.Failure(err.Error())
	}

	fa, err := numtheory.Factorize(a)
	if err != nil {
		return common.Outcome(nil, err)
	}
	fb, err := numtheory.Factorize(b)
	if err != nil {
		return common.Outcome(nil, err)
	}
	r, err := numtheory.Combine(fa, fb)
	if err != nil {
		return common.Outcome(nil, err)
	}

	data := map[string]interface{}{
		"a":                 a,
		"b":                 b,
		"gcd":               r.GCDNumber(),
		"lcm":               r.LCMNumber(),
		"gcd_factorization": r.GCD,
		"lcm_factorization": r.LCM,
	}
	if common.WantExplain(params) {
		data["explanation"] = explain.GCDLCM(fa, fb, r)
	}
	return common.Success(data)
}

// Euclid traces the Euclidean algorithm
func (d *DivisibilityOps) Euclid(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := common.RequireInteger(params, "a", d.Limits.Euclid)
	if err != nil {
		return common.Failure(err.Error())
	}
	b, err := common.RequireInteger(params, "b", d.Limits.Euclid)
	if err != nil {
		return common.Failure(err.Error())
	}

	trace, err := numtheory.Euclid(a, b)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{
		"a":     a,
		"b":     b,
		"gcd":   trace.GCD(),
		"steps": trace.Steps,
	}
	if common.WantExplain(params) {
		data["explanation"] = explain.Euclid(trace)
	}
	return common.Success(data)
}
