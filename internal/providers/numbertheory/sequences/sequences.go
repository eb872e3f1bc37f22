package sequences

import (
	"context"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
	"github.com/GriffinCanCode/numbertheory/internal/numtheory/explain"
	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory/common"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// SequenceOps handles triples, additive sequences and doubling
type SequenceOps struct {
	*common.Ops
}

// GetTools returns sequence tool definitions
func (s *SequenceOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "ntp.pythagoreanTriples",
			Name:        "Pythagorean Triples",
			Description: "List the first 10 Pythagorean triples whose first leg is at least n",
			Parameters: []types.Parameter{
				s.Limits.Triples.Parameter("n", "Smallest first leg"),
				common.ExplainParameter,
			},
			Returns: "array",
		},
		{
			ID:          "ntp.fibonacciLike",
			Name:        "Fibonacci-like Sequence",
			Description: "Extend two seeds into 20 terms and report the ratio of the last two",
			Parameters: []types.Parameter{
				s.Limits.Sequence.Parameter("first", "First term"),
				s.Limits.Sequence.Parameter("second", "Second term"),
				common.ExplainParameter,
			},
			Returns: "object",
		},
		{
			ID:          "ntp.doubling",
			Name:        "Multiplication by Doubling",
			Description: "Multiply a and b by summing doubled multiples of the larger one",
			Parameters: []types.Parameter{
				s.Limits.Doubling.Parameter("a", "First factor"),
				s.Limits.Doubling.Parameter("b", "Second factor"),
				common.ExplainParameter,
			},
			Returns: "object",
		},
	}
}

// PythagoreanTriples lists triples from n upward
func (s *SequenceOps) PythagoreanTriples(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	n, err := common.RequireInteger(params, "n", s.Limits.Triples)
	if err != nil {
		return common.Failure(err.Error())
	}

	triples, err := numtheory.PythagoreanTriplesAfter(n)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"n": n, "triples": triples}
	if common.WantExplain(params) {
		data["explanation"] = explain.Pythagorean(triples)
	}
	return common.Success(data)
}

// FibonacciLike builds an additive sequence from two seeds
func (s *SequenceOps) FibonacciLike(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	first, err := common.RequireInteger(params, "first", s.Limits.Sequence)
	if err != nil {
		return common.Failure(err.Error())
	}
	second, err := common.RequireInteger(params, "second", s.Limits.Sequence)
	if err != nil {
		return common.Failure(err.Error())
	}

	seq, err := numtheory.AdditiveSequence(first, second)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"first": first, "second": second, "sequence": seq}
	if common.WantExplain(params) {
		data["explanation"] = explain.Sequence(seq)
	}
	return common.Success(data)
}

// Doubling multiplies a and b by doubling
func (s *SequenceOps) Doubling(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	a, err := common.RequireInteger(params, "a", s.Limits.Doubling)
	if err != nil {
		return common.Failure(err.Error())
	}
	b, err := common.RequireInteger(params, "b", s.Limits.Doubling)
	if err != nil {
		return common.Failure(err.Error())
	}

	trace, err := numtheory.DoublingMultiply(a, b)
	if err != nil {
		return common.Outcome(nil, err)
	}
	data := map[string]interface{}{"a": a, "b": b, "product": trace.Product, "trace": trace}
	if common.WantExplain(params) {
		data["explanation"] = explain.Doubling(trace)
	}
	return common.Success(data)
}
