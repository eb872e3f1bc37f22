package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// Ops is shared by every operation group
type Ops struct {
	Limits Limits
}

// Range is an inclusive bound on an integer argument
type Range struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Contains reports whether n lies within the range
func (r Range) Contains(n int64) bool {
	return n >= r.Min && n <= r.Max
}

// Parameter describes an integer argument bounded by r
func (r Range) Parameter(name, description string) types.Parameter {
	lo, hi := r.Min, r.Max
	return types.Parameter{
		Name:        name,
		Type:        "integer",
		Description: description,
		Required:    true,
		Min:         &lo,
		Max:         &hi,
	}
}

// Limits caps the inputs each tool accepts
type Limits struct {
	Primes       Range `json:"primes"`
	TwinPrimes   Range `json:"twin_primes"`
	IsPrime      Range `json:"is_prime"`
	Goldbach     Range `json:"goldbach"`
	TwoSquare    Range `json:"two_square"`
	Factorize    Range `json:"factorize"`
	Divisibility Range `json:"divisibility"`
	GCDLCM       Range `json:"gcd_lcm"`
	Euclid       Range `json:"euclid"`
	Triples      Range `json:"pythagorean_triples"`
	Sequence     Range `json:"fibonacci_like"`
	Doubling     Range `json:"doubling"`
}

// DefaultLimits returns the ceilings served over HTTP
func DefaultLimits() Limits {
	return Limits{
		Primes:       Range{Min: 0, Max: 1_000_000_000},
		TwinPrimes:   Range{Min: 0, Max: 1_000_000_000},
		IsPrime:      Range{Min: 0, Max: 1_000_000_000},
		Goldbach:     Range{Min: 4, Max: 100_000},
		TwoSquare:    Range{Min: 0, Max: 1_000_000_000},
		Factorize:    Range{Min: 2, Max: 10_000},
		Divisibility: Range{Min: 2, Max: 10_000},
		GCDLCM:       Range{Min: 2, Max: 10_000},
		Euclid:       Range{Min: 2, Max: 10_000},
		Triples:      Range{Min: 0, Max: 1_000},
		Sequence:     Range{Min: 1, Max: 1_000},
		Doubling:     Range{Min: 2, Max: 1_000},
	}
}

// ExplainParameter is accepted by every tool
var ExplainParameter = types.Parameter{
	Name:        "explain",
	Type:        "boolean",
	Description: "Include a narrative explanation (default: false)",
	Required:    false,
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure creates a failed result
func Failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}

// Outcome turns an engine error into a result. Invalid arguments become a
// failed result; anything else is returned as an error.
func Outcome(data map[string]interface{}, err error) (*types.Result, error) {
	switch {
	case err == nil:
		return Success(data)
	case errors.Is(err, numtheory.ErrInvalidArgument):
		return Failure(err.Error())
	default:
		return nil, err
	}
}

// GetInteger extracts an exact integer within ±(2^53 − 1)
func GetInteger(params map[string]interface{}, key string) (int64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	var n int64
	switch v := val.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > float64(numtheory.MaxSafeInteger) {
			return 0, false
		}
		n = int64(v)
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}
		n = i
	default:
		return 0, false
	}

	if n > numtheory.MaxSafeInteger || n < -numtheory.MaxSafeInteger {
		return 0, false
	}
	return n, true
}

// RequireInteger extracts key and checks it against r
func RequireInteger(params map[string]interface{}, key string, r Range) (int64, error) {
	if _, ok := params[key]; !ok {
		return 0, fmt.Errorf("%w: %s parameter required", numtheory.ErrInvalidArgument, key)
	}
	n, ok := GetInteger(params, key)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a safe integer", numtheory.ErrInvalidArgument, key)
	}
	if !r.Contains(n) {
		return 0, fmt.Errorf("%w: %s must be between %d and %d, got %d", numtheory.ErrInvalidArgument, key, r.Min, r.Max, n)
	}
	return n, nil
}

// GetBool extracts bool from params
func GetBool(params map[string]interface{}, key string) (bool, bool) {
	val, ok := params[key].(bool)
	return val, ok
}

// WantExplain reports whether the caller asked for narrative text
func WantExplain(params map[string]interface{}) bool {
	explain, _ := GetBool(params, "explain")
	return explain
}
