package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GriffinCanCode/numbertheory/internal/render"
	"github.com/GriffinCanCode/numbertheory/internal/shared/id"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// step runs one tool. A non-empty key nests its data under that key.
type step struct {
	toolID string
	key    string
}

type toolDef struct {
	use       string
	short     string
	example   string
	operation string
	params    []string
	steps     []step
}

func toolCommands(opts *options) []*cobra.Command {
	defs := []toolDef{
		{use: "prime N", short: "Test whether N is prime", example: "ntp prime 97",
			params: []string{"n"}, steps: []step{{toolID: "ntp.isPrime"}}},
		{use: "primes N", short: "List the first 30 primes from N upward", example: "ntp primes 100",
			params: []string{"n"}, steps: []step{{toolID: "ntp.primes"}}},
		{use: "twin-primes N", short: "List the first 20 twin prime pairs from N upward", example: "ntp twin-primes 100",
			params: []string{"n"}, steps: []step{{toolID: "ntp.twinPrimes"}}},
		{use: "factor N", short: "Prime factorization and divisor count of N", example: "ntp factor 360",
			params: []string{"n"}, steps: []step{{toolID: "ntp.factorize"}}},
		{use: "divisibility N", short: "Digit-rule divisibility tests and the proper divisors of N", example: "ntp divisibility 2310",
			params: []string{"n"}, steps: []step{{toolID: "ntp.divisibility"}}},
		{use: "gcd-lcm A B", short: "GCD and LCM by the Euclidean algorithm and by prime factorization", example: "ntp gcd-lcm 1071 462",
			operation: "gcd-lcm", params: []string{"a", "b"},
			steps: []step{{toolID: "ntp.euclid", key: "euclidean_info"}, {toolID: "ntp.gcdLcm", key: "pf_info"}}},
		{use: "euclid A B", short: "Trace the Euclidean algorithm on A and B", example: "ntp euclid 1071 462",
			params: []string{"a", "b"}, steps: []step{{toolID: "ntp.euclid"}}},
		{use: "goldbach N", short: "Write an even N as sums of two primes", example: "ntp goldbach 100",
			params: []string{"n"}, steps: []step{{toolID: "ntp.goldbach"}}},
		{use: "triples N", short: "First 10 Pythagorean triples with smallest leg from N upward", example: "ntp triples 3",
			params: []string{"n"}, steps: []step{{toolID: "ntp.pythagoreanTriples"}}},
		{use: "two-square N", short: "First prime p >= N with p = 1 mod 4 as a sum of two squares", example: "ntp two-square 10",
			params: []string{"n"}, steps: []step{{toolID: "ntp.twoSquare"}}},
		{use: "fib FIRST SECOND", short: "Fibonacci-like sequence and its ratio to the golden ratio", example: "ntp fib 2 5",
			params: []string{"first", "second"}, steps: []step{{toolID: "ntp.fibonacciLike"}}},
		{use: "multiply A B", short: "Multiply by doubling and halving", example: "ntp multiply 27 82",
			params: []string{"a", "b"}, steps: []step{{toolID: "ntp.doubling"}}},
	}

	cmds := make([]*cobra.Command, 0, len(defs))
	for _, def := range defs {
		cmds = append(cmds, toolCmd(opts, def))
	}
	return cmds
}

func toolCmd(opts *options, def toolDef) *cobra.Command {
	return &cobra.Command{
		Use:     def.use,
		Short:   def.short,
		Example: "  " + def.example,
		Args:    cobra.ExactArgs(len(def.params)),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(def.params, args)
			if err != nil {
				return err
			}
			params["explain"] = opts.explain

			data, err := opts.run(cmd.Context(), def.steps, params)
			if err != nil {
				return err
			}

			operation := def.operation
			if operation == "" {
				operation = def.steps[0].toolID
			}
			return render.Render(cmd.OutOrStdout(), opts.format, operation, data)
		},
	}
}

func (o *options) run(ctx context.Context, steps []step, params map[string]interface{}) (map[string]interface{}, error) {
	requestID := string(id.NewRequestID())
	appCtx := &types.Context{RequestID: &requestID, Source: "cli"}

	data := make(map[string]interface{})
	for _, s := range steps {
		result, err := o.executor.Execute(ctx, s.toolID, params, appCtx)
		if err != nil {
			return nil, err
		}
		if !result.Success {
			if result.Error != nil {
				return nil, errors.New(*result.Error)
			}
			return nil, fmt.Errorf("%s failed", s.toolID)
		}

		if s.key == "" {
			for k, v := range result.Data {
				data[k] = v
			}
			continue
		}
		data[s.key] = result.Data
	}
	return data, nil
}

func parseParams(names, args []string) (map[string]interface{}, error) {
	params := make(map[string]interface{}, len(names)+1)
	for i, name := range names {
		v, err := strconv.ParseInt(args[i], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s must be an integer, got %q", name, args[i])
		}
		params[name] = v
	}
	return params, nil
}
