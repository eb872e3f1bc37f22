package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numbertheory/internal/providers/numbertheory"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

type mockProvider struct {
	id       string
	category types.Category
}

func (m *mockProvider) Definition() types.Service {
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     m.category,
		Capabilities: []string{"echo"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"tool": toolID, "params": len(params)},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.Error(t, r.Register(&mockProvider{id: ""}))

	r.Unregister("test")
	_, ok = r.Get("test")
	assert.False(t, ok)
}

func TestList(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "b", category: types.CategorySequences}))
	require.NoError(t, r.Register(&mockProvider{id: "a", category: types.CategoryPrimes}))

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "a", services[0].ID)

	cat := types.CategoryPrimes
	filtered := r.List(&cat)
	require.Len(t, filtered, 1)
	assert.Equal(t, "a", filtered[0].ID)
}

func TestTool(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(numbertheory.NewProvider()))

	tool, ok := r.Tool("ntp.goldbach")
	require.True(t, ok)
	assert.Equal(t, "Goldbach Pairs", tool.Name)

	for _, id := range []string{"ntp.nope", "nope.goldbach", "goldbach"} {
		_, ok := r.Tool(id)
		assert.False(t, ok, id)
	}
}

func TestDiscover(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "mock"}))
	require.NoError(t, r.Register(numbertheory.NewProvider()))

	results := r.Discover("find the prime factorization of 360", 5)
	require.NotEmpty(t, results)
	assert.Equal(t, numbertheory.ServiceID, results[0].ID)

	results = r.Discover("twin primes", 1)
	require.Len(t, results, 1)
	assert.Equal(t, numbertheory.ServiceID, results[0].ID)

	assert.Empty(t, r.Discover("zzz", 5))
}

func TestCalculateRelevanceIgnoresEmptyFields(t *testing.T) {
	svc := types.Service{
		ID:           "blank",
		Capabilities: []string{"", "  "},
		Tools:        []types.Tool{{ID: "blank.tool"}},
	}

	for _, intent := range []string{"zzz", "anything at all", ""} {
		assert.Zero(t, calculateRelevance(intent, svc), intent)
	}

	svc.Category = types.CategoryPrimes
	assert.Positive(t, calculateRelevance("list primes", svc))
}

func TestExecute(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test"}))
	ctx := context.Background()

	result, err := r.Execute(ctx, "test.test", nil, nil)
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Data["params"])

	result, err = r.Execute(ctx, "nodot", nil, nil)
	assert.ErrorIs(t, err, ErrInvalidToolID)
	assert.False(t, result.Success)

	result, err = r.Execute(ctx, "missing.tool", nil, nil)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.False(t, result.Success)
}

func TestExecuteNumberTheory(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(numbertheory.NewProvider()))

	result, err := r.Execute(context.Background(), "ntp.gcdLcm", map[string]interface{}{"a": 12, "b": 18}, nil)
	require.NoError(t, err)
	require.True(t, result.Success)
	assert.Equal(t, int64(6), result.Data["gcd"])
}

func TestStats(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&mockProvider{id: "test1", category: types.CategoryPrimes}))
	require.NoError(t, r.Register(&mockProvider{id: "test2", category: types.CategoryPrimes}))

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{"primes": 2}, stats["categories"])
}
