package commands

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/config"
	"github.com/GriffinCanCode/numbertheory/internal/infrastructure/server"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPrime(t *testing.T) {
	out, err := run(t, "prime", "97")
	require.NoError(t, err)
	assert.Equal(t, "97 is prime.\n", out)

	out, err = run(t, "prime", "91")
	require.NoError(t, err)
	assert.Equal(t, "91 is not prime.\n", out)
}

func TestInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"not an integer", []string{"prime", "abc"}, "n must be an integer"},
		{"below range", []string{"goldbach", "2"}, "n must be between 4 and 100000, got 2"},
		{"above range", []string{"goldbach", "200000"}, "n must be between 4 and 100000, got 200000"},
		{"odd goldbach input", []string{"goldbach", "7"}, "n must be even, got 7"},
		{"missing argument", []string{"gcd-lcm", "12"}, "accepts 2 arg(s)"},
		{"unknown format", []string{"-o", "xml", "prime", "7"}, "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGCDLCMJSON(t *testing.T) {
	out, err := run(t, "-o", "json", "gcd-lcm", "1071", "462")
	require.NoError(t, err)

	var env struct {
		Operation string `json:"operation"`
		Result    struct {
			Euclid struct {
				GCD int64 `json:"gcd"`
			} `json:"euclidean_info"`
			Factorization struct {
				GCD int64 `json:"gcd"`
				LCM int64 `json:"lcm"`
			} `json:"pf_info"`
		} `json:"result"`
	}
	require.NoError(t, sonic.UnmarshalString(out, &env))
	assert.Equal(t, "gcd-lcm", env.Operation)
	assert.Equal(t, int64(21), env.Result.Euclid.GCD)
	assert.Equal(t, int64(21), env.Result.Factorization.GCD)
	assert.Equal(t, int64(23562), env.Result.Factorization.LCM)
}

func TestNoExplain(t *testing.T) {
	out, err := run(t, "--explain=false", "-o", "yaml", "multiply", "27", "82")
	require.NoError(t, err)
	assert.Contains(t, out, "product: 2214")
	assert.NotContains(t, out, "explanation")
}

func TestTextCommandsProduceExplanations(t *testing.T) {
	cases := [][]string{
		{"primes", "100"},
		{"twin-primes", "100"},
		{"factor", "360"},
		{"divisibility", "2310"},
		{"euclid", "1071", "462"},
		{"goldbach", "100"},
		{"triples", "3"},
		{"two-square", "10"},
		{"fib", "2", "5"},
		{"multiply", "27", "82"},
	}

	for _, args := range cases {
		t.Run(args[0], func(t *testing.T) {
			out, err := run(t, args...)
			require.NoError(t, err)
			assert.NotEmpty(t, out)
			assert.NotContains(t, out, "operation:")
		})
	}
}

func TestTools(t *testing.T) {
	out, err := run(t, "tools")
	require.NoError(t, err)
	assert.Contains(t, out, "ntp.goldbach")
	assert.Contains(t, out, "n [4..100000]")
}

func TestRemote(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.RateLimit.Enabled = false
	srv, err := server.NewServer(cfg)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	out, err := run(t, "--remote", ts.URL, "prime", "97")
	require.NoError(t, err)
	assert.Equal(t, "97 is prime.\n", out)

	_, err = run(t, "--remote", ts.URL, "goldbach", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n must be between")

	_, err = run(t, "--remote", ts.URL, "goldbach", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "n must be even")
}
