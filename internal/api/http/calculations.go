package http

import (
	"math"
	"math/rand/v2"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
	"github.com/GriffinCanCode/numbertheory/internal/shared/types"
)

// call is one tool invocation behind a section
type call struct {
	toolID string
	// key names the call's part of a combined response; empty for single-call sections
	key string
}

// section maps a /calculations section to tools and parameter names
type section struct {
	calls []call
	// params holds one name (query "number") or two (query "firstNumber", "secondNumber")
	params []string
}

var sections = map[string]section{
	"primes":             {calls: []call{{toolID: "ntp.primes"}}, params: []string{"n"}},
	"twinPrimes":         {calls: []call{{toolID: "ntp.twinPrimes"}}, params: []string{"n"}},
	"isPrime":            {calls: []call{{toolID: "ntp.isPrime"}}, params: []string{"n"}},
	"primeFactorization": {calls: []call{{toolID: "ntp.factorize"}}, params: []string{"n"}},
	"divisibility":       {calls: []call{{toolID: "ntp.divisibility"}}, params: []string{"n"}},
	"goldbach":           {calls: []call{{toolID: "ntp.goldbach"}}, params: []string{"n"}},
	"pythagTriples":      {calls: []call{{toolID: "ntp.pythagoreanTriples"}}, params: []string{"n"}},
	"twoSquare":          {calls: []call{{toolID: "ntp.twoSquare"}}, params: []string{"n"}},
	"gcdAndLcm": {
		calls:  []call{{toolID: "ntp.euclid", key: "euclidean_info"}, {toolID: "ntp.gcdLcm", key: "pf_info"}},
		params: []string{"a", "b"},
	},
	"fibonacciLike": {calls: []call{{toolID: "ntp.fibonacciLike"}}, params: []string{"first", "second"}},
	"doubling":      {calls: []call{{toolID: "ntp.doubling"}}, params: []string{"a", "b"}},
}

// sectionAliases are the names the web front end sends
var sectionAliases = map[string]string{
	"fiboSeq":   "fibonacciLike",
	"egyptMult": "doubling",
}

func lookupSection(name string) (string, section, bool) {
	if canonical, ok := sectionAliases[name]; ok {
		name = canonical
	}
	sec, ok := sections[name]
	return name, sec, ok
}

// SectionNames lists the /calculations sections in order
func SectionNames() []string {
	names := make([]string, 0, len(sections))
	for name := range sections {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Calculations handles GET /calculations?section=...&number=... (or
// firstNumber/secondNumber). Any unknown section, unparsable number or
// out-of-range input is a 404 with no body detail beyond the reason.
func (h *Handlers) Calculations(c *gin.Context) {
	_, sec, ok := lookupSection(c.Query("section"))
	if !ok {
		notFound(c, "unknown section")
		return
	}

	queryKeys := []string{"number"}
	if len(sec.params) == 2 {
		queryKeys = []string{"firstNumber", "secondNumber"}
	}

	params := map[string]interface{}{"explain": c.DefaultQuery("explain", "true") != "false"}
	for i, key := range queryKeys {
		n, ok := ParseQueryInteger(c.Query(key))
		if !ok {
			notFound(c, key+" must be a safe integer")
			return
		}
		params[sec.params[i]] = n
	}

	appCtx := h.appContext(c)
	results := make(map[string]interface{}, len(sec.calls))
	var single *types.Result
	for _, call := range sec.calls {
		result, err := h.registry.Execute(c.Request.Context(), call.toolID, params, appCtx)
		if err != nil {
			h.internalError(c, err)
			return
		}
		if !result.Success {
			notFound(c, *result.Error)
			return
		}
		if call.key == "" {
			single = result
			continue
		}
		results[call.key] = result.Data
	}

	if single != nil {
		c.JSON(http.StatusOK, single.Data)
		return
	}
	c.JSON(http.StatusOK, results)
}

// RandomNumber handles GET /randomNumber/section/:section with a uniformly
// random input that every tool behind the section accepts.
func (h *Handlers) RandomNumber(c *gin.Context) {
	name, sec, ok := lookupSection(c.Param("section"))
	if !ok {
		notFound(c, "unknown section")
		return
	}

	lo, hi, ok := h.inputRange(sec)
	if name == "goldbach" {
		// Goldbach takes even numbers only
		lo += lo % 2
		hi -= hi % 2
	}
	if !ok || lo > hi {
		notFound(c, "section has no valid input")
		return
	}

	n := lo + rand.Int64N(hi-lo+1)
	if name == "goldbach" && n%2 == 1 {
		n--
	}
	c.String(http.StatusOK, strconv.FormatInt(n, 10))
}

// inputRange intersects the advertised ranges of the section's first
// parameter across its tools, so configured limits are honoured.
func (h *Handlers) inputRange(sec section) (int64, int64, bool) {
	lo, hi := int64(math.MinInt64), int64(math.MaxInt64)
	found := false
	for _, call := range sec.calls {
		tool, ok := h.registry.Tool(call.toolID)
		if !ok {
			return 0, 0, false
		}
		for _, p := range tool.Parameters {
			if p.Name != sec.params[0] || p.Min == nil || p.Max == nil {
				continue
			}
			lo, hi = max(lo, *p.Min), min(hi, *p.Max)
			found = true
		}
	}
	return lo, hi, found
}

// ParseQueryInteger parses a decimal or exponent form number that must be an
// exact integer within ±(2^53 − 1)
func ParseQueryInteger(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return n, n >= -numtheory.MaxSafeInteger && n <= numtheory.MaxSafeInteger
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > float64(numtheory.MaxSafeInteger) {
		return 0, false
	}
	return int64(f), true
}

func notFound(c *gin.Context, reason string) {
	c.JSON(http.StatusNotFound, gin.H{"error": reason})
}
