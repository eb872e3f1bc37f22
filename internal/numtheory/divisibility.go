package numtheory

// RuleBasis names the quantity a divisibility rule was decided from.
type RuleBasis string

const (
	BasisLastDigit       RuleBasis = "last_digit"
	BasisDigitSum        RuleBasis = "digit_sum"
	BasisLastTwoDigits   RuleBasis = "last_two_digits"
	BasisLastThreeDigits RuleBasis = "last_three_digits"
	BasisCombination     RuleBasis = "combination"
)

// DivisibilityRule is the outcome of one digit-based divisibility check.
type DivisibilityRule struct {
	Divisor   int64     `json:"divisor"`
	Divisible bool      `json:"divisible"`
	Basis     RuleBasis `json:"basis"`
	// Value is the quantity the rule inspected (digit sum, last digits, ...).
	Value int64 `json:"value"`
}

// Divisor is a proper divisor together with its own factorization.
type Divisor struct {
	Value         int64          `json:"value"`
	Factorization *Factorization `json:"factorization"`
}

// DivisibilityReport explains the divisors of a number two ways: digit
// rules, and the divisor structure implied by its factorization.
type DivisibilityReport struct {
	Number   int64              `json:"number"`
	DigitSum int64              `json:"digit_sum"`
	Rules    []DivisibilityRule `json:"rules"`

	Factorization *Factorization `json:"factorization"`
	DivisorCount  int64          `json:"divisor_count"`
	// ProperDivisors excludes 1 and the number itself.
	ProperDivisors []Divisor `json:"proper_divisors"`
}

// Rule returns the rule for divisor d, if it was evaluated.
func (r *DivisibilityReport) Rule(d int64) (DivisibilityRule, bool) {
	for _, rule := range r.Rules {
		if rule.Divisor == d {
			return rule, true
		}
	}
	return DivisibilityRule{}, false
}

// Divisibility builds a DivisibilityReport for n >= 2.
func Divisibility(n int64) (*DivisibilityReport, error) {
	f, err := Factorize(n)
	if err != nil {
		return nil, err
	}

	report := &DivisibilityReport{
		Number:        n,
		DigitSum:      digitSum(n),
		Rules:         digitRules(n),
		Factorization: f,
		DivisorCount:  f.FactorCount(),
	}

	divisors := f.Divisors()
	for _, d := range divisors[1 : len(divisors)-1] {
		df, err := Factorize(d)
		if err != nil {
			return nil, err
		}
		report.ProperDivisors = append(report.ProperDivisors, Divisor{Value: d, Factorization: df})
	}
	return report, nil
}

// digitRules applies the schoolbook tests in the order they depend on each
// other: 9 needs 3, 6 needs 2 and 3, 8 and 12 need 4.
func digitRules(n int64) []DivisibilityRule {
	var rules []DivisibilityRule
	add := func(divisor int64, divisible bool, basis RuleBasis, value int64) {
		rules = append(rules, DivisibilityRule{Divisor: divisor, Divisible: divisible, Basis: basis, Value: value})
	}

	even := n%2 == 0
	add(2, even, BasisLastDigit, n%10)

	sum := digitSum(n)
	by3 := sum%3 == 0
	add(3, by3, BasisDigitSum, sum)
	if by3 {
		add(9, sum%9 == 0, BasisDigitSum, sum)
	}

	if !even {
		return rules
	}
	if by3 {
		add(6, true, BasisCombination, n)
	}

	lastTwo := n % 100
	by4 := lastTwo%4 == 0
	add(4, by4, BasisLastTwoDigits, lastTwo)
	if by4 {
		lastThree := n % 1000
		add(8, lastThree%8 == 0, BasisLastThreeDigits, lastThree)
		if by3 {
			add(12, true, BasisCombination, n)
		}
	}
	return rules
}

func digitSum(n int64) int64 {
	var sum int64
	for ; n > 0; n /= 10 {
		sum += n % 10
	}
	return sum
}
