package explain

import (
	"fmt"
	"strings"

	"github.com/GriffinCanCode/numbertheory/internal/numtheory"
)

// DivisibilityTricks narrates the digit rules of a report in the order they
// were evaluated.
func DivisibilityTricks(r *numtheory.DivisibilityReport) string {
	var sb strings.Builder
	n := Comma(r.Number)

	two, _ := r.Rule(2)
	if !two.Divisible {
		fmt.Fprintf(&sb, "%s is not even so it cannot be divisible by any even numbers. ", n)
	}

	sum := Comma(r.DigitSum)
	fmt.Fprintf(&sb, "The sum of the digits is %s. ", sum)
	three, _ := r.Rule(3)
	if three.Divisible {
		fmt.Fprintf(&sb, "%s is divisible by 3 so %s is divisible by 3. ", sum, n)
		if nine, ok := r.Rule(9); ok {
			fmt.Fprintf(&sb, "%s is %s by 9 so %s is %s by 9. ", sum, divisibleWord(nine.Divisible), n, divisibleWord(nine.Divisible))
		}
	} else {
		fmt.Fprintf(&sb, "%s is not divisible by 3 so %s is not divisible by 3. "+
			"This means that %s cannot be divisible by any multiples of 3. ", sum, n, n)
	}

	if !two.Divisible {
		return strings.TrimSpace(sb.String())
	}
	if _, ok := r.Rule(6); ok {
		fmt.Fprintf(&sb, "%s is even and divisible by 3 so it's also divisible by 6. ", n)
	}

	four, _ := r.Rule(4)
	fmt.Fprintf(&sb, "The last 2 digits are %d. ", four.Value)
	if !four.Divisible {
		fmt.Fprintf(&sb, "%d is not divisible by 4 so %s is not divisible by 4. "+
			"This means that %s cannot be divisible by any multiples of 4. ", four.Value, n, n)
		return strings.TrimSpace(sb.String())
	}
	fmt.Fprintf(&sb, "%d is divisible by 4 so %s is divisible by 4. ", four.Value, n)

	if eight, ok := r.Rule(8); ok {
		fmt.Fprintf(&sb, "The last 3 digits are %d. ", eight.Value)
		fmt.Fprintf(&sb, "%d is %s by 8 so %s is %s by 8. ", eight.Value, divisibleWord(eight.Divisible), n, divisibleWord(eight.Divisible))
	}
	if _, ok := r.Rule(12); ok {
		fmt.Fprintf(&sb, "%s is divisible by 3 and 4 so it's also divisible by 12. ", n)
	}
	return strings.TrimSpace(sb.String())
}

// DivisibilityFactors lists the proper divisors with their factorizations.
func DivisibilityFactors(r *numtheory.DivisibilityReport) []string {
	lines := []string{DivisorCount(r.Factorization)}
	for _, d := range r.ProperDivisors {
		lines = append(lines, FactorizationSentence(d.Factorization))
	}
	return lines
}

func divisibleWord(divisible bool) string {
	if divisible {
		return "divisible"
	}
	return "not divisible"
}
