package numtheory

// DoublingRow pairs a power of two with the matching multiple of the larger
// input.
type DoublingRow struct {
	PowerOfTwo int64 `json:"power_of_two"`
	Multiple   int64 `json:"multiple"`
}

// DoublingTrace records multiplication by doubling. Rows holds every power
// of two up to Min; Selected holds the rows whose powers sum to Min, and
// whose multiples sum to Product.
type DoublingTrace struct {
	Min      int64         `json:"min"`
	Max      int64         `json:"max"`
	Rows     []DoublingRow `json:"rows"`
	Selected []DoublingRow `json:"selected"`
	Product  int64         `json:"product"`
}

// DoublingMultiply computes a*b using only doubling and addition: the
// binary decomposition of the smaller input picks which doublings of the
// larger input to add up.
func DoublingMultiply(a, b int64) (*DoublingTrace, error) {
	if err := checkRange("a", a, 2); err != nil {
		return nil, err
	}
	if err := checkRange("b", b, 2); err != nil {
		return nil, err
	}
	expected, ok := mulChecked(a, b)
	if !ok || expected > MaxSafeInteger {
		return nil, invalidf("product of %d and %d exceeds %d", a, b, MaxSafeInteger)
	}

	lo, hi := min(a, b), max(a, b)
	var rows []DoublingRow
	for power, multiple := int64(1), hi; power <= lo; power, multiple = power+power, multiple+multiple {
		rows = append(rows, DoublingRow{PowerOfTwo: power, Multiple: multiple})
	}

	var selected []DoublingRow
	remaining := lo
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].PowerOfTwo <= remaining {
			selected = append(selected, rows[i])
			remaining -= rows[i].PowerOfTwo
		}
	}
	for i, j := 0, len(selected)-1; i < j; i, j = i+1, j-1 {
		selected[i], selected[j] = selected[j], selected[i]
	}

	var product int64
	for _, row := range selected {
		product += row.Multiple
	}
	if remaining != 0 || product != expected {
		return nil, internalf("doubling multiplication of %d and %d gave %d, want %d", a, b, product, expected)
	}

	return &DoublingTrace{
		Min:      lo,
		Max:      hi,
		Rows:     rows,
		Selected: selected,
		Product:  product,
	}, nil
}
