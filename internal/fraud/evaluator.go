package fraud

// AlertCeiling is the absolute amount above which a transaction is always
// considered suspicious, regardless of the configured limit
const AlertCeiling float64 = 25000

// Evaluator decides whether a transaction amount must trigger an alert
type Evaluator struct {
	limit float64
}

// NewEvaluator builds Evaluator for the given transaction limit
func NewEvaluator(limit float64) *Evaluator {
	return &Evaluator{limit: limit}
}

// Suspicious reports whether amount exceeds the suspicion threshold. Both
// comparisons are strict: an amount exactly at the ceiling or at five times
// the limit is not flagged.
func (e *Evaluator) Suspicious(amount float64) bool {
	return amount > AlertCeiling || amount > e.limit*5
}

// Limit returns the configured transaction limit
func (e *Evaluator) Limit() float64 {
	return e.limit
}
