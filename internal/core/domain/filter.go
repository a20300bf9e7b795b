package domain

import "time"

// TransactionFilter captures the optional constraints a caller may put on a
// transaction query. Nil fields impose no restriction; supplied fields are
// combined with logical AND. Owner scoping is mandatory and carried
// separately, never through this struct.
type TransactionFilter struct {
	Kind     *TransactionKind
	Category *string
	DateFrom *time.Time // inclusive lower bound on OccurredOn
	DateTo   *time.Time // inclusive upper bound on OccurredOn
}

// IsEmpty reports whether no constraint beyond owner scoping is present.
func (f TransactionFilter) IsEmpty() bool {
	return f.Kind == nil && f.Category == nil && f.DateFrom == nil && f.DateTo == nil
}
