package heredity

import (
	"database/sql/driver"
	"fmt"
)

// TraitObservation exists to facilitate scanning the nullable trait column,
// because SQLite hands back NULL, integers, or text depending on how the
// column was written. NULL means unobserved; 0 and 1 mean trait absent and
// present.
type TraitObservation struct {
	Observed bool
	Present  bool
}

func (t *TraitObservation) Scan(v interface{}) error {
	switch which := v.(type) {
	case nil:
		*t = TraitObservation{}
		return nil
	case bool:
		*t = TraitObservation{Observed: true, Present: which}
		return nil
	case int64:
		*t = TraitObservation{Observed: true, Present: which != 0}
		return nil
	case []byte:
		return t.scanText(string(which))
	case string:
		return t.scanText(which)
	}

	return fmt.Errorf("no appropriate type could be found to decode %v", v)
}

func (t *TraitObservation) scanText(s string) error {
	switch s {
	case "":
		*t = TraitObservation{}
	case "0":
		*t = TraitObservation{Observed: true}
	case "1":
		*t = TraitObservation{Observed: true, Present: true}
	default:
		return fmt.Errorf("trait must be blank, 0, or 1; got %q", s)
	}
	return nil
}

func (t TraitObservation) Value() (driver.Value, error) {
	if !t.Observed {
		return nil, nil
	}
	if t.Present {
		return int64(1), nil
	}
	return int64(0), nil
}

// Ptr converts the observation to the Person.Trait representation.
func (t TraitObservation) Ptr() *bool {
	if !t.Observed {
		return nil
	}
	present := t.Present
	return &present
}
