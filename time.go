package heredity

import (
	"fmt"
	"time"
)

// Time exists to facilitate time parsing from the metadata table, because
// pedigree databases in the wild store creation times both as unixtime and as
// text strings.
type Time time.Time

func (t *Time) Scan(v interface{}) error {
	switch which := v.(type) {
	case nil:
		*t = Time{}
		return nil
	case int64:
		*t = Time(time.Unix(which, 0))
		return nil
	case int:
		*t = Time(time.Unix(int64(which), 0))
		return nil
	case []byte:
		vt, err := time.Parse("2006-01-02 15:04:05", string(which))
		if err != nil {
			return err
		}
		*t = Time(vt)
		return nil
	}

	return fmt.Errorf("no appropriate type could be found to decode %v", v)
}
