package ports

import "time"

// Clock is the time source animation runs are stamped with.
type Clock interface {
	Now() time.Time
}
