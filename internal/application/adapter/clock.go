// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock abstracts wall-clock access so classification and aggregation are
// testable without time dependence.
type Clock interface {
	Now() time.Time
}
