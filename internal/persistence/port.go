// Package persistence holds the durable custom-item library port and its
// backends. Payloads are opaque to this package: JSON-serialized item arrays
// keyed by library name.
package persistence

// Library keys for the two durable custom-item pools
const (
	KeyCustomMeals    = "custom-meals"
	KeyCustomWorkouts = "custom-workouts"
)

// Port is the save/load contract for serialized item libraries. Load reports
// absence through ok=false; callers treat absent or unreadable data as an
// empty library.
type Port interface {
	Load(key string) (payload []byte, ok bool, err error)
	Save(key string, payload []byte) error
}
