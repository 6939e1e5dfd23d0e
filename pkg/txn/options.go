package txn

// Isolation is a requested transaction isolation level.
//
// Backends support different subsets of levels. A backend must reject
// a level it cannot provide instead of silently downgrading it.
type Isolation int

const (
	// DefaultIsolation leaves the choice to the backend.
	DefaultIsolation Isolation = iota

	ReadUncommitted
	ReadCommitted

	// WriteCommitted additionally requires writes to be acknowledged
	// as durable before commit returns.
	WriteCommitted

	RepeatableRead
	Snapshot
	Serializable

	// Linearizable orders transactions consistently with real time.
	Linearizable
)

var isolationNames = map[Isolation]string{
	DefaultIsolation: "default",
	ReadUncommitted:  "read uncommitted",
	ReadCommitted:    "read committed",
	WriteCommitted:   "write committed",
	RepeatableRead:   "repeatable read",
	Snapshot:         "snapshot",
	Serializable:     "serializable",
	Linearizable:     "linearizable",
}

func (i Isolation) String() string {
	name, ok := isolationNames[i]
	if !ok {
		return "unknown"
	}
	return name
}

// Options configure a transaction at open time. The zero value
// requests backend defaults.
type Options struct {
	Isolation Isolation
	ReadOnly  bool
}

// NoOptions states explicitly that the caller has no preferences.
var NoOptions Options
