// Package builtins holds the declared arities of Arcana's built-in
// functions, consulted by the semantic validator (E0203) and by the
// emitter when routing a call through the host's own facilities. It is a
// static table; nothing in this package executes anything.
package builtins

// Arity describes how many arguments a builtin accepts. Variadic builtins
// set Min and leave Max at -1 (unbounded).
type Arity struct {
	Min int
	Max int // -1 means unbounded
}

// Accepts reports whether n arguments satisfy this Arity.
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	if a.Max >= 0 && n > a.Max {
		return false
	}
	return true
}

// HostName is the identifier the emitter lowers a builtin call to in the
// Python host. See internal/emitter.
var HostName = map[string]string{
	"indicant":  "print",
	"accipere":  "input",
	"longitudo": "len",
	"figura":    "type",
	"tempus":    "time.time",
	"chronos":   "time.perf_counter",
}

// Table maps each builtin's Arcana name to its declared arity.
var Table = map[string]Arity{
	// indicant is the structured-print facility; it is variadic and
	// accepts any number of arguments including zero.
	"indicant": {Min: 0, Max: -1},
	// accipere reads one line of input; no arguments.
	"accipere": {Min: 0, Max: 0},
	// longitudo returns the length of a string, ordinata, or catalogus.
	"longitudo": {Min: 1, Max: 1},
	// figura returns a type-inspection string for its argument.
	"figura": {Min: 1, Max: 1},
	// tempus returns the current wall-clock time.
	"tempus": {Min: 0, Max: 0},
	// chronos returns a monotonic clock reading, for measuring elapsed time.
	"chronos": {Min: 0, Max: 0},
}

// Lookup reports whether name is a builtin and returns its Arity.
func Lookup(name string) (Arity, bool) {
	a, ok := Table[name]
	return a, ok
}
