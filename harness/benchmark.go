package harness

// Benchmark is one payload: a fixed workload timing a single primitive.
type Benchmark struct {
	Name string
	Kind Kind
	Tags []string

	// WorkingSet is the approximate number of bytes the payload
	// allocates for its inputs and scratch space.
	WorkingSet uint64

	// Run sets up the input, times the primitive, sinks the result and
	// reports the elapsed time exactly once. A returned error is a fatal
	// diagnostic for the run and is printed verbatim.
	Run func(h *Context) error
}

// New builds a Benchmark, deriving its kind and tags from the name.
func New(name string, workingSet uint64, run func(h *Context) error) Benchmark {
	kind, tags := Classify(name)

	return Benchmark{
		Name:       name,
		Kind:       kind,
		Tags:       tags,
		WorkingSet: workingSet,
		Run:        run,
	}
}
