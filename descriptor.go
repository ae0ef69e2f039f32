package iinject

// Descriptor is the fully resolved set of load parameters for one asset.
// A descriptor built by Resolve carries at most one Dependency, and that
// dependency never has one of its own.
type Descriptor struct {
	Name            string // lower-cased logical name
	Src             string // URL; empty for InlineScript
	Method          Method
	ExistsSymbol    string // global probed before injecting; empty means always inject
	InHead          bool
	Inline          string // script body for InlineScript
	DependentSymbol string
	OnLoad          func()
	OnError         func(error)
	Dependency      *Descriptor
}

// Target returns where the descriptor's element is appended.
func (d *Descriptor) Target() Target {
	if d.InHead {
		return Head
	}
	return Body
}

// Status is the outcome of executing one descriptor.
type Status int

const (
	// StatusInjected means the element was appended.
	StatusInjected Status = iota
	// StatusPresent means the existence probe found the asset; nothing was appended.
	StatusPresent
)

// String returns a lower-case label.
func (s Status) String() string {
	if s == StatusPresent {
		return "present"
	}
	return "injected"
}

// Outcome records what Execute did for one descriptor.
type Outcome struct {
	Name   string
	Src    string
	Method Method
	Status Status
}

// Result lists outcomes in execution order, dependency first.
type Result struct {
	Outcomes []Outcome
}

func (r *Result) add(d *Descriptor, s Status) {
	r.Outcomes = append(r.Outcomes, Outcome{Name: d.Name, Src: d.Src, Method: d.Method, Status: s})
}

// Injected returns the names of the assets that were appended.
func (r *Result) Injected() []string {
	var names []string
	for _, o := range r.Outcomes {
		if o.Status == StatusInjected {
			names = append(names, o.Name)
		}
	}
	return names
}
