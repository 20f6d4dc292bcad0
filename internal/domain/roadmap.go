package domain

// Topic is a single learning unit inside a module. A topic is identified by
// its index within the owning module; titles are not unique.
type Topic struct {
	Title       string
	Description string
	Completed   bool
	Resources   []string
}

// Module groups an ordered list of topics. Duration is a free-form label
// ("2 weeks") and is never parsed.
type Module struct {
	Title       string
	Description string
	Duration    string
	Topics      []Topic
}

// Roadmap is the curriculum for one chosen career path. The module and topic
// sequences are fixed once the roadmap is built; only completion flags change.
type Roadmap struct {
	ChosenRole string
	Goal       string
	Modules    []Module
}

// TopicCount returns the total number of topics across all modules.
func (r *Roadmap) TopicCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, m := range r.Modules {
		n += len(m.Topics)
	}
	return n
}

// Clone returns a deep copy that shares no slices with r.
func (r *Roadmap) Clone() *Roadmap {
	if r == nil {
		return nil
	}
	out := &Roadmap{
		ChosenRole: r.ChosenRole,
		Goal:       r.Goal,
		Modules:    make([]Module, len(r.Modules)),
	}
	for i, m := range r.Modules {
		out.Modules[i] = m.clone()
	}
	return out
}

func (m Module) clone() Module {
	out := Module{
		Title:       m.Title,
		Description: m.Description,
		Duration:    m.Duration,
		Topics:      make([]Topic, len(m.Topics)),
	}
	for i, t := range m.Topics {
		out.Topics[i] = t.clone()
	}
	return out
}

func (t Topic) clone() Topic {
	res := make([]string, len(t.Resources))
	copy(res, t.Resources)
	t.Resources = res
	return t
}

// Equal reports structural equality. A nil and an empty resource list are
// considered equal.
func (r *Roadmap) Equal(other *Roadmap) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.ChosenRole != other.ChosenRole || r.Goal != other.Goal || len(r.Modules) != len(other.Modules) {
		return false
	}
	for i := range r.Modules {
		if !r.Modules[i].equal(other.Modules[i]) {
			return false
		}
	}
	return true
}

func (m Module) equal(o Module) bool {
	if m.Title != o.Title || m.Description != o.Description || m.Duration != o.Duration {
		return false
	}
	if len(m.Topics) != len(o.Topics) {
		return false
	}
	for i := range m.Topics {
		if !m.Topics[i].equal(o.Topics[i]) {
			return false
		}
	}
	return true
}

func (t Topic) equal(o Topic) bool {
	if t.Title != o.Title || t.Description != o.Description || t.Completed != o.Completed {
		return false
	}
	if len(t.Resources) != len(o.Resources) {
		return false
	}
	for i := range t.Resources {
		if t.Resources[i] != o.Resources[i] {
			return false
		}
	}
	return true
}
