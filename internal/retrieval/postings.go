package retrieval

// postings is the set of document IDs filed under one key.
type postings map[string]struct{}

func (p postings) add(id string) { p[id] = struct{}{} }

func (p postings) has(id string) bool {
	_, ok := p[id]
	return ok
}

func (p postings) clone() postings {
	out := make(postings, len(p))
	for id := range p {
		out[id] = struct{}{}
	}
	return out
}

// intersect returns the IDs present in both sets. A nil set is empty.
func intersect(a, b postings) postings {
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(postings, len(a))
	for id := range a {
		if b.has(id) {
			out[id] = struct{}{}
		}
	}
	return out
}

// fieldIndex maps a normalized key to its postings.
type fieldIndex map[string]postings

func (f fieldIndex) add(key, id string) {
	p, ok := f[key]
	if !ok {
		p = make(postings)
		f[key] = p
	}
	p.add(id)
}

func (f fieldIndex) keys() []string {
	out := make([]string, 0, len(f))
	for k := range f {
		out = append(out, k)
	}
	return out
}
