package value

import "iter"

// Get returns the value stored under name.
func (r Record) Get(name string) (Value, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Has reports whether a field named name exists.
func (r Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Set stores v under name. An existing field keeps its position; a new
// field is appended.
func (r *Record) Set(name string, v Value) {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			r.Fields[i].Value = v
			return
		}
	}
	r.Fields = append(r.Fields, Field{Name: name, Value: v})
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.Fields)
}

// Columns returns the field names in insertion order.
func (r Record) Columns() []string {
	cols := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		cols[i] = f.Name
	}
	return cols
}

// All iterates the fields in insertion order.
func (r Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, f := range r.Fields {
			if !yield(f.Name, f.Value) {
				return
			}
		}
	}
}
