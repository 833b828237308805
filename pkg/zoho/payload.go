package zoho

// writeOp selects which write a payload field participates in.
type writeOp uint8

const (
	opCreate writeOp = 1 << iota
	opUpdate

	opBoth = opCreate | opUpdate
)

// payloadField maps one canonical input value onto one vendor field.
//
// By default a field is sent on create when its value is truthy and on
// update when it is defined, so an update can clear a field with "" while
// a create never sends empties.
type payloadField[T any] struct {
	vendor  string
	value   func(T) interface{}
	wrap    func(interface{}) interface{}
	ops     writeOp
	defined bool
}

func field[T any](vendor string, value func(T) interface{}) payloadField[T] {
	return payloadField[T]{vendor: vendor, value: value, ops: opBoth}
}

func (f payloadField[T]) createOnly() payloadField[T] {
	f.ops = opCreate
	return f
}

func (f payloadField[T]) updateOnly() payloadField[T] {
	f.ops = opUpdate
	return f
}

// whenDefined sends the field on create even when it holds a zero value.
func (f payloadField[T]) whenDefined() payloadField[T] {
	f.defined = true
	return f
}

// asRef sends the value as a lookup object {"id": v}.
func (f payloadField[T]) asRef() payloadField[T] {
	f.wrap = func(v interface{}) interface{} {
		return map[string]interface{}{"id": v}
	}
	return f
}

func (f payloadField[T]) include(v interface{}, op writeOp) bool {
	if f.ops&op == 0 || v == nil {
		return false
	}
	if op == opUpdate || f.defined {
		return true
	}
	return truthy(v)
}

// buildPayload applies fields in order; a later field overwrites an
// earlier one with the same vendor name.
func buildPayload[T any](in T, fields []payloadField[T], op writeOp) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		v := f.value(in)
		if !f.include(v, op) {
			continue
		}
		if f.wrap != nil {
			v = f.wrap(v)
		}
		out[f.vendor] = v
	}
	return out
}

func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case int:
		return x != 0
	case float64:
		return x != 0
	}
	return true
}

// opt dereferences an optional input, yielding untyped nil when unset.
func opt[V any](p *V) interface{} {
	if p == nil {
		return nil
	}
	return *p
}

// first returns the first element of ids, or nil.
func first(ids []string) interface{} {
	if len(ids) == 0 {
		return nil
	}
	return ids[0]
}

// String returns a pointer to s, for optional input fields.
func String(s string) *string { return &s }

// Float returns a pointer to f, for optional input fields.
func Float(f float64) *float64 { return &f }

// Int returns a pointer to n, for optional input fields.
func Int(n int) *int { return &n }

// Bool returns a pointer to b, for optional input fields.
func Bool(b bool) *bool { return &b }
