package circuit

import (
	"bytes"
	"encoding/json"
	"math"
)

// Result is an insertion-ordered mapping from quantity name to value.
// A key may be present without a value, meaning the quantity could not
// be determined from the inputs. Solvers build a Result once and return
// it; it is never mutated afterwards.
type Result struct {
	keys []string
	seen map[string]bool
	vals map[string]float64
}

func NewResult() *Result {
	return &Result{
		seen: make(map[string]bool),
		vals: make(map[string]float64),
	}
}

func (r *Result) addKey(key string) {
	if !r.seen[key] {
		r.seen[key] = true
		r.keys = append(r.keys, key)
	}
}

// Set records a determined value for key.
func (r *Result) Set(key string, value float64) {
	r.addKey(key)
	r.vals[key] = value
}

// SetNull records key with no determined value.
func (r *Result) SetNull(key string) {
	r.addKey(key)
	delete(r.vals, key)
}

// SetOpt records value when non-nil, otherwise a null entry.
func (r *Result) SetOpt(key string, value *float64) {
	if value != nil {
		r.Set(key, *value)
		return
	}
	r.SetNull(key)
}

// Get returns the value for key. ok is false when the key is absent or
// holds no determined value.
func (r *Result) Get(key string) (value float64, ok bool) {
	value, ok = r.vals[key]
	return value, ok
}

// Keys returns the quantity names in insertion order.
func (r *Result) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}

// MarshalJSON renders the result as a single ordered JSON object.
// Undetermined quantities become null; IEEE infinities, which JSON
// numbers cannot carry, become the strings "Infinity" and "-Infinity".
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		v, ok := r.vals[key]
		switch {
		case !ok:
			buf.WriteString("null")
		case math.IsInf(v, 1):
			buf.WriteString(`"Infinity"`)
		case math.IsInf(v, -1):
			buf.WriteString(`"-Infinity"`)
		default:
			vb, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			buf.Write(vb)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
