package kernel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/valyala/fasttemplate"
)

// ValueObject is implemented by immutable types whose equality, hash and
// canonical string form are derived from their declared attributes.
//
// A type declares its attributes once, in Fields, and gets Equal, Hash and
// String from this package:
//
//	func (a Address) TypeName() string { return "Address" }
//
//	func (a Address) Fields() []Field {
//	    return []Field{
//	        StringField("street", a.street),
//	        StringField("building", a.building),
//	    }
//	}
//
//	func (a Address) Equal(other Address) bool { return Equal(a, other) }
//
// Fields must return the attributes in the same order on every call.
type ValueObject interface {
	TypeName() string
	Fields() []Field
}

// validatable is implemented by value objects that can be absent (zero value).
type validatable interface {
	Validate() error
}

// Field is a single named attribute of a value object.
// The value is one of string, int or ValueObject; nil means unset.
type Field struct {
	name  string
	value any
}

// StringField declares a string attribute. The empty string is a set value.
func StringField(name string, value string) Field {
	return Field{name: name, value: value}
}

// IntField declares an integer attribute.
func IntField(name string, value int) Field {
	return Field{name: name, value: value}
}

// OptionalStringField declares a string attribute that may be unset (nil).
func OptionalStringField(name string, value *string) Field {
	if value == nil {
		return Field{name: name}
	}
	return Field{name: name, value: *value}
}

// ValueField declares a nested value object attribute. A nil or not
// constructed value object is unset.
func ValueField(name string, value ValueObject) Field {
	if isAbsent(value) {
		return Field{name: name}
	}
	return Field{name: name, value: value}
}

// Name returns the attribute name.
func (f Field) Name() string {
	return f.name
}

// String renders the attribute value. Unset attributes render as an empty string.
func (f Field) String() string {
	switch v := f.value.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case ValueObject:
		// Nested value objects keep their own rendering when they have one.
		if s, ok := v.(fmt.Stringer); ok {
			return s.String()
		}
		return String(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

func (f Field) equal(other Field) bool {
	if f.name != other.name {
		return false
	}
	if f.value == nil || other.value == nil {
		return f.value == nil && other.value == nil
	}

	if left, ok := f.value.(ValueObject); ok {
		right, ok := other.value.(ValueObject)
		return ok && Equal(left, right)
	}

	return f.value == other.value
}

func (f Field) hash() uint64 {
	switch v := f.value.(type) {
	case nil:
		return 0
	case string:
		return xxhash.Sum64String(v)
	case int:
		return xxhash.Sum64String(strconv.Itoa(v))
	case ValueObject:
		return Hash(v)
	default:
		return xxhash.Sum64String(fmt.Sprint(v))
	}
}

// Equal reports whether a and b have the same type name and pairwise equal
// attributes. Two unset attributes are equal; unset and set are not.
// An absent counterpart (nil or not constructed) is never equal to anything.
func Equal(a, b ValueObject) bool {
	if isAbsent(a) || isAbsent(b) {
		return false
	}
	if a.TypeName() != b.TypeName() {
		return false
	}

	left, right := a.Fields(), b.Fields()
	if len(left) != len(right) {
		return false
	}

	for i := range left {
		if !left[i].equal(right[i]) {
			return false
		}
	}

	return true
}

const (
	hashSeed       uint64 = 354564456
	hashMultiplier uint64 = 0x9e3779b97f4a7c15
)

// Hash combines the attribute hashes in declaration order.
// Equal value objects always have equal hashes. Absent value objects hash to 0.
func Hash(v ValueObject) uint64 {
	if isAbsent(v) {
		return 0
	}

	h := hashSeed ^ xxhash.Sum64String(v.TypeName())
	for _, field := range v.Fields() {
		h ^= (h << 4) + field.hash() + (h >> 7)
	}

	return hashMultiplier * (hashMultiplier * h)
}

// String renders v as "TypeName(a: 1; b: 2)" with attributes sorted by name.
func String(v ValueObject) string {
	if isAbsent(v) {
		return ""
	}

	fields := v.Fields()
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].name < fields[j].name
	})

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field.name+": "+field.String())
	}

	return v.TypeName() + "(" + strings.Join(parts, "; ") + ")"
}

// Format substitutes {name} placeholders in layout with the matching attribute
// values. Placeholders without a matching attribute are kept as is, and
// substituted values are never scanned for placeholders again.
//
// Example:
//
//	Format("{firstName} {lastName}", name.Fields()...) // "Anna Smith"
func Format(layout string, fields ...Field) string {
	values := make(map[string]any, len(fields))
	for _, field := range fields {
		values[field.name] = field.String()
	}

	return fasttemplate.ExecuteStringStd(layout, "{", "}", values)
}

func isAbsent(v ValueObject) bool {
	if v == nil {
		return true
	}
	if vv, ok := v.(validatable); ok && vv.Validate() != nil {
		return true
	}
	return false
}
