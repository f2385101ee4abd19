package session

// Variant is the tri-state property value used by GetProperty/SetProperty,
// grounded on original_source/src/Variant.h: a property is either absent,
// a bool, or an unsigned integer — never both at once.
type Variant struct {
	kind    variantKind
	boolean bool
	u32     uint32
}

type variantKind int

const (
	variantNull variantKind = iota
	variantBool
	variantUint
)

// NullVariant is the zero value, returned for unknown property names.
func NullVariant() Variant { return Variant{kind: variantNull} }

// BoolVariant wraps a bool-valued property.
func BoolVariant(b bool) Variant { return Variant{kind: variantBool, boolean: b} }

// UintVariant wraps an unsigned-integer-valued property (conversion option
// bitsets, schema indices).
func UintVariant(v uint32) Variant { return Variant{kind: variantUint, u32: v} }

func (v Variant) IsNull() bool { return v.kind == variantNull }
func (v Variant) IsBool() bool { return v.kind == variantBool }
func (v Variant) IsUint() bool { return v.kind == variantUint }

// Bool returns the wrapped bool, or false if this Variant isn't a bool.
func (v Variant) Bool() bool { return v.boolean }

// Uint returns the wrapped uint32, or 0 if this Variant isn't a uint.
func (v Variant) Uint() uint32 { return v.u32 }
