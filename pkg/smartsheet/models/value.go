// Package models defines the entities exchanged with the Smartsheet API.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Kind identifies which variant of a CellValue is active.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindText
	KindBoolean
	KindNumeric
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindBoolean:
		return "Boolean"
	case KindNumeric:
		return "Numeric"
	default:
		return "Invalid"
	}
}

// CellValue represents the raw `value` of a cell: one of a string, a
// boolean or a number, depending on the column type and the data in the
// cell. On the wire it is always the bare JSON primitive.
//
// Numbers keep the textual representation they were decoded or built
// with, so integers and decimals round-trip unchanged.
type CellValue struct {
	kind    Kind
	text    string
	boolean bool
	number  json.Number
}

// Valuer is implemented by types that have a canonical cell value, such
// as the symbol vocabularies LightPicker and Decision.
type Valuer interface {
	CellValue() CellValue
}

// TextValue returns a Text cell value.
func TextValue(s string) CellValue {
	return CellValue{kind: KindText, text: s}
}

// BoolValue returns a Boolean cell value.
func BoolValue(b bool) CellValue {
	return CellValue{kind: KindBoolean, boolean: b}
}

// IntValue returns a Numeric cell value for a signed integer.
func IntValue(i int64) CellValue {
	return CellValue{kind: KindNumeric, number: json.Number(strconv.FormatInt(i, 10))}
}

// UintValue returns a Numeric cell value for an unsigned integer.
func UintValue(u uint64) CellValue {
	return CellValue{kind: KindNumeric, number: json.Number(strconv.FormatUint(u, 10))}
}

// FloatValue returns a Numeric cell value for a float. NaN and infinite
// values have no JSON representation and are rejected.
func FloatValue(f float64) (CellValue, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return CellValue{}, fmt.Errorf("%w: non-finite number %v", ErrInvalidValue, f)
	}
	return CellValue{kind: KindNumeric, number: json.Number(strconv.FormatFloat(f, 'g', -1, 64))}, nil
}

// NumberValue returns a Numeric cell value from a JSON number literal.
// Anything outside the JSON number grammar, such as fractions, base
// prefixes or surrounding space, is rejected.
func NumberValue(n json.Number) (CellValue, error) {
	if !isJSONNumber(n.String()) {
		return CellValue{}, fmt.Errorf("%w: malformed number %q", ErrInvalidValue, n)
	}
	return CellValue{kind: KindNumeric, number: n}, nil
}

func isJSONNumber(s string) bool {
	if !json.Valid([]byte(s)) {
		return false
	}
	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return false
	}
	num, ok := tok.(json.Number)
	return ok && num.String() == s
}

// ValueOf converts a native Go value into the matching CellValue variant.
func ValueOf(v any) (CellValue, error) {
	switch x := v.(type) {
	case CellValue:
		if x.kind == KindInvalid {
			return CellValue{}, fmt.Errorf("%w: zero CellValue", ErrInvalidValue)
		}
		return x, nil
	case Valuer:
		return x.CellValue(), nil
	case string:
		return TextValue(x), nil
	case bool:
		return BoolValue(x), nil
	case int:
		return IntValue(int64(x)), nil
	case int8:
		return IntValue(int64(x)), nil
	case int16:
		return IntValue(int64(x)), nil
	case int32:
		return IntValue(int64(x)), nil
	case int64:
		return IntValue(x), nil
	case uint:
		return UintValue(uint64(x)), nil
	case uint8:
		return UintValue(uint64(x)), nil
	case uint16:
		return UintValue(uint64(x)), nil
	case uint32:
		return UintValue(uint64(x)), nil
	case uint64:
		return UintValue(x), nil
	case float32:
		return FloatValue(float64(x))
	case float64:
		return FloatValue(x)
	case json.Number:
		return NumberValue(x)
	default:
		return CellValue{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

// Kind returns the active variant.
func (v CellValue) Kind() Kind {
	return v.kind
}

// IsZero reports whether v holds no variant at all.
func (v CellValue) IsZero() bool {
	return v.kind == KindInvalid
}

// Text returns the text payload, if v is a Text value.
func (v CellValue) Text() (string, bool) {
	return v.text, v.kind == KindText
}

// Bool returns the boolean payload, if v is a Boolean value.
func (v CellValue) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// Number returns the numeric payload, if v is a Numeric value.
func (v CellValue) Number() (json.Number, bool) {
	return v.number, v.kind == KindNumeric
}

// AsText returns the text payload or a ValueTypeError.
func (v CellValue) AsText() (string, error) {
	if v.kind != KindText {
		return "", v.mismatch(KindText)
	}
	return v.text, nil
}

// AsBool returns the boolean payload or a ValueTypeError.
func (v CellValue) AsBool() (bool, error) {
	if v.kind != KindBoolean {
		return false, v.mismatch(KindBoolean)
	}
	return v.boolean, nil
}

// AsNumber returns the numeric payload or a ValueTypeError.
func (v CellValue) AsNumber() (json.Number, error) {
	if v.kind != KindNumeric {
		return "", v.mismatch(KindNumeric)
	}
	return v.number, nil
}

// AsUint64 returns the numeric payload as an unsigned integer. Decimals,
// negatives and out-of-range numbers fail.
func (v CellValue) AsUint64() (uint64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	u, err := strconv.ParseUint(n.String(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an unsigned integer", ErrValueType, n)
	}
	return u, nil
}

// AsInt64 returns the numeric payload as a signed integer.
func (v CellValue) AsInt64() (int64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	i, err := n.Int64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrValueType, n)
	}
	return i, nil
}

// AsFloat64 returns the numeric payload as a float.
func (v CellValue) AsFloat64() (float64, error) {
	n, err := v.AsNumber()
	if err != nil {
		return 0, err
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%w: %s is not representable as float64", ErrValueType, n)
	}
	return f, nil
}

// Interface returns the payload as a plain Go value: string, bool, int64,
// uint64 or float64. It returns nil for the zero CellValue.
func (v CellValue) Interface() any {
	switch v.kind {
	case KindText:
		return v.text
	case KindBoolean:
		return v.boolean
	case KindNumeric:
		if i, err := v.number.Int64(); err == nil {
			return i
		}
		if u, err := strconv.ParseUint(v.number.String(), 10, 64); err == nil {
			return u
		}
		f, _ := v.number.Float64()
		return f
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same variant and payload.
// Numbers compare by numeric value, so 90 equals 90.0.
func (v CellValue) Equal(o CellValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindBoolean:
		return v.boolean == o.boolean
	case KindNumeric:
		if v.number == o.number {
			return true
		}
		a, okA := new(big.Rat).SetString(v.number.String())
		b, okB := new(big.Rat).SetString(o.number.String())
		return okA && okB && a.Cmp(b) == 0
	default:
		return true
	}
}

// String renders the payload the way it would appear in a sheet.
func (v CellValue) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindNumeric:
		return v.number.String()
	default:
		return ""
	}
}

// MarshalJSON emits the bare primitive.
func (v CellValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindBoolean:
		return json.Marshal(v.boolean)
	case KindNumeric:
		return []byte(v.number), nil
	default:
		return nil, fmt.Errorf("%w: cannot encode zero CellValue", ErrInvalidValue)
	}
}

// UnmarshalJSON infers the variant from the JSON primitive type: string,
// then boolean, then number. Arrays, objects and null are rejected.
func (v *CellValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode cell value: %w", err)
	}
	switch t := tok.(type) {
	case string:
		*v = TextValue(t)
	case bool:
		*v = BoolValue(t)
	case json.Number:
		*v = CellValue{kind: KindNumeric, number: t}
	case nil:
		return fmt.Errorf("%w: null is not a cell value", ErrInvalidValue)
	default:
		return fmt.Errorf("%w: unexpected JSON %v for cell value", ErrInvalidValue, t)
	}
	return nil
}

func (v CellValue) mismatch(want Kind) error {
	return &ValueTypeError{Want: want, Got: v.kind}
}

// GobEncode uses the JSON encoding so snapshots keep the variant.
func (v CellValue) GobEncode() ([]byte, error) {
	return v.MarshalJSON()
}

// GobDecode restores a value written by GobEncode.
func (v *CellValue) GobDecode(data []byte) error {
	return v.UnmarshalJSON(data)
}
