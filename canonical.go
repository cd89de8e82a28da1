package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canonicaler is implemented by values that supply their own canonical JSON
// form. The returned value is encoded in place of the original.
type Canonicaler interface {
	CanonicalJSON() interface{}
}

type nonSerializable struct{}

// NonSerializable marks a value that has no JSON representation. Inside an
// array it encodes as null so element positions are preserved; as an object
// member value the whole member is dropped. The asymmetry is deliberate and
// must match the producer of the backup records exactly.
var NonSerializable = nonSerializable{}

// EncodeCanonical renders a JSON-like value as canonical JSON text: no
// whitespace, object members sorted by code point, shortest round-trip
// number form. Two structurally equal values always produce byte-identical
// output, which is what makes the backup checksum stable.
func EncodeCanonical(value interface{}) (string, error) {
	var b strings.Builder
	if err := appendCanonical(&b, value); err != nil {
		return "", err
	}
	return b.String(), nil
}

func appendCanonical(b *strings.Builder, value interface{}) error {
	if c, ok := value.(Canonicaler); ok {
		return appendCanonical(b, c.CanonicalJSON())
	}
	switch v := value.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		if v {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case string:
		appendEscapedString(b, v)
	case float64:
		s, err := formatNumber(v)
		if err != nil {
			return err
		}
		b.WriteString(s)
	case int:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case []interface{}:
		b.WriteByte('[')
		for i, elem := range v {
			if i > 0 {
				b.WriteByte(',')
			}
			if _, skip := elem.(nonSerializable); skip {
				// position-preserving: the element becomes null
				b.WriteString("null")
				continue
			}
			if err := appendCanonical(b, elem); err != nil {
				return err
			}
		}
		b.WriteByte(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			if _, skip := v[k].(nonSerializable); skip {
				// omission-tolerant: the member disappears entirely
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			appendEscapedString(b, k)
			b.WriteByte(':')
			if err := appendCanonical(b, v[k]); err != nil {
				return err
			}
		}
		b.WriteByte('}')
	case nonSerializable:
		return fmt.Errorf("%w: bare non-serializable value", ErrInvalidValue)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, value)
	}
	return nil
}

// formatNumber renders a float the way ECMAScript ToString does, which is
// what the canonical form requires: shortest round-trip digits, positional
// notation for magnitudes in [1e-6, 1e21), no zero padding in exponents.
func formatNumber(f float64) (string, error) {
	if math.IsNaN(f) {
		return "", fmt.Errorf("%w: NaN", ErrInvalidValue)
	}
	if math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: infinity", ErrInvalidValue)
	}
	if f == 0 {
		// covers negative zero as well
		return "0", nil
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	// Go pads the exponent to two digits ("1e-07"), ECMAScript does not
	i := strings.IndexByte(s, 'e')
	mantissa, exp := s[:i], s[i+1:]
	sign := ""
	if exp[0] == '+' || exp[0] == '-' {
		sign, exp = string(exp[0]), exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	return mantissa + "e" + sign + exp, nil
}

func appendEscapedString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
