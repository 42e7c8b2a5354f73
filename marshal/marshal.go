package marshal

import (
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"vwire/wire"
)

const tagName = "vici"

// Marshal converts v into a wire section. v must be a struct, a
// string-keyed map, or a pointer to either.
func Marshal(v interface{}) (*wire.Section, error) {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return nil, errors.New("cannot marshal nil")
	}
	return marshalSection(rv)
}

// MarshalMessage converts v into a wire section and encodes it.
func MarshalMessage(v interface{}) ([]byte, error) {
	sec, err := Marshal(v)
	if err != nil {
		return nil, err
	}
	return wire.EncodeToBytes(sec)
}

func marshalSection(rv reflect.Value) (*wire.Section, error) {
	sec := wire.NewSection()
	switch rv.Kind() {
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			name, omitEmpty, skip := fieldName(f)
			if skip {
				continue
			}
			fv := rv.Field(i)
			if omitEmpty && isEmptyValue(fv) {
				continue
			}
			val, err := marshalValue(fv)
			if err != nil {
				return nil, errors.WithMessage(err, "field "+f.Name)
			}
			sec.Set(name, val)
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, errors.Errorf("cannot marshal map with %s keys", rv.Type().Key())
		}
		// Map iteration order is undefined; sort keys so output is
		// deterministic.
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		for _, k := range keys {
			kv := reflect.ValueOf(k).Convert(rv.Type().Key())
			val, err := marshalValue(rv.MapIndex(kv))
			if err != nil {
				return nil, errors.WithMessage(err, "key "+k)
			}
			sec.Set(k, val)
		}
	default:
		return nil, errors.Errorf("cannot marshal %s into a section", rv.Type())
	}
	return sec, nil
}

func marshalValue(rv reflect.Value) (wire.Value, error) {
	rv = indirect(rv)
	if !rv.IsValid() {
		return wire.Scalar(nil), nil
	}
	switch rv.Kind() {
	case reflect.Struct, reflect.Map:
		return marshalSection(rv)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return wire.Scalar(rv.Bytes()), nil
		}
		return marshalSlice(rv)
	case reflect.Array:
		return marshalSlice(rv)
	default:
		return marshalScalar(rv)
	}
}

func marshalSlice(rv reflect.Value) (wire.Value, error) {
	// Sections cannot appear inside wire lists, so a slice of records
	// becomes a section of numbered subsections instead. The element
	// values decide which form applies, so []interface{} works too.
	if sliceOfRecords(rv) {
		sec := wire.NewSection()
		for i := 0; i < rv.Len(); i++ {
			sub, err := marshalValue(rv.Index(i))
			if err != nil {
				return nil, errors.WithMessage(err, "element "+strconv.Itoa(i))
			}
			sec.Set(strconv.Itoa(i), sub)
		}
		return sec, nil
	}

	list := make(wire.List, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := indirect(rv.Index(i))
		if !item.IsValid() {
			list = append(list, wire.Scalar(nil))
			continue
		}
		s, err := marshalScalar(item)
		if err != nil {
			return nil, errors.WithMessage(err, "element "+strconv.Itoa(i))
		}
		list = append(list, s)
	}
	return list, nil
}

func sliceOfRecords(rv reflect.Value) bool {
	elem := rv.Type().Elem()
	for elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	if elem.Kind() == reflect.Struct || elem.Kind() == reflect.Map {
		return true
	}
	if elem.Kind() != reflect.Interface {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		item := indirect(rv.Index(i))
		if item.IsValid() {
			return item.Kind() == reflect.Struct || item.Kind() == reflect.Map
		}
	}
	return false
}

func marshalScalar(rv reflect.Value) (wire.Scalar, error) {
	switch rv.Kind() {
	case reflect.String:
		return wire.Scalar(rv.String()), nil
	case reflect.Bool:
		if rv.Bool() {
			return wire.Scalar("yes"), nil
		}
		return wire.Scalar("no"), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return wire.Scalar(strconv.FormatInt(rv.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return wire.Scalar(strconv.FormatUint(rv.Uint(), 10)), nil
	case reflect.Float32:
		return wire.Scalar(strconv.FormatFloat(rv.Float(), 'g', -1, 32)), nil
	case reflect.Float64:
		return wire.Scalar(strconv.FormatFloat(rv.Float(), 'g', -1, 64)), nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return wire.Scalar(rv.Bytes()), nil
		}
	}
	return nil, errors.Errorf("cannot marshal %s as a scalar value", rv.Type())
}

func fieldName(f reflect.StructField) (name string, omitEmpty, skip bool) {
	tag := f.Tag.Get(tagName)
	if tag == "-" {
		return "", false, true
	}
	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = strings.ToLower(f.Name)
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}

func isEmptyValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// indirect walks through pointers and interfaces. A nil pointer or
// interface yields an invalid Value.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}
