package marshal

import (
	"reflect"
	"strconv"

	"github.com/pkg/errors"

	"vwire/wire"
)

// Unmarshal populates v from a wire section. v must be a non-nil
// pointer to a struct or a string-keyed map. Missing keys leave their
// fields at the zero value; keys with no matching field are ignored.
func Unmarshal(sec *wire.Section, v interface{}) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("can only unmarshal into a non-nil pointer")
	}
	elem := rv.Elem()
	switch elem.Kind() {
	case reflect.Struct:
		return unmarshalStruct(sec, elem)
	case reflect.Map:
		return unmarshalMap(sec, elem)
	default:
		return errors.Errorf("cannot unmarshal a section into %s", elem.Type())
	}
}

// UnmarshalMessage decodes a wire message and populates v from it.
func UnmarshalMessage(data []byte, v interface{}) error {
	sec, err := wire.DecodeBytes(data)
	if err != nil {
		return err
	}
	return Unmarshal(sec, v)
}

func unmarshalStruct(sec *wire.Section, rv reflect.Value) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue
		}
		name, _, skip := fieldName(f)
		if skip {
			continue
		}
		val, ok := sec.Get(name)
		if !ok {
			continue
		}
		if err := unmarshalValue(val, rv.Field(i), f.Name); err != nil {
			return err
		}
	}
	return nil
}

func unmarshalMap(sec *wire.Section, rv reflect.Value) error {
	t := rv.Type()
	if t.Key().Kind() != reflect.String {
		return errors.Errorf("cannot unmarshal into map with %s keys", t.Key())
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(t, sec.Len()))
	}
	for _, key := range sec.Keys() {
		val, _ := sec.Get(key)
		ev := reflect.New(t.Elem()).Elem()
		if err := unmarshalValue(val, ev, key); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(key).Convert(t.Key()), ev)
	}
	return nil
}

func unmarshalValue(val wire.Value, rv reflect.Value, field string) error {
	if rv.Kind() == reflect.Ptr {
		// An empty value stands for an absent optional; leave the
		// pointer nil.
		if s, ok := val.(wire.Scalar); ok && len(s) == 0 {
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		return unmarshalValue(val, rv.Elem(), field)
	}

	switch val := val.(type) {
	case wire.Scalar:
		return unmarshalScalar(val, rv, field)
	case *wire.Section:
		switch rv.Kind() {
		case reflect.Struct:
			return unmarshalStruct(val, rv)
		case reflect.Map:
			return unmarshalMap(val, rv)
		case reflect.Slice:
			return unmarshalNumbered(val, rv, field)
		default:
			return errors.Errorf("cannot unmarshal section into field %s of type %s", field, rv.Type())
		}
	case wire.List:
		if rv.Kind() != reflect.Slice {
			return errors.Errorf("cannot unmarshal list into field %s of type %s", field, rv.Type())
		}
		out := reflect.MakeSlice(rv.Type(), 0, len(val))
		for i, item := range val {
			ev := reflect.New(rv.Type().Elem()).Elem()
			if err := unmarshalValue(item, ev, field+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
			out = reflect.Append(out, ev)
		}
		rv.Set(out)
		return nil
	default:
		return errors.Errorf("unknown value shape %T for field %s", val, field)
	}
}

// unmarshalNumbered rebuilds a slice of records from the numbered
// subsection convention, in key order.
func unmarshalNumbered(sec *wire.Section, rv reflect.Value, field string) error {
	out := reflect.MakeSlice(rv.Type(), 0, sec.Len())
	for _, key := range sec.Keys() {
		val, _ := sec.Get(key)
		ev := reflect.New(rv.Type().Elem()).Elem()
		if err := unmarshalValue(val, ev, field+"."+key); err != nil {
			return err
		}
		out = reflect.Append(out, ev)
	}
	rv.Set(out)
	return nil
}

func unmarshalScalar(s wire.Scalar, rv reflect.Value, field string) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(string(s))
		return nil
	case reflect.Bool:
		switch string(s) {
		case "yes", "true":
			rv.SetBool(true)
		case "no", "false":
			rv.SetBool(false)
		default:
			return errors.Errorf("invalid boolean value %q for field %s", s, field)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(string(s), 10, rv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "invalid integer value for field %s", field)
		}
		rv.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(string(s), 10, rv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "invalid integer value for field %s", field)
		}
		rv.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(string(s), rv.Type().Bits())
		if err != nil {
			return errors.Wrapf(err, "invalid float value for field %s", field)
		}
		rv.SetFloat(f)
		return nil
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			buf := make([]byte, len(s))
			copy(buf, s)
			rv.SetBytes(buf)
			return nil
		}
	}
	return errors.Errorf("cannot unmarshal scalar into field %s of type %s", field, rv.Type())
}
