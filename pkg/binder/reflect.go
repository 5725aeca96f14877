package binder

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// bindToStruct walks the exported fields of the struct v points to and sets
// each one from values. Binding failures wrap bindErr.
func bindToStruct(v any, tagName string, values map[string][]string, bindErr error) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: target must be a non-nil pointer", bindErr)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: target must be a pointer to struct", bindErr)
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		sf := rt.Field(i)
		if !field.CanSet() {
			continue
		}

		name, skip := paramName(sf, tagName)
		if skip {
			continue
		}

		raw := present(values[name])
		if len(raw) == 0 {
			continue
		}

		if err := setField(field, sf.Type, raw); err != nil {
			return fmt.Errorf("%w: %s: %v", bindErr, name, err)
		}
	}

	return nil
}

// present drops blank entries so that "?count=" behaves like an absent parameter.
func present(raw []string) []string {
	out := raw[:0:0]
	for _, s := range raw {
		if strings.TrimSpace(s) != "" {
			out = append(out, s)
		}
	}
	return out
}

func paramName(sf reflect.StructField, tagName string) (string, bool) {
	tag := sf.Tag.Get(tagName)
	switch tag {
	case "":
		return strings.ToLower(sf.Name), false
	case "-":
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func setField(field reflect.Value, t reflect.Type, raw []string) error {
	switch t.Kind() {
	case reflect.Pointer:
		if field.IsNil() {
			field.Set(reflect.New(t.Elem()))
		}
		return setField(field.Elem(), t.Elem(), raw)
	case reflect.Slice:
		return setSlice(field, t, raw)
	}

	value := strings.TrimSpace(raw[0])
	switch t.Kind() {
	case reflect.String:
		// Strings keep their original spacing.
		field.SetString(raw[0])

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, t.Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer %q", value)
		}
		field.SetUint(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no":
				b = false
			default:
				return fmt.Errorf("invalid bool %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", t.Kind())
	}

	return nil
}

func setSlice(field reflect.Value, t reflect.Type, raw []string) error {
	var items []string
	for _, v := range raw {
		for part := range strings.SplitSeq(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
	}

	slice := reflect.MakeSlice(t, len(items), len(items))
	for i, item := range items {
		if err := setField(slice.Index(i), t.Elem(), []string{item}); err != nil {
			return err
		}
	}
	field.Set(slice)
	return nil
}
