package registry

import (
	"math"
	"reflect"
	"time"
)

// ValidatorFunc reports whether value satisfies a type.
type ValidatorFunc func(value any) bool

// Descriptor describes a named option type.
type Descriptor struct {
	// Name is the unique key of the type in a Registry.
	Name string
	// Default produces the type's default value. It is called once per use.
	Default func() any
	// Validator reports whether a raw option value is of this type.
	Validator ValidatorFunc
	// FailMessage is reported when Validator rejects a value.
	// Defaults to "must be type <Name>" on registration.
	FailMessage string
}

func failMessageFor(name string) string {
	return "must be type " + name
}

//nolint:gochecknoglobals // fixed dispatch table.
var timeType = reflect.TypeFor[time.Time]()

func builtins() []Descriptor {
	return []Descriptor{
		{
			Name:      "boolean",
			Default:   func() any { return false },
			Validator: isBoolean,
		},
		{
			Name:      "number",
			Default:   func() any { return float64(0) },
			Validator: isNumber,
		},
		{
			Name:      "object",
			Default:   func() any { return map[string]any{} },
			Validator: isObject,
		},
		{
			Name:      "array",
			Default:   func() any { return []any{} },
			Validator: isArray,
		},
		{
			Name:      "string",
			Default:   func() any { return "" },
			Validator: isString,
		},
		{
			Name:      "function",
			Default:   func() any { return func() {} },
			Validator: isFunction,
		},
		{
			Name:      "date",
			Default:   func() any { return time.Now() },
			Validator: isDate,
		},
	}
}

func kindOf(value any) reflect.Kind {
	if value == nil {
		return reflect.Invalid
	}

	return reflect.TypeOf(value).Kind()
}

func isBoolean(value any) bool {
	return kindOf(value) == reflect.Bool
}

func isNumber(value any) bool {
	//nolint:exhaustive // everything else is not a number
	switch kindOf(value) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	case reflect.Float32, reflect.Float64:
		return !math.IsNaN(reflect.ValueOf(value).Float())
	default:
		return false
	}
}

// isObject accepts any non-nil composite value. Slices and arrays count.
func isObject(value any) bool {
	//nolint:exhaustive // everything else is not an object
	switch kindOf(value) {
	case reflect.Struct, reflect.Array:
		return true
	case reflect.Map, reflect.Slice, reflect.Pointer:
		return !reflect.ValueOf(value).IsNil()
	default:
		return false
	}
}

func isArray(value any) bool {
	//nolint:exhaustive // everything else is not an array
	switch kindOf(value) {
	case reflect.Array:
		return true
	case reflect.Slice:
		return !reflect.ValueOf(value).IsNil()
	default:
		return false
	}
}

func isString(value any) bool {
	return kindOf(value) == reflect.String
}

func isFunction(value any) bool {
	return kindOf(value) == reflect.Func && !reflect.ValueOf(value).IsNil()
}

func isDate(value any) bool {
	switch v := value.(type) {
	case time.Time:
		return true
	case *time.Time:
		return v != nil
	default:
		return value != nil && reflect.TypeOf(value).ConvertibleTo(timeType) && kindOf(value) == reflect.Struct
	}
}
