package objects

import (
	"math"
	"reflect"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnknownField is reported by FromJSON with policy RejectUnknown if the
// JSON input carries keys the target type has no field for.
var ErrUnknownField = errors.New("unknown field")

// ErrLossyNumber is reported by FromJSON if a JSON number with a fractional
// part, or out of range, is to be stored in an integer field.
var ErrLossyNumber = errors.New("number does not fit integer field")

// FieldPolicy decides how FromJSON treats JSON keys without a matching
// field in the target type.
type FieldPolicy int

const (
	IgnoreUnknown FieldPolicy = iota // drop extra keys silently
	RejectUnknown                    // fail with ErrUnknownField
)

func (p FieldPolicy) String() string {
	if p == RejectUnknown {
		return "reject-unknown"
	}
	return "ignore-unknown"
}

// ToJSON returns the compact JSON representation of v. Map keys are
// sorted, struct fields appear in declaration order.
//
//	ToJSON([]int{1, 2, 3})                  => `[1,2,3]`
//	ToJSON(NewRectangle(10, 20))            => `{"width":10,"height":20}`
func ToJSON(v any) (string, error) {
	s, err := json.MarshalToString(v)
	if err != nil {
		return "", errors.Wrapf(err, "cannot encode %T", v)
	}
	return s, nil
}

// FromJSON creates a new value of type T from its JSON representation.
// Keys are matched against `json` struct tags. Keys without a matching
// field are handled according to policy.
//
//	c, err := FromJSON[Circle](`{"radius":10}`, IgnoreUnknown)
func FromJSON[T any](data string, policy FieldPolicy) (T, error) {
	var result T
	var generic any
	if err := json.UnmarshalFromString(data, &generic); err != nil {
		return result, errors.Wrap(err, "cannot decode JSON")
	}
	var md mapstructure.Metadata
	var lossy error
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:   &result,
		TagName:  "json",
		Metadata: &md,
		DecodeHook: func(from, to reflect.Kind, data any) (any, error) {
			d, err := exactIntegers(from, to, data)
			if err != nil && lossy == nil {
				lossy = err
			}
			return d, err
		},
	})
	if err != nil {
		return result, errors.Wrap(err, "cannot create decoder")
	}
	if err := dec.Decode(generic); err != nil {
		var zero T
		if lossy != nil { // mapstructure flattens hook errors to strings
			return zero, errors.Wrapf(lossy, "cannot convert JSON to %T", result)
		}
		return zero, errors.Wrapf(err, "cannot convert JSON to %T", result)
	}
	if policy == RejectUnknown && len(md.Unused) > 0 {
		sort.Strings(md.Unused)
		var zero T
		return zero, errors.Wrapf(ErrUnknownField, "%T has no field for %s", result,
			strings.Join(md.Unused, ", "))
	}
	return result, nil
}

// exactIntegers is a mapstructure decode hook refusing to truncate JSON
// numbers (decoded as float64) into integer kinds.
func exactIntegers(from, to reflect.Kind, data any) (any, error) {
	if from != reflect.Float64 {
		return data, nil
	}
	f := data.(float64)
	var lo, hi float64 // hi is exclusive
	switch to {
	case reflect.Int8:
		lo, hi = math.MinInt8, math.MaxInt8+1
	case reflect.Int16:
		lo, hi = math.MinInt16, math.MaxInt16+1
	case reflect.Int32:
		lo, hi = math.MinInt32, math.MaxInt32+1
	case reflect.Int, reflect.Int64:
		lo, hi = math.MinInt64, -math.MinInt64
	case reflect.Uint8:
		lo, hi = 0, math.MaxUint8+1
	case reflect.Uint16:
		lo, hi = 0, math.MaxUint16+1
	case reflect.Uint32:
		lo, hi = 0, math.MaxUint32+1
	case reflect.Uint, reflect.Uint64:
		lo, hi = 0, 2*-math.MinInt64
	default:
		return data, nil
	}
	if f != math.Trunc(f) || f < lo || f >= hi {
		return nil, errors.Wrapf(ErrLossyNumber, "%v as %s", f, to)
	}
	return data, nil
}
