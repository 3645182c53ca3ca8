package models

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned when a request body does not satisfy an
// entity schema. Fields lists every field that failed, in schema order.
type ValidationError struct {
	Entity string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "invalid " + e.Entity + ": " + strings.Join(parts, "; ")
}

// Has reports whether field is among the offending fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	return v
}

// decodeAndValidate fills dst from a JSON object and runs the struct's
// validate tags. Only keys that exactly match a json tag of dst are decoded;
// anything else, including differently cased names, is ignored.
// encoding/json keeps decoding past a type mismatch, so the first mismatch
// is reported alongside every tag violation.
func decodeAndValidate(entity string, body []byte, dst any) error {
	verr := &ValidationError{Entity: entity}
	seen := map[string]bool{}

	schema := reflect.TypeOf(dst).Elem()
	fields, err := schemaFields(body, schema)
	if err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			verr.Fields = append(verr.Fields, FieldError{Field: "body", Message: "must be a JSON object"})
		} else {
			verr.Fields = append(verr.Fields, FieldError{Field: "body", Message: "malformed JSON: " + err.Error()})
		}
		return verr
	}
	filtered, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(filtered, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) || typeErr.Field == "" {
			return err
		}
		field := fieldName(typeErr.Field)
		typ := typeErr.Type
		if f, ok := schemaField(schema, field); ok {
			typ = f.Type
		}
		verr.Fields = append(verr.Fields, FieldError{Field: field, Message: "must be " + describeType(typ)})
		seen[field] = true
	}

	if err := validate.Struct(dst); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			field := fieldName(fe.Field())
			if seen[field] {
				continue
			}
			msg := describeTag(fe)
			if field != fe.Field() {
				msg = "must be a list of strings"
			}
			verr.Fields = append(verr.Fields, FieldError{Field: field, Message: msg})
			seen[field] = true
		}
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}

// schemaFields keeps the top-level keys of body that name a field of t
// exactly. Whole-number floats sent for integer fields become integers.
func schemaFields(body []byte, t reflect.Type) (map[string]json.RawMessage, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(raw))
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		if name == "" {
			continue
		}
		v, ok := raw[name]
		if !ok {
			continue
		}
		if isInteger(f.Type) {
			v = wholeNumber(v)
		}
		out[name] = v
	}
	return out, nil
}

// schemaField finds the field of t whose json name is name.
func schemaField(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		if f := t.Field(i); jsonName(f) == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

func isInteger(t reflect.Type) bool {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

// wholeNumber rewrites 250000.0 or 2.5e5 as 250000. Anything else is
// returned unchanged and left for the decoder to reject.
func wholeNumber(v json.RawMessage) json.RawMessage {
	s := string(v)
	if !strings.ContainsAny(s, ".eE") {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) >= math.MaxInt64 {
		return v
	}
	return json.RawMessage(strconv.FormatInt(int64(f), 10))
}

// fieldName strips nested paths and element indexes: "features[1]" is
// reported as "features".
func fieldName(path string) string {
	if i := strings.IndexAny(path, ".["); i >= 0 {
		return path[:i]
	}
	return path
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func describeType(t reflect.Type) string {
	if t == nil {
		return "a valid value"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "a string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Bool:
		return "a boolean"
	case reflect.Slice:
		elem := t.Elem()
		for elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}
		if elem.Kind() == reflect.String {
			return "a list of strings"
		}
		return "a list"
	default:
		return "a valid " + t.String()
	}
}

func stringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

// stringList flattens a validated list; it is never nil.
func stringList(l []*string) []string {
	out := make([]string, 0, len(l))
	for _, s := range l {
		if s != nil {
			out = append(out, *s)
		}
	}
	return out
}
