package schema

import (
	"fmt"
	"math"
	"strings"
)

// Kind enumerates the value kinds a field spec can accept. Records are
// validated in their decoded JSON form, so numbers arrive as float64: an int
// field accepts an integral float64, a float field accepts any number.
type Kind int

// All field kinds supported.
const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindList
	KindMap
)

// Spec describes the accepted kinds for a single field. A field with multiple
// kinds is a union; Nullable allows an explicit JSON null.
type Spec struct {
	Kinds    []Kind
	Nullable bool
}

// FieldSchema maps field names to either a Spec or a nested FieldSchema.
// It is the single source of truth for what a valid record looks like:
// both the collector and the aggregator validate against it, so the two
// sides cannot drift apart silently.
type FieldSchema map[string]any

// kindName returns the display name for a kind in error messages.
func kindName(k Kind) string {
	switch k {
	case KindString:
		return "str"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindList:
		return "list"
	case KindMap:
		return "dict"
	}
	return "unknown"
}

// valueName returns the display name for a decoded value in error messages.
func valueName(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "str"
	case float64:
		if t == math.Trunc(t) && !math.IsInf(t, 0) {
			return "int"
		}
		return "float"
	case int, int64:
		return "int"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	}
	return fmt.Sprintf("%T", v)
}

// matchKind reports whether a decoded value satisfies one kind.
func matchKind(v any, k Kind) bool {
	switch k {
	case KindString:
		_, ok := v.(string)
		return ok
	case KindInt:
		switch t := v.(type) {
		case int, int64:
			return true
		case float64:
			return t == math.Trunc(t) && !math.IsInf(t, 0)
		}
		return false
	case KindFloat:
		switch v.(type) {
		case int, int64, float64:
			return true
		}
		return false
	case KindBool:
		_, ok := v.(bool)
		return ok
	case KindList:
		_, ok := v.([]any)
		return ok
	case KindMap:
		_, ok := v.(map[string]any)
		return ok
	}
	return false
}

// specNames renders the accepted kinds of a spec for error messages.
func specNames(s Spec) string {
	names := make([]string, 0, len(s.Kinds)+1)
	for _, k := range s.Kinds {
		names = append(names, kindName(k))
	}
	if s.Nullable {
		names = append(names, "null")
	}
	return strings.Join(names, " or ")
}

// checkSpec validates a single value against a spec, appending one error for
// a mismatch.
func checkSpec(errs []string, path, key string, v any, s Spec) []string {
	if v == nil {
		if s.Nullable {
			return errs
		}
		return append(errs, fmt.Sprintf("%s.%s: expected %s, got null", path, key, specNames(s)))
	}
	for _, k := range s.Kinds {
		if matchKind(v, k) {
			return errs
		}
	}
	return append(errs, fmt.Sprintf("%s.%s: expected %s, got %s", path, key, specNames(s), valueName(v)))
}

// ValidateRecord validates a decoded JSON mapping against a field schema.
// It recurses into nested schemas and collects every violation in one pass;
// it never short-circuits, so a single run reports all drift at once. Each
// error is a human-readable string of the form "<dotted.path>.<key>: <problem>".
func ValidateRecord(data map[string]any, fs FieldSchema, path string) []string {
	var errs []string
	for key, expected := range fs {
		v, ok := data[key]
		if !ok {
			errs = append(errs, fmt.Sprintf("%s.%s: missing required field", path, key))
			continue
		}
		switch spec := expected.(type) {
		case FieldSchema:
			if nested, ok := v.(map[string]any); ok {
				errs = append(errs, ValidateRecord(nested, spec, path+"."+key)...)
			} else {
				errs = append(errs, fmt.Sprintf("%s.%s: expected dict, got %s", path, key, valueName(v)))
			}
		case Spec:
			errs = checkSpec(errs, path, key, v, spec)
		}
	}
	return errs
}

// ValidateRawRepo validates a decoded raw repo record. Top-level identity
// fields are required; nested metric sections are validated only when
// present, matching the collector's ability to omit a section wholesale.
func ValidateRawRepo(data map[string]any) (bool, []string) {
	errs := ValidateRecord(data, rawRepoRequiredFields, "repo")
	for _, section := range rawRepoSectionOrder {
		v, ok := data[section]
		if !ok {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			errs = append(errs, ValidateRecord(nested, rawRepoNestedSchemas[section], "repo."+section)...)
		} else {
			errs = append(errs, fmt.Sprintf("repo.%s: expected dict, got %s", section, valueName(v)))
		}
	}
	return len(errs) == 0, errs
}

// ValidateDashboard validates a decoded aggregated dashboard record.
func ValidateDashboard(data map[string]any) (bool, []string) {
	errs := ValidateRecord(data, dashboardRequiredFields, "dashboard")
	for _, section := range dashboardSectionOrder {
		v, ok := data[section]
		if !ok {
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			errs = append(errs, ValidateRecord(nested, dashboardNestedSchemas[section], "dashboard."+section)...)
		} else {
			errs = append(errs, fmt.Sprintf("dashboard.%s: expected dict, got %s", section, valueName(v)))
		}
	}
	return len(errs) == 0, errs
}

// AssertRawRepo returns a descriptive error if the record is invalid; it is
// the hard gate before a collected record is persisted or aggregated.
func AssertRawRepo(data map[string]any, repoName string) error {
	valid, errs := ValidateRawRepo(data)
	if valid {
		return nil
	}
	return fmt.Errorf("schema validation failed for repo %q:\n  %s", repoName, strings.Join(errs, "\n  "))
}

// AssertDashboard returns a descriptive error if the assembled dashboard is
// invalid; a failure here must abort the run before anything is persisted.
func AssertDashboard(data map[string]any) error {
	valid, errs := ValidateDashboard(data)
	if valid {
		return nil
	}
	return fmt.Errorf("schema validation failed for aggregated dashboard:\n  %s", strings.Join(errs, "\n  "))
}
