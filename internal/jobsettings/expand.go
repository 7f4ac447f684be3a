package jobsettings

import (
	"sort"
	"unicode"

	"sparkdeploy/pkg/logging"
)

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// PlaceholderName reports whether v is an environment placeholder ("$" followed
// by an upper-case name) and returns the referenced variable name.
func PlaceholderName(v string) (string, bool) {
	if len(v) < 2 || v[0] != '$' {
		return "", false
	}
	name := v[1:]
	if !isUpper(name) {
		return "", false
	}
	return name, true
}

// isUpper is true when s has at least one cased letter and no lower or title
// case letters. Digits and punctuation are ignored.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}

// ExpandEnvVars returns a copy of vars where every placeholder value is
// replaced by the environment variable it names. Values that are not
// placeholders, including non-string values, are copied unchanged.
func ExpandEnvVars(vars map[string]any, lookup LookupFunc) (map[string]any, error) {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	expanded := make(map[string]any, len(vars))
	for _, k := range keys {
		v := vars[k]
		s, ok := v.(string)
		if !ok {
			expanded[k] = v
			continue
		}
		name, ok := PlaceholderName(s)
		if !ok {
			expanded[k] = s
			continue
		}
		value, found := lookup(name)
		if !found {
			return nil, &InvalidSettingsError{
				Field:     FieldSparkEnvVars,
				Reference: name,
				Reason:    "the variable should be added to the plugin environment definition to be accessible",
			}
		}
		expanded[k] = value
		logging.Info("Settings", "%s was expanded successfully from environment variable %s", k, s)
	}
	return expanded, nil
}

// EnvVars returns new_cluster.spark_env_vars, or an empty map when it is
// absent.
func (s *JobSettings) EnvVars() (map[string]any, error) {
	switch v := s.NewCluster[FieldSparkEnvVars].(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return v, nil
	default:
		return nil, &InvalidSettingsError{Field: FieldNewCluster + "." + FieldSparkEnvVars, Reason: "must be an object"}
	}
}

// ExpandEnvironment resolves placeholders in new_cluster.spark_env_vars. A
// missing spark_env_vars is replaced by an empty map.
func (s *JobSettings) ExpandEnvironment(lookup LookupFunc) error {
	vars, err := s.EnvVars()
	if err != nil {
		return err
	}
	expanded, err := ExpandEnvVars(vars, lookup)
	if err != nil {
		return err
	}
	s.NewCluster[FieldSparkEnvVars] = expanded
	return nil
}
