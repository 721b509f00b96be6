package domain

// Manifest is a decoded package manifest (package.json and friends).
// It is read-only once constructed.
type Manifest struct {
	fields map[string]any
}

// NewManifest wraps fields. The top-level map is copied so callers can keep
// mutating their own value without affecting a bound manifest.
func NewManifest(fields map[string]any) *Manifest {
	m := &Manifest{fields: make(map[string]any, len(fields))}
	for k, v := range fields {
		m.fields[k] = v
	}
	return m
}

// Field returns the raw value stored under key.
func (m *Manifest) Field(key string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.fields[key]
	return v, ok
}

// String returns the field as a string when it is one.
func (m *Manifest) String(key string) (string, bool) {
	v, ok := m.Field(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Object returns the field when it is a structured (mapping) value.
func (m *Manifest) Object(key string) (map[string]any, bool) {
	v, ok := m.Field(key)
	if !ok {
		return nil, false
	}
	obj, ok := v.(map[string]any)
	return obj, ok
}

// List returns the field when it is an ordered sequence.
func (m *Manifest) List(key string) ([]any, bool) {
	v, ok := m.Field(key)
	if !ok {
		return nil, false
	}
	switch l := v.(type) {
	case []any:
		return l, true
	case []string:
		out := make([]any, len(l))
		for i, s := range l {
			out[i] = s
		}
		return out, true
	default:
		return nil, false
	}
}

// Truthy reports whether the field is present and holds a non-empty value.
// Empty strings, zero numbers, false and null are not truthy; any mapping or
// sequence is, even an empty one.
func (m *Manifest) Truthy(key string) bool {
	v, ok := m.Field(key)
	if !ok {
		return false
	}
	return truthy(v)
}

func (m *Manifest) Name() string {
	s, _ := m.String("name")
	return s
}

func (m *Manifest) Version() string {
	s, _ := m.String("version")
	return s
}

// Workspaces returns the workspace globs declared by an npm monorepo root.
// Both the array form and the {"packages": [...]} form are understood.
func (m *Manifest) Workspaces() []string {
	v, ok := m.Field("workspaces")
	if !ok {
		return nil
	}
	if obj, ok := v.(map[string]any); ok {
		v = obj["packages"]
	}
	var globs []string
	switch l := v.(type) {
	case []any:
		for _, item := range l {
			if s, ok := item.(string); ok && s != "" {
				globs = append(globs, s)
			}
		}
	case []string:
		for _, s := range l {
			if s != "" {
				globs = append(globs, s)
			}
		}
	}
	return globs
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && t == t
	case float32:
		return t != 0 && t == t
	case int:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	default:
		return true
	}
}
