package identity

import "fmt"

// User is an opaque identity record returned by the identity service.
type User map[string]interface{}

// ID returns user id rendered as string, or empty if absent
func (u User) ID() string {
	value, ok := u["id"]
	if !ok || value == nil {
		return ""
	}
	switch actual := value.(type) {
	case string:
		return actual
	case float64:
		if actual == float64(int64(actual)) {
			return fmt.Sprintf("%d", int64(actual))
		}
	}
	return fmt.Sprintf("%v", value)
}

// Name returns user name, falling back to email
func (u User) Name() string {
	for _, key := range []string{"name", "email"} {
		if value, ok := u[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// Clone returns a shallow copy
func (u User) Clone() User {
	if u == nil {
		return nil
	}
	ret := make(User, len(u))
	for k, v := range u {
		ret[k] = v
	}
	return ret
}
