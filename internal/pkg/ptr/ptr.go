package ptr

import "strings"

func Of[T any](v T) *T {
	return &v
}

// Deref returns the pointed-to value, or fallback when p is nil.
func Deref[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

// NonBlank returns nil for nil or whitespace-only strings, the trimmed value otherwise.
func NonBlank(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
