package utils

import "fmt"

// EnumValidator returns a field validator accepting only the given values.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not one of %v", s, allowed)
	}
}
