package utils

import "fmt"

// EnumValidator restricts a string column to a fixed value set. The
// stored strings come from the constants package, so a rejection here
// means a writer bypassed the enum types.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q is not in the allowed set", s)
	}
}
