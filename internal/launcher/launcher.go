// Package launcher opens URLs and associated applications through the OS shell.
package launcher

import "strings"

// Launcher opens targets with their associated application without blocking.
type Launcher interface {
	// OpenURL opens url in the default browser.
	OpenURL(url string) error
	// OpenApp opens target (a path or protocol URI) passing args to it.
	OpenApp(target string, args ...string) error
}

// joinArgs renders arguments as a single parameter string, quoting those with spaces.
func joinArgs(args []string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a == "" {
			continue
		}
		if strings.ContainsAny(a, " \t") && !strings.HasPrefix(a, `"`) {
			a = `"` + a + `"`
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
