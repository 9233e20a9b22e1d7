package platform

import (
	"os"
	"os/user"
	"strings"
)

// Username returns the short name of the current OS user. The value is
// substituted into generated app content (certificate publisher, Windows
// app manifest) so it must never be empty: lookup failures fall back to
// the USERNAME/USER environment variables and finally to "developer".
func Username() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return shortUsername(u.Username)
	}
	for _, key := range []string{"USERNAME", "USER", "LOGNAME"} {
		if v := os.Getenv(key); v != "" {
			return shortUsername(v)
		}
	}
	return "developer"
}

// shortUsername strips the Windows DOMAIN\ prefix if present.
func shortUsername(name string) string {
	if i := strings.LastIndex(name, `\`); i >= 0 {
		return name[i+1:]
	}
	return name
}
