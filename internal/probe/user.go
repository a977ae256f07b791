package probe

import (
	"os"
	"os/user"
	"strconv"
)

// userName prefers the login name; processes without a controlling terminal
// often cannot resolve it, so the password-database entry for the current UID
// is the second attempt, then $USER.
func userName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}

	if u, err := user.LookupId(strconv.Itoa(os.Getuid())); err == nil && u.Username != "" {
		return u.Username
	}

	return os.Getenv("USER")
}

func hostName() string {
	h, _ := os.Hostname()
	return h
}
