// Package session resolves the interactive user whose browser data should
// be inventoried.
package session

import (
	"fmt"
	"os"
)

// UserRootEnv overrides the resolved profile root. Useful in tests and when
// the tool runs under a service account on behalf of the logged-in user.
const UserRootEnv = "EXTINV_USER_ROOT"

// Resolver answers the filesystem root of the target user's profile data.
type Resolver interface {
	DataRoot() (string, error)
}

type hostResolver struct{}

// Host returns a Resolver backed by the current process's environment.
func Host() Resolver {
	return hostResolver{}
}

func (hostResolver) DataRoot() (string, error) {
	if root := os.Getenv(UserRootEnv); root != "" {
		if _, err := os.Stat(root); err != nil {
			return "", fmt.Errorf("configured user root %s is not accessible: %w", root, err)
		}
		return root, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine the interactive user's profile: %w", err)
	}
	return home, nil
}
