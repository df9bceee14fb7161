// Package common contains shared constants and sentinel errors used across
// the jwtauth server components.
package common

import "strings"

// AccessTokenCookieName is the cookie that carries the signed session token
// between the browser and the server.
const AccessTokenCookieName = "jwt-auth"

// LocalEnvironments lists ENVIRONMENT values for which cookies are issued
// without the Secure attribute.
var LocalEnvironments = []string{"local", "development"}

// IsLocalEnvironment reports whether env names a local/development
// environment. The comparison is case-insensitive, so "Local" matches.
func IsLocalEnvironment(env string) bool {
	env = strings.TrimSpace(env)
	for _, e := range LocalEnvironments {
		if strings.EqualFold(env, e) {
			return true
		}
	}
	return false
}
