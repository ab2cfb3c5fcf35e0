package model

const ANONYMOUS_AUTHOR = "Anonymous"

// Identity is the caller decoded from the auth token.
type Identity struct {
	Name string `json:"name"`
}

// ResolveAuthor picks the identity name, then the first non-empty fallback, then ANONYMOUS_AUTHOR.
func ResolveAuthor(identity *Identity, fallbacks ...string) string {
	if identity != nil && identity.Name != "" {
		return identity.Name
	}

	for _, fallback := range fallbacks {
		if fallback != "" {
			return fallback
		}
	}

	return ANONYMOUS_AUTHOR
}
