package goquery

import (
	"strings"

	"github.com/rmaia/vitrine"
)

var _ vitrine.ProfileRegistry = (*Registry)(nil)

// Registry resolves selector profiles by storefront host. Unknown hosts
// fall back to the generic profile, so extraction always has a set of
// chains to work with.
type Registry struct {
	fallback *vitrine.Profile
	profiles map[string]*vitrine.Profile
}

// NewRegistry creates a Registry with the given fallback profile.
func NewRegistry(fallback *vitrine.Profile) *Registry {
	return &Registry{
		fallback: fallback,
		profiles: make(map[string]*vitrine.Profile),
	}
}

// Get returns the profile registered for the host, or the fallback when
// none matches. Hosts compare case-insensitively with any "www." prefix
// stripped.
func (r *Registry) Get(host string) *vitrine.Profile {
	if profile, ok := r.profiles[canonicalHost(host)]; ok {
		return profile
	}
	return r.fallback
}

// Register adds a profile for its Host. An existing profile for the
// same host is replaced.
func (r *Registry) Register(profile *vitrine.Profile) {
	r.profiles[canonicalHost(profile.Host)] = profile
}

// List returns all registered hosts.
func (r *Registry) List() []string {
	hosts := make([]string, 0, len(r.profiles))
	for h := range r.profiles {
		hosts = append(hosts, h)
	}
	return hosts
}

func canonicalHost(host string) string {
	return strings.TrimPrefix(strings.ToLower(host), "www.")
}
