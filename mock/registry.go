package mock

import "github.com/rmaia/vitrine"

var _ vitrine.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of vitrine.ProfileRegistry.
type ProfileRegistry struct {
	GetFn      func(host string) *vitrine.Profile
	RegisterFn func(profile *vitrine.Profile)
}

func (r *ProfileRegistry) Get(host string) *vitrine.Profile {
	return r.GetFn(host)
}

func (r *ProfileRegistry) Register(profile *vitrine.Profile) {
	r.RegisterFn(profile)
}
