package identity

import "sshident/internal/settings"

// Origin records which source referenced an identity. The declaration order
// is the priority order: an earlier origin always displaces a later one
// during merge. Directory discovery is the weakest signal and never
// overrides an explicit configuration reference.
type Origin int

const (
	OriginEnvironment Origin = iota
	OriginArgv
	OriginConfigFile
	OriginDefault
	OriginDirectory
)

func (o Origin) String() string {
	switch o {
	case OriginEnvironment:
		return "env"
	case OriginArgv:
		return "argv"
	case OriginConfigFile:
		return "config"
	case OriginDefault:
		return "default"
	case OriginDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// FromSetting maps a settings-store origin onto the identity origin scale.
func FromSetting(o settings.Origin) Origin {
	switch o {
	case settings.OriginEnvironment:
		return OriginEnvironment
	case settings.OriginConfigFile:
		return OriginConfigFile
	default:
		return OriginDefault
	}
}
