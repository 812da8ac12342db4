package settings

// Origin identifies which layered source supplied a resolved setting.
// Environment outranks the configuration file, which outranks defaults.
type Origin int

const (
	OriginEnvironment Origin = iota
	OriginConfigFile
	OriginDefault
)

func (o Origin) String() string {
	switch o {
	case OriginEnvironment:
		return "env"
	case OriginConfigFile:
		return "config"
	case OriginDefault:
		return "default"
	default:
		return "unknown"
	}
}
