package config

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	LogLevelDebug = "debug"
	LogLevelError = "error"
)

// App holds the static flags derived from the runtime environment. Build it
// once at startup with NewApp and pass it to whatever needs it.
type App struct {
	Debug    bool
	LogLevel string

	Features Features
	Security Security
}

type Features struct {
	Realtime    bool
	OfflineMode bool
	Analytics   bool
}

type Security struct {
	RequireAuth      bool
	RowLevelSecurity bool
	SecureCookies    bool
}

// NewApp derives the flags for env. Only development enables debug output.
func NewApp(env string) App {
	debug := env == EnvDevelopment
	level := LogLevelError
	if debug {
		level = LogLevelDebug
	}
	return App{
		Debug:    debug,
		LogLevel: level,
		Features: Features{
			Realtime:    true,
			OfflineMode: false,
			Analytics:   true,
		},
		Security: Security{
			RequireAuth:      true,
			RowLevelSecurity: true,
			SecureCookies:    true,
		},
	}
}
