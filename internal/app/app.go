package app

const (
	Name    = "git-commit"
	Author  = "RookieChen4"
	License = "MIT"
)

// Version is overridden at build time via -ldflags.
var Version = "0.2.0"

type App struct {
	Name    string
	Version string
	Author  string
	License string
}

func New() *App {
	return &App{
		Name:    Name,
		Version: Version,
		Author:  Author,
		License: License,
	}
}

func (a *App) GetFullVersion() string {
	return a.Name + " version " + a.Version
}

// UserAgent identifies the tool in log lines.
func (a *App) UserAgent() string {
	return a.Name + "/" + a.Version
}
