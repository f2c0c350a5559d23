package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset    = "\033[0m"
	colorCyanBold = "\033[36;1m"
)

// bannerTpl returns the colored banner shared by the msqlite binaries.
func bannerTpl() string {
	return colorCyanBold + "MSQLite %s " + Version + colorReset +
		"\nFor more information visit https://github.com/msqlite/msqlite"
}

// ShellVersion returns the banner of the msqlite shell.
func ShellVersion() string {
	return fmt.Sprintf(bannerTpl(), "Shell")
}

// BenchVersion returns the banner of the msqlite benchmark tool.
func BenchVersion() string {
	return fmt.Sprintf(bannerTpl(), "Bench")
}
