package version

import (
	"fmt"
	"runtime"
)

// Overridden at build time with -ldflags "-X github.com/NeuralTrust/MailSlot/pkg/version.Commit=...".
var (
	Version   = "0.3.1"
	AppName   = "MailSlot"
	Commit    = "dev"
	BuildDate = "unknown"
)

type Info struct {
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"build_date"`
	Runtime   string `json:"runtime"`
}

func GetInfo() Info {
	return Info{
		AppName:   AppName,
		Version:   Version,
		Commit:    Commit,
		BuildDate: BuildDate,
		Runtime:   fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH),
	}
}

// String renders Info for the version command, e.g.
// "MailSlot 0.3.1 (dev, built unknown, go1.24 linux/amd64)".
func (i Info) String() string {
	return fmt.Sprintf("%s %s (%s, built %s, %s)", i.AppName, i.Version, i.Commit, i.BuildDate, i.Runtime)
}
