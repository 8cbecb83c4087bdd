package version

import "fmt"

// Версия сервера. BuildDate и BuildID подставляются линкером:
//
//	go build -ldflags "-X rogue-server/internal/version.BuildDate=... \
//	                   -X rogue-server/internal/version.BuildID=..."
var (
	Major = 0
	Minor = 3
	Patch = 0

	BuildDate = "unknown"
	BuildID   = "dev"
)

// String возвращает версию в формате "MAJOR.MINOR.PATCH+BUILDID".
func String() string {
	return fmt.Sprintf("%d.%d.%d+%s", Major, Minor, Patch, BuildID)
}
