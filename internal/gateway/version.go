package gateway

import (
	"fmt"
	"strings"

	"github.com/thanhnp/txsigner/pkg/semver"
)

// minCLIVersion is the oldest Bitcoin Core release whose CLI supports
// signrawtransactionwithwallet.
var minCLIVersion = &semver.Version{Major: 0, Minor: 17}

// CheckVersion asks the CLI for its version and rejects clients too old to
// sign with the wallet. Version output that carries no recognizable version
// token is logged and tolerated, since the format has changed across
// releases.
func CheckVersion(gw Gateway) error {
	out, err := gw.Invoke("--version")
	if err != nil {
		return fmt.Errorf("version check failed: %w", err)
	}

	ver := extractVersion(out)
	if ver == nil {
		log.Warnf("Could not determine CLI version from %q, continuing", firstLine(out))
		return nil
	}

	if ver.LessThan(minCLIVersion) {
		return fmt.Errorf("CLI version %s is too old: wallet signing requires %s or newer",
			ver, minCLIVersion)
	}

	log.Debugf("CLI version %s", ver)
	return nil
}

// extractVersion scans the first line of the version output for a semantic
// version token, e.g. the v25.1.0 in
// "Bitcoin Core RPC client version v25.1.0".
func extractVersion(out string) *semver.Version {
	for _, field := range strings.Fields(firstLine(out)) {
		if ver, err := semver.Parse(field); err == nil {
			return ver
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
