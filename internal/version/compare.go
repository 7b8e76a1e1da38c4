package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-signals/pkg/errors"
)

// CheckConfigCompatibility checks whether a strategy config written for configVersion
// can be loaded by a build at buildVersion.
//
// Rules:
//   - "main" on either side (development build) skips the check
//   - major and minor versions must match
//   - patch versions may differ
func CheckConfigCompatibility(buildVersion, configVersion string) error {
	buildVersion = strings.TrimPrefix(buildVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if buildVersion == "main" || configVersion == "main" {
		return nil
	}

	build, err := semver.NewVersion(buildVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid build version '%s'", buildVersion)
	}

	config, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidVersion, err, "invalid config version '%s'", configVersion)
	}

	if build.Major() != config.Major() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "major version mismatch: build is %d.x.x but config requires %d.x.x",
			build.Major(), config.Major())
	}

	if build.Minor() != config.Minor() {
		return errors.Newf(errors.ErrCodeVersionMismatch, "minor version mismatch: build is %d.%d.x but config requires %d.%d.x",
			build.Major(), build.Minor(), config.Major(), config.Minor())
	}

	return nil
}
