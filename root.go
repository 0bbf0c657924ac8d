package pagetools

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/s2wiki/pagetools/pkg/constants"
	"github.com/s2wiki/pagetools/pkg/errors"
)

// ValidateRoot checks that root is a docusaurus project: an existing folder
// holding docusaurus.config.ts.
func ValidateRoot(fs afero.Fs, root string) error {
	info, err := fs.Stat(root)
	switch {
	case os.IsNotExist(err):
		return errors.NewConfigError("root", fmt.Sprintf("wiki root '%s' does not exist", root), err)
	case err != nil:
		return errors.NewConfigError("root", fmt.Sprintf("cannot access wiki root '%s'", root), err)
	case !info.IsDir():
		return errors.NewConfigError("root", fmt.Sprintf("wiki root '%s' is not a directory", root), nil)
	}

	if ok, _ := afero.Exists(fs, filepath.Join(root, constants.ProjectMarkerFile)); !ok {
		return errors.NewConfigError("root", fmt.Sprintf(
			"'%s' is not a docusaurus project, this should be the folder containing the %s file",
			root, constants.ProjectMarkerFile), nil)
	}
	return nil
}
