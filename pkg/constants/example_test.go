package constants_test

import (
	"fmt"
	"path/filepath"

	"github.com/s2wiki/pagetools/pkg/constants"
)

// Example demonstrates resolving the wiki layout from a root folder
func Example() {
	root := filepath.Join("wiki")

	fmt.Println(filepath.ToSlash(filepath.Join(root, constants.DumpFolder)))
	fmt.Println(filepath.ToSlash(filepath.Join(root, constants.OverridesFolder)))
	fmt.Println(filepath.ToSlash(filepath.Join(root, constants.IndexPath)))
	// Output:
	// wiki/fgd_dump
	// wiki/fgd_dump_overrides
	// wiki/static/fgd_dump/entityIndex.json
}

// Example_permissions demonstrates permission constants
func Example_permissions() {
	fmt.Printf("dirs %o, files %o\n", constants.DirPermissions, constants.FilePermissions)
	// Output:
	// dirs 755, files 644
}
