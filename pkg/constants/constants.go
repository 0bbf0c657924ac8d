// Package constants provides shared constants used throughout the pagetools codebase.
// This includes the wiki folder layout, file permissions, and the file names
// that other components agree on.
package constants

import "time"

// Wiki layout constants define where artifacts live relative to the wiki root.
const (
	// ProjectMarkerFile must exist in the wiki root; it identifies a docusaurus project.
	ProjectMarkerFile = "docusaurus.config.ts"

	// DumpFolder holds the per-game record dumps, one document per entity.
	DumpFolder = "fgd_dump"

	// OverridesFolder holds the hand written override patches.
	OverridesFolder = "fgd_dump_overrides"

	// DocsFolder receives one merged document per entity.
	DocsFolder = "fgd_docs"

	// PagesFolder receives one rendered page per (entity, game) pair.
	PagesFolder = "fgd_pages"

	// IndexPath is the search index artifact, relative to the wiki root.
	IndexPath = "static/fgd_dump/entityIndex.json"

	// StaticFolder is the docusaurus static asset folder. Paths under it are
	// served from the site root, so the prefix is removed from public URLs.
	StaticFolder = "static"

	// EntityImagesFolder is where extracted entity icons are stored, per game.
	EntityImagesFolder = "static/img/entities"

	// TimestampFile is written by the dumper and is not a document.
	TimestampFile = "timestamp.json"

	// ManifestFile summarises the last run that changed anything.
	ManifestFile = "manifest.json"
)

// File extension constants
const (
	// ExtJSON is the extension of JSON documents and overrides.
	ExtJSON = ".json"

	// ExtYAML is the long extension of YAML overrides.
	ExtYAML = ".yaml"

	// ExtYML is the short extension of YAML overrides.
	ExtYML = ".yml"

	// ExtPNG is the extension of extracted icon images.
	ExtPNG = ".png"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Timing constants
const (
	// ShutdownTimeout bounds graceful shutdown of the CLI after an error.
	ShutdownTimeout = 5 * time.Second
)

// Separator constants
const (
	// TargetSeparator splits an override file stem into entity and game tags.
	TargetSeparator = "-"
)
