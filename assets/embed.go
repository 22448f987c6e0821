// Package assets embeds the configuration bundle installed by devlyn.
//
// The bundle is compiled into the binary so every distribution channel
// (npm wrapper, Homebrew, direct download) installs the same files without
// network access.
package assets

import (
	"embed"
	"io/fs"
)

const (
	// ConfigDir holds the files always copied into the target directory.
	ConfigDir = "config"

	// OptionalSkillsDir holds one directory per local add-on.
	OptionalSkillsDir = "optional-skills"

	// SkillFileName is the metadata file inside every skill directory.
	SkillFileName = "SKILL.md"
)

//go:embed config optional-skills
var bundle embed.FS

// FS returns the whole embedded bundle.
func FS() fs.FS {
	return bundle
}
