package template

import (
	_ "embed"
)

//go:embed structure/main.go.tmpl
var StructureMain []byte

//go:embed structure/database.go.tmpl
var StructureDatabase []byte

//go:embed structure/dependencies.go.tmpl
var StructureDependencies []byte

//go:embed structure/models.go.tmpl
var StructureModels []byte

//go:embed structure/admin.go.tmpl
var StructureAdmin []byte

//go:embed structure/gomod.tmpl
var StructureGomod []byte

//go:embed structure/manifest.tmpl
var StructureManifest []byte
