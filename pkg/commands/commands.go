// Package commands holds the fixed table of shell commands.
package commands

import "sort"

// Variant identifies a command.
type Variant int

const (
	Unknown Variant = iota
	MoveDirectory
	MakeDirectory
	ListDirectory
	Remove
	ShowFile
	MakeFile
	WriteFile
)

var variantNames = [...]string{
	Unknown:       "Unknown",
	MoveDirectory: "MoveDirectory",
	MakeDirectory: "MakeDirectory",
	ListDirectory: "ListDirectory",
	Remove:        "Remove",
	ShowFile:      "ShowFile",
	MakeFile:      "MakeFile",
	WriteFile:     "WriteFile",
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return variantNames[Unknown]
	}
	return variantNames[v]
}

// table maps command names to variants. echo is the user-facing alias of WriteFile.
var table = map[string]Variant{
	"cd":     MoveDirectory,
	"mkdir":  MakeDirectory,
	"ls":     ListDirectory,
	"rm":     Remove,
	"head":   ShowFile,
	"mkfile": MakeFile,
	"echo":   WriteFile,
}

// Lookup returns the variant registered for name, or Unknown.
func Lookup(name string) Variant {
	if v, ok := table[name]; ok {
		return v
	}
	return Unknown
}

// Names returns all command names in lexical order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
