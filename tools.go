//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through go:generate directives in contract/ and gateway/,
// importing it here keeps its version pinned in go.mod.
package chat_room

import (
	_ "go.uber.org/mock/mockgen"
)
