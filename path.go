package geometa

import (
	"fmt"
	"strconv"
)

// Path builds dotted/bracketed document locations (for example
// columns.geometry.bbox[2]) in a chain-safe way and mints Violations.
type Path interface {
	Field(name string) Path
	Index(i int) Path
	String() string
	Violation(code, msg string, kv ...any) Violation
}

// Root returns the document root path, rendered as "$".
func Root() Path { return path("") }

// At builds a path from an already-rendered location string.
func At(rendered string) Path {
	if rendered == "$" {
		return path("")
	}
	return path(rendered)
}

type path string

func (p path) Field(name string) Path {
	if name == "" {
		return p
	}
	if p == "" {
		return path(name)
	}
	return path(string(p) + "." + name)
}

func (p path) Index(i int) Path {
	return path(string(p) + "[" + strconv.Itoa(i) + "]")
}

func (p path) String() string {
	if p == "" {
		return "$"
	}
	return string(p)
}

func (p path) Violation(code, msg string, kv ...any) Violation {
	var params map[string]any
	if len(kv) > 1 {
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			params[fmt.Sprint(kv[i])] = kv[i+1]
		}
	}
	return Violation{Path: p.String(), Code: code, Message: msg, Params: params}
}
