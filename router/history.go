package router

import (
	"fmt"
	"strings"
)

// Mode selects how the application path is encoded in the browser URL.
type Mode string

const (
	// PathMode uses HTML5 history with clean URLs (/profile).
	PathMode Mode = "path"

	// HashMode encodes the path in the fragment (#/profile).
	HashMode Mode = "hash"
)

// ParseMode converts a configuration value into a Mode.
// The empty string selects PathMode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", PathMode:
		return PathMode, nil
	case HashMode:
		return HashMode, nil
	default:
		return "", fmt.Errorf("%w: %q (must be path or hash)", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	return string(m)
}

// History is the URL-tracking strategy used by the Engine.
type History interface {
	// Mode reports how paths are encoded in URLs.
	Mode() Mode

	// Location returns the current application path (base and fragment marker removed).
	Location() string

	// Push adds a new history entry for path.
	Push(path string)

	// Replace overwrites the current history entry with path.
	Replace(path string)

	// Listen registers fn for back/forward traversal (popstate).
	// Push and Replace never trigger listeners.
	Listen(fn func(path string)) (stop func())

	// Href formats path as the URL written to the address bar and to <a href>.
	Href(path string) string
}

// Href formats an application path for the given mode and base.
// In PathMode the result is base-prefixed and never contains '#'.
func Href(mode Mode, base, path string) string {
	path = normalizePath(path)
	if mode == HashMode {
		return "#" + path
	}
	return trimBase(base) + path
}

// StripBase removes base from a URL pathname and normalizes the remainder.
// Pathnames outside base are returned normalized but otherwise unchanged.
func StripBase(base, pathname string) string {
	b := trimBase(base)
	if b != "" && (pathname == b || strings.HasPrefix(pathname, b+"/")) {
		pathname = strings.TrimPrefix(pathname, b)
	}
	return normalizePath(pathname)
}

// FromHash extracts the application path from a location.hash value.
func FromHash(hash string) string {
	return normalizePath(strings.TrimPrefix(hash, "#"))
}

func trimBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		return ""
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	return strings.TrimRight(base, "/")
}
