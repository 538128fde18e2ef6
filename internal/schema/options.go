package schema

import (
	"strings"

	"github.com/kinewatch-api/internal/textnorm"
)

// ResolveOption returns the legal option that best matches requested:
// an exact match, then a normalized match, then a canonical match. When
// nothing matches, the trimmed requested label is returned unchanged so the
// query still runs and simply matches nothing.
func ResolveOption(requested string, options []string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" || len(options) == 0 {
		return requested
	}

	for _, opt := range options {
		if opt == requested {
			return opt
		}
	}

	normalized := textnorm.Normalize(requested)
	for _, opt := range options {
		if textnorm.Normalize(opt) == normalized {
			return opt
		}
	}

	canonical := textnorm.Canonicalize(requested)
	if canonical == "" {
		return requested
	}
	for _, opt := range options {
		if textnorm.Canonicalize(opt) == canonical {
			return opt
		}
	}

	return requested
}
