// Package utils provides common utility functions for the parser.
// It includes terminal diff rendering and other shared logic that doesn't
// fit into domain-specific packages.
package utils
