// Package internal holds project-private routes such as the admin surface.
package internal
