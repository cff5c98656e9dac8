// Package registry provides a generic, type-safe name registry. Items are
// checked by an optional validator when they are registered, so lookups
// never have to second-guess what they get back.
package registry
