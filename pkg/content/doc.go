// Package content resolves content descriptors into the text written to disk.
//
// A descriptor is declared by a package in one of three shapes:
//
//	"plain text"                 text, returned as is
//	["line 1", "line 2"]         lines, joined with the platform line separator
//	{base64: "aGVsbG8="}         base64, decoded
//
// Any other shape is kept as Unsupported and only fails when resolved, so the
// error can name the file it belongs to.
package content
