// Package contentstream parses decoded PDF content streams into a
// sequence of operations.
//
// A content stream is a flat series of operands followed by an
// operator, e.g.:
//
//	100 200 m
//	300 200 l
//	0.5 0.5 0.5 rg
//	f
//
// [Parse] tokenizes the stream and returns one [Operation] per
// operator, carrying the operands that preceded it. Operands keep only
// the shapes the coverage pipeline consumes: numbers, names, strings
// and arrays. Inline dictionaries and inline image data are skipped
// rather than modeled, since no path or text operator takes them.
package contentstream
