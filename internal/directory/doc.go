// Package directory loads the user directory that usersearch searches.
//
// # Overview
//
// The directory is a JSON array of user records fetched once at startup. The
// package owns the record type, a tolerant decoder, and two sources: an HTTP
// client for remote datasets and a file source for local copies and fixtures.
//
// # Sources
//
// NewSource picks an implementation from the configured location:
//
//   - http:// and https:// URLs: Client, a plain GET with a request timeout
//   - file:// URLs and bare paths: FileSource, read from disk
//
// Both satisfy Fetcher, which is what the rest of the program depends on.
//
// # Record Format
//
//	[
//	  {
//	    "id": "123-s2-546",
//	    "name": "John Jacobs",
//	    "items": ["bucket", "bottle"],
//	    "address": "1st Cross, 9th Main, abc Apartment",
//	    "pincode": "5xx012"
//	  }
//	]
//
// The id and pincode fields may be JSON strings or numbers; both decode to their
// literal text. Missing fields decode to zero values.
//
// # Error Handling
//
// A payload that is not a JSON array is an error. A single record that fails
// to decode is skipped and counted instead of failing the whole load, so one bad
// row never empties the directory. HTTP responses with status >= 400 wrap
// ErrUnexpectedStatus.
package directory
