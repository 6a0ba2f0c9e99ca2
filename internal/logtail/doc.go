// Package logtail reads and colorizes the tail of the usersearch log file.
//
// Read and ReadMatching use a ring buffer sized to the requested line count,
// so memory stays O(maxLines) regardless of file size. A missing log file is
// not an error; it simply has no lines.
//
// ColorizeLine understands the text formatter's layout (timestamp, level,
// message, key=value pairs) and leaves anything else untouched.
package logtail
