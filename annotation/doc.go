// Package annotation extracts rovo annotations from the documentation
// comments that precede a #[rovo] marker.
//
// Annotations are single-line directives written inside "///" doc comments:
//
//	/// Fetch a single user.
//	///
//	/// @response 200 Json<User> The user
//	/// @response 404 Json<Error> No such user
//	/// @tag users
//	/// @security bearer
//	/// @id get_user
//	#[rovo]
//	async fn get_user() {}
//
// The package is split into three layers:
//
//  1. Line classification: [Classify] sorts a raw source line into doc
//     comment, marker, blank, or other. [IsMarkerLike] is a looser check
//     used only to detect that a marker is nearby.
//
//  2. Grammar: [ParseContent] turns the content of one doc comment line
//     into a typed [Annotation]. Lines that do not match a known shape are
//     prose, not errors, and are silently dropped.
//
//  3. Scanning: [Scan] finds every marker, walks upward through the
//     contiguous doc block above it (blank lines do not end the block),
//     and returns all annotations in source order. [Blocks] exposes the
//     same result grouped per marker.
//
// Every function in this package is a pure function of its input and is
// safe for concurrent use.
package annotation
