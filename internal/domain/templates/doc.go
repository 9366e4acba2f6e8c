// Package templates persists named folder/file blueprints as text files in
// the user's documents area and seeds a built-in set exactly once.
//
// Layout:
//
//	<documents>/FileArchitect/Templates/
//	    Web Project.txt
//	    School Class.txt
//	    .defaults_initialized
//
// The sentinel .defaults_initialized is written after the first seeding and
// never touched again, so defaults a user deletes stay deleted.
//
// Templates may start with a YAML front matter block:
//
//	---
//	order: 2
//	---
//	project
//		src
//
// Only order is interpreted here; the content is always returned verbatim.
package templates
