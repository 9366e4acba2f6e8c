// Package paths provides path resolution shared by every component.
//
// # Home Shorthand
//
// Paths coming from the desktop shell may start with "~". ExpandPath turns
// "~" and "~/rest" into absolute paths under the user's home directory and
// leaves everything else untouched:
//
//	paths.ExpandPath("~")          // /home/me
//	paths.ExpandPath("~/notes")    // /home/me/notes
//	paths.ExpandPath("/abs/path")  // /abs/path
//
// # Persisted Layout
//
//	<documents>/
//	  └── FileArchitect/
//	      └── Templates/
//	          ├── *.txt                  (one file per template)
//	          └── .defaults_initialized  (seeding sentinel)
package paths
