// Package installer drives npm or yarn to populate a generated project's
// dependencies. Installation runs as three passes: the variant's
// development toolchain, the reactxp framework itself, and finally the
// peer dependencies reactxp declares in its own installed manifest. Every
// pass pins exact versions and disables lifecycle scripts; any non-zero
// exit aborts the generation.
package installer
