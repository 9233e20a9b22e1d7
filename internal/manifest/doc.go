// Package manifest reads, rewrites, and validates npm package manifests.
// A template ships one base manifest per language variant (_package.json,
// underscored so npm never treats the template itself as a package); the
// generator loads it, stamps the project identity onto it, and writes the
// result as the new project's package.json. Documents keep their original
// key order across the round trip.
package manifest
