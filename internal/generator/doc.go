// Package generator sequences a full project generation: create the
// project directory, load the variant's base manifest, attempt the
// Windows signing certificate, materialize the template sources, write
// package.json, run the dependency installs, and print next steps. Each
// step hands its results to the next as explicit values; a failed install
// or missing required peer aborts the run.
package generator
