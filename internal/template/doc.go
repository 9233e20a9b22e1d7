// Package template materializes a template directory tree into a new
// project directory. Paths and text file contents pass through ordered
// regex replacement rules; binary assets are copied byte for byte.
//
// Two independent rule sets drive a generation run. Path rules rename
// template tokens in destination paths (the HelloWorld placeholder project
// and the underscore-prefixed config files npm would otherwise drop from a
// published package). Content rules substitute the project name plus the
// per-run values templates reference with ${...} tokens: currentUser,
// projectGuid, packageGuid, and certificateThumbprint.
package template
