// Package platform provides the small set of host-environment lookups the
// generator depends on: the current OS user (stamped into generated app
// content and certificate subjects), permission handling, and the Windows
// check that gates certificate generation.
package platform
