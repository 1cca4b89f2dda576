// Package reports implements the named-report registry and the
// built-in reports. New aggregations are added by implementing the
// driven.Report port and registering a factory; the pipeline driver
// never changes.
package reports
