// Package driving defines the interfaces external actors use to
// drive the core. The CLI depends on these, never on services
// directly.
package driving
