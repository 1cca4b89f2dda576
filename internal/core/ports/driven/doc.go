// Package driven defines the interfaces the core requires from
// infrastructure: dataset loading, table rendering, report lookup and
// configuration defaults. Adapters implement these ports.
package driven
