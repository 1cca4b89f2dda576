// Package services implements the core pipeline stages: per-brand
// aggregation, the sort/limit stage and the report orchestrator.
// Services depend on ports and domain only; infrastructure is
// injected by the caller.
package services
