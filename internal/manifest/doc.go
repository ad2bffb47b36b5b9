// Package manifest defines the project.yaml manifest written into every
// scaffolded tree and validates generated manifests against an embedded
// JSON Schema during the post-run verification step.
package manifest
