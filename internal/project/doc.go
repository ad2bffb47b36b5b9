// Package project defines the validated Spec, the static variant
// registry, and the parameter validator that turns raw CLI input into a Spec.
// All validation happens before the first filesystem write.
package project
