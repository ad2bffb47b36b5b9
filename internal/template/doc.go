// Package template implements the variable-substitution engine for scaffold
// assets: single-pass ${name} token replacement with hard errors on
// unresolved tokens, and category-based write policies that keep generated
// trees byte-identical across driver implementations.
package template
