// Package litecli is the secondary, kong-based driver. It is maintained
// independently of the cobra driver on purpose: the contract between the two
// is behavioral (identical parameters in, byte-identical trees and status out),
// enforced by the parity tests in this package rather than by shared parsing
// code.
package litecli
