// SPDX-License-Identifier: EPL-2.0

// Package wavtest builds RIFF/WAVE inputs for tests: hand-assembled canonical
// headers with any field overridden, and real files written by the go-audio
// encoder.
package wavtest
