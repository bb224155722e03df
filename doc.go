// Package medcard implements an editable patient rehabilitation card for
// the terminal: a form of patient identity and condition fields plus a
// variable-size grid of therapy rows and treatment-session columns,
// persisted to a local key-value store and renderable as a print-ready
// view.
package medcard
