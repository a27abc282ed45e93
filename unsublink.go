// Package unsublink finds the link a recipient should follow to stop
// receiving mail from a sender. Given the raw body of an email it runs a
// heuristic pass over the anchors, an ordered set of text patterns, and,
// as a last resort, a generative language model.
//
// This package contains domain types, interfaces and the pure selection
// logic following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency (e.g.,
// goquery/, regexp/, gemini/, openai/).
package unsublink
