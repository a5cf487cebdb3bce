// Package summarizer implements the Summarizer (§4.F): given a route's
// visit order and the allocation list, it produces a per-tour pick sheet
// ordered by visit rank rather than by product or storage id.
package summarizer
