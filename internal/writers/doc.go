// Package writers selects and drives worksheet renderers by format name.
//
// Design:
//   • internal/output owns the presentation details of each format.
//   • Writers here only pair a header step with a grid step, so the app
//     never switches on the format string itself.
//   • Document formats (html, pdf) hold the header until the grid arrives.
package writers
