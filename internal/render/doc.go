// Package render turns a list of model.Animal values into output.
//
// There are two variants that share the same field extraction
// (model.ParseCollection) and differ only in formatting:
//
//   - HTML produces one card list item per record, ready to be spliced
//     into the page template by the compose package.
//   - Text produces a human-readable console report with a "Label: value"
//     line per present field.
//
// Both preserve input order and omit absent fields entirely.
package render
