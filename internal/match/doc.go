// Package match provides fuzzy name matching used to suggest the intended
// spelling of unknown schema vocabulary (child classes, attribute keys).
//
// Key functions:
//   - Levenshtein: edit distance between two strings
//   - NormalizeIdent: case and separator folding ("size_bits" == "sizeBits")
//   - Suggest: best known names for an unknown one
package match
