// Package model builds the immutable device model a generator renders.
//
// Build walks a schema.Document in order. Every module with a body becomes
// a Module whose attributes are resolved from the module template; every
// child is classified by its "class" tag:
//
//   - variable classes (IntField) become a Variable resolved from the
//     variable template, merging the "at" placement container (offset,
//     bitOffset, nelms, stride) with the child's own attributes
//     (description, sizeBits, base, mode). A placement with "nelms" makes the
//     variable an array (stride defaults to 4); an "enums" list makes it
//     enumerated and forces base to "enum".
//   - command classes (SequenceCommand) become a Command carrying its
//     description and ordered (entry, value) write sequence.
//   - anything else becomes Unsupported. Unsupported children are not
//     counted as variables or commands and are reported as warnings.
//
// Templates, vocabularies and class tags come from Config; DefaultConfig
// returns the CPSW to PyRogue mapping.
package model
