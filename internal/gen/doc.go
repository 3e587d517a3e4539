// Package gen renders a resolved model.Document as PyRogue Python source.
//
// Output is deterministic: a text/template header, then one pr.Device class
// per module in document order. Registration blocks use fixed absolute
// columns (see Layout) so the generated text is usable without reformatting:
//
//	        self.addVariable    (   name         = 'Scratch',
//	                                offset       =  0x10,
//	                                bitSize      =  32,
//	                            )
//
// Codegen patterns:
//   - Plain variables (self.addVariable)
//   - Arrays with number and stride (self.addVariables)
//   - Enumerated variables with an inline enum mapping
//   - Commands with a function script of set statements
package gen
