// Package schema loads CPSW-style YAML device descriptions into an ordered,
// read-only document tree.
//
// The loader keeps source key order everywhere: module order, child order,
// enumeration order and command sequence order are all significant for the
// generated output.
//
// # Document shape
//
//	MyDevice:
//	  description: Top level device
//	  size: 0x1000
//	  children:
//	    Version:
//	      class: IntField
//	      at: { offset: 0x00 }
//	      sizeBits: 32
//	      mode: RO
//	    Scratch:
//	      class: IntField
//	      at: { offset: 0x10, nelms: 4, stride: 8 }
//	      mode: RW
//	    Reset:
//	      class: SequenceCommand
//	      sequence:
//	        - { entry: Control, value: 1 }
//	        - { entry: Control, value: 0 }
//
// A module declared without a body (e.g. "MyDevice:" alone) is kept in the
// document with a nil body so callers can tell "declared but empty" apart
// from "not declared at all".
//
// YAML aliases and "<<" merge keys are resolved while loading; explicit keys
// always win over merged ones.
package schema
