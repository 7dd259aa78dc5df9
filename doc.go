// Package nbfmt turns notebook documents into a typed tree and
// rewrites them.
//
// # Usage
//
//	root, err := nbformat.Parse(raw)
//	if err != nil {
//		return err
//	}
//	stripped, err := nbfmt.ClearOutputs(ctx, root)
//
// The heavy lifting lives in the sub-packages; this package holds the
// built-in rewrite rules, each expressed purely in terms of the
// generic walker.
//
// # Related Packages
//
//   - github.com/gridbook/nbfmt/ir - the node model
//   - github.com/gridbook/nbfmt/walk - generic traversal and rewriting
//   - github.com/gridbook/nbfmt/mimetype - representation selection
//   - github.com/gridbook/nbfmt/nbformat - document to tree adapter
package nbfmt
