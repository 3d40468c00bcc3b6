// Package value provides the generic document tree that oasquery queries run
// against.
//
// An OpenAPI document is loaded as a [Value]: a tagged union of null, bool,
// number, string, sequence, and mapping. Mappings are ordered and keep the key
// order of the source document, so every traversal is deterministic.
//
// All accessors are total. Looking up a key on a non-mapping, indexing past the
// end of a sequence, or asking a number for its string form never panics; it
// returns the absent value, an empty slice, or a false ok flag instead:
//
//	op := doc.Get("paths").Get("/pets").Get("get")
//	if op.IsAbsent() {
//	    // no GET /pets
//	}
//	summary := op.Get("summary").StringOr("No summary")
//
// [FromNode] converts a go.yaml.in/yaml/v4 node tree into a Value, expanding
// aliases into full copies. [Render] and [RenderJSON] serialize a Value back to
// text without anchors or aliases.
package value
