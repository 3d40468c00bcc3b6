// Package parser loads OpenAPI Specification documents into generic value trees.
//
// The parser reads a YAML or JSON file and produces a [value.Value] whose
// mappings keep the key order of the source. It does not validate the document
// against the OpenAPI schema, does not resolve $ref pointers, and does not cache:
// every call reads the input again so edits to the file are always visible.
//
// # Quick Start
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Version, result.Document.Get("paths").Len())
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.MaxFileSize = 2 << 20
//	result, err := p.Parse("api.yaml")
//
// # Errors
//
// Read and decode failures are returned as *oaserrors.ParseError, and size or
// nesting violations as *oaserrors.ResourceLimitError. Use errors.Is with
// oaserrors.ErrParse and oaserrors.ErrResourceLimit to tell them apart.
//
// # Logging
//
// Pass a [Logger] with [WithLogger] to receive a debug record for every loaded
// document. [NewSlogAdapter] wraps a *slog.Logger.
package parser
