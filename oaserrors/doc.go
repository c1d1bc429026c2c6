// Package oaserrors provides structured error types for the swagger-parser module.
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors.
//
// # Error Types
//
//   - [ParseError]: YAML/JSON parsing failures and unsupported documents
//   - [ValidationError]: structural problems in a document
//   - [ConversionError]: a conversion that produced warnings or critical issues in strict mode
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConversion]: Matches any [ConversionError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithFilePath("swagger.yaml"),
//	    converter.WithStrictMode(true),
//	)
//	var convErr *oaserrors.ConversionError
//	if errors.As(err, &convErr) {
//	    fmt.Printf("%d issues at %s\n", convErr.IssueCount, convErr.Path)
//	}
package oaserrors
