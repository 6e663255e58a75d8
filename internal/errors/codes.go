package errors

// Error codes for the STIR toolchain.
// These codes are used in diagnostics so that editors, the CLI and
// documentation refer to the same problem the same way.
//
// Error code ranges:
// E0100-E0199: IR text errors (syntax and structure)
// E0200-E0299: Recipe errors
// E0300-E0399: Translation errors

const (
	// E0100: Syntax error in STIR text
	ErrorSyntax = "E0100"

	// E0101: CALL names a function that is not defined
	ErrorUndefinedFunction = "E0101"

	// E0102: A function calls itself, directly or not
	ErrorRecursiveCall = "E0102"

	// E0103: Two functions share a name
	ErrorDuplicateFunction = "E0103"

	// E0104: More than one block marked ENTRY
	ErrorDuplicateEntry = "E0104"

	// E0200: Recipe has no entry point
	ErrorNoEntry = "E0200"

	// E0300: Block cannot be translated to target code
	ErrorTranslate = "E0300"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Text does not follow the STIR grammar"
	case ErrorUndefinedFunction:
		return "CALL refers to a function that is not defined in the document"
	case ErrorRecursiveCall:
		return "Blocks must form a DAG; a function cannot reach a call to itself"
	case ErrorDuplicateFunction:
		return "Function names must be unique within a document"
	case ErrorDuplicateEntry:
		return "A recipe has at most one entry point"
	case ErrorNoEntry:
		return "The recipe cannot be fried without an entry point"
	case ErrorTranslate:
		return "Translation to target code failed"
	default:
		return "Unknown error"
	}
}
