package errors

import (
	"errors"
	"fmt"
)

// Catalog load error constructors. Every one of them is a FatalLoadError:
// the browser cannot render anything without the document.

// SourceUnreachable creates an error for a data source that could not be read.
func SourceUnreachable(location string, cause error) *CatalogError {
	return &CatalogError{
		Kind:    ErrLoad,
		Message: "failed to load the catalog",
		Cause:   cause,
		Details: map[string]string{"source": location},
		Suggestion: `Check that the catalog source is reachable:
  1. For a URL, verify your internet connection
  2. For a file, verify the path exists and is readable
  3. Override the source with --source or VITRINA_SOURCE_LOCATION`,
	}
}

// SourceStatus creates an error for an HTTP source answering with an error status.
func SourceStatus(location string, status int) *CatalogError {
	return &CatalogError{
		Kind:    ErrLoad,
		Message: fmt.Sprintf("catalog source answered with status %d", status),
		Details: map[string]string{
			"source": location,
			"status": fmt.Sprintf("%d", status),
		},
		Suggestion: "The catalog server is reachable but did not return the document. Try again later.",
	}
}

// MalformedDocument creates an error for a catalog document that could not be parsed.
func MalformedDocument(cause error) *CatalogError {
	return &CatalogError{
		Kind:    ErrData,
		Message: "catalog document is malformed",
		Cause:   cause,
		Suggestion: `The document must be JSON shaped like:
  {"stock": [ {"id": 1, "product_name": "...", "price": 100, "images": []} ],
   "main":  {"groups": [ {"title": "...", "items": [1]} ]}}`,
	}
}

// InvalidProduct creates an error for a product record that violates the data model.
func InvalidProduct(id int, reason string) *CatalogError {
	return &CatalogError{
		Kind:    ErrData,
		Message: fmt.Sprintf("product %d: %s", id, reason),
		Details: map[string]string{"id": fmt.Sprintf("%d", id)},
	}
}

// IsFatalLoad reports whether err prevents the catalog from being shown.
func IsFatalLoad(err error) bool {
	var ce *CatalogError
	if errors.As(err, &ce) {
		return ce.Kind == ErrLoad || ce.Kind == ErrData
	}
	return false
}
