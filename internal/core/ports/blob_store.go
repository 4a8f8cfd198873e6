package ports

// BlobStore is opaque file storage addressed by public URL. The card layer
// only ever stores the returned URL string; it never inspects file contents.
type BlobStore interface {
	// Store persists data under a freshly generated unique name preserving
	// the extension of originalName, and returns the public URL.
	Store(data []byte, originalName string) (string, error)

	// RemoveByURL deletes the blob behind url. Removing a blob that does
	// not exist is not an error.
	RemoveByURL(url string) error
}
