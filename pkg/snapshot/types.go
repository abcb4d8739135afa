package snapshot

// FileHandle identifies a file selected by the host.
type FileHandle struct {
	Path string // Host path of the file, usually absolute.
}

// FileRecord is one formatted entry of a snapshot.
type FileRecord struct {
	Identifier  string // Normalized path written into the file tag.
	LanguageTag string // Fence annotation; only used by the tagged style.
	Content     string // Decoded file content, inserted verbatim.
}

// Handles wraps plain paths into file handles, keeping their order.
func Handles(paths ...string) []FileHandle {
	handles := make([]FileHandle, 0, len(paths))
	for _, p := range paths {
		handles = append(handles, FileHandle{Path: p})
	}
	return handles
}
