package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, API caller).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
)

// File captures metadata and content for a single Solidity source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol represents a human-readable position in a source file.
type LineCol struct {
	Line uint32 // 1-based
	Col  uint32 // 1-based
}

// LineCol resolves a byte offset inside the file to a 1-based line/column pair.
func (f *File) LineCol(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Line returns the raw text of the 1-based line n, without the trailing newline.
// Returns an empty string when n is out of range.
func (f *File) Line(n uint32) string {
	if n == 0 {
		return ""
	}
	idx := int(n) - 1
	var start uint32
	if idx > 0 {
		if idx-1 >= len(f.LineIdx) {
			return ""
		}
		start = f.LineIdx[idx-1] + 1
	}
	end := uint32(len(f.Content))
	if idx < len(f.LineIdx) {
		end = f.LineIdx[idx]
	}
	if start > end {
		return ""
	}
	return string(f.Content[start:end])
}

// LineCount returns the number of lines in the file. An empty file has one line.
func (f *File) LineCount() uint32 {
	return uint32(len(f.LineIdx)) + 1
}
