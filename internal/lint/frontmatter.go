package lint

import "bytes"

// StripFrontMatter splits a leading YAML front matter block delimited by
// "---\n" lines from source. It returns the block (including delimiters)
// and the remaining content. If no front matter is found, prefix is nil
// and content equals source.
func StripFrontMatter(source []byte) (prefix, content []byte) {
	delim := []byte("---\n")
	if !bytes.HasPrefix(source, delim) {
		return nil, source
	}
	rest := source[len(delim):]
	idx := bytes.Index(rest, delim)
	if idx < 0 {
		return nil, source
	}
	end := len(delim) + idx + len(delim)
	return source[:end], source[end:]
}

// MaskFrontMatter returns a copy of source whose front matter block is
// blanked to spaces. Newlines stay, so offsets and line numbers of the
// remaining content do not move. The returned prefix length is the size
// of the masked block; it is zero when source has no front matter.
func MaskFrontMatter(source []byte) (masked []byte, prefixLen int) {
	prefix, _ := StripFrontMatter(source)
	if prefix == nil {
		return source, 0
	}
	masked = make([]byte, len(source))
	copy(masked, source)
	for i := range prefix {
		if masked[i] != '\n' {
			masked[i] = ' '
		}
	}
	return masked, len(prefix)
}
