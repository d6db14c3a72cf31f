package components

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/vvka-141/revtree/internal/files/filesystem"
)

// PathCompleter completes directory names for the root path prompt.
// When several directories match, the first Next call extends the input to
// their longest common prefix and each following call, given the value the
// previous call returned, moves to the next match.
//
// Usage:
//
//	completer := NewPathCompleter(filesystem.NewOSFileSystem())
//
//	// On Tab press:
//	completed := completer.Next(input.Value())
//	input.SetValue(completed)
//
//	// On any other keypress:
//	completer.Reset()
type PathCompleter struct {
	provider filesystem.FileSystemProvider

	// cycle state; parent is the directory the matches were listed from
	// and last is the value Next returned most recently.
	parent     string
	matches    []string
	cycleIndex int
	last       string
}

// NewPathCompleter creates a completer that lists directories through provider.
func NewPathCompleter(provider filesystem.FileSystemProvider) *PathCompleter {
	return &PathCompleter{provider: provider}
}

// Next returns the next completion for input. Input equal to the previous
// result continues the cycle over the same matches; any other input starts
// a new completion. A single match is completed with a trailing separator so
// the next call descends into it.
func (c *PathCompleter) Next(input string) string {
	if len(c.matches) > 1 && input == c.last {
		c.cycleIndex = (c.cycleIndex + 1) % len(c.matches)
		return c.remember(withSeparator(filepath.Join(c.parent, c.matches[c.cycleIndex])))
	}

	parent, prefix := splitPath(input)
	c.parent = parent
	c.matches = c.directoriesIn(parent, prefix)

	if len(c.matches) == 0 {
		c.Reset()
		return input
	}

	if len(c.matches) > 1 {
		candidate := filepath.Join(parent, longestCommonPrefix(c.matches))
		if len(candidate) > len(input) {
			// the first cycle step yields matches[0]
			c.cycleIndex = -1
			return c.remember(candidate)
		}
	}

	c.cycleIndex = 0
	return c.remember(withSeparator(filepath.Join(parent, c.matches[0])))
}

// Reset clears the cycle state. Call this when the user types a non-Tab key.
func (c *PathCompleter) Reset() {
	c.parent = ""
	c.matches = nil
	c.cycleIndex = 0
	c.last = ""
}

func (c *PathCompleter) remember(result string) string {
	c.last = result
	return result
}

// directoriesIn returns the sorted names of directories in parent whose
// name starts with prefix, ignoring case.
func (c *PathCompleter) directoriesIn(parent, prefix string) []string {
	entries, err := c.provider.ReadDir(parent)
	if err != nil {
		return nil
	}

	lowPrefix := strings.ToLower(prefix)
	var matches []string
	for _, entry := range entries {
		name := filepath.Base(entry)
		if !strings.HasPrefix(strings.ToLower(name), lowPrefix) {
			continue
		}
		info, err := c.provider.Stat(entry)
		if err != nil || !info.IsDir() {
			continue
		}
		matches = append(matches, name)
	}

	sort.Strings(matches)
	return matches
}

func withSeparator(p string) string {
	return p + string(filepath.Separator)
}

// splitPath splits an input into parent directory and name prefix.
//
//	"./src/com" → ("src", "com")
//	"./src/"    → ("./src", "")
//	"my"        → (".", "my")
//	""          → (".", "")
func splitPath(input string) (parent, prefix string) {
	if input == "" || input == "." {
		return ".", ""
	}

	if strings.HasSuffix(input, string(filepath.Separator)) || strings.HasSuffix(input, "/") {
		trimmed := strings.TrimRight(input, `/\`)
		if trimmed == "" {
			return string(filepath.Separator), ""
		}
		return trimmed, ""
	}

	return filepath.Dir(input), filepath.Base(input)
}

// longestCommonPrefix finds the longest common prefix among strs, ignoring case.
func longestCommonPrefix(strs []string) string {
	if len(strs) == 0 {
		return ""
	}

	first := strings.ToLower(strs[0])
	for i := 0; i < len(first); i++ {
		for _, s := range strs[1:] {
			if i >= len(s) || strings.ToLower(s)[i] != first[i] {
				return strs[0][:i]
			}
		}
	}
	return strs[0]
}
