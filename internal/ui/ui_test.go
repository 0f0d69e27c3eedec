package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTheme_NoColorForcesMono(t *testing.T) {
	defer SetTheme("classic", true)

	SetTheme("neon", false)
	assert.Equal(t, "mono", Current().Name)
	SetTheme("NEON", true)
	assert.Equal(t, "neon", Current().Name)
	SetTheme("unknown", true)
	assert.Equal(t, "classic", Current().Name)
}

func TestOKAndFail_Mono(t *testing.T) {
	defer SetTheme("classic", true)
	SetTheme("mono", false)

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "nope")
	assert.Equal(t, "ok added\nx nope\n", buf.String())
}

func TestPanelString_FramesEveryLine(t *testing.T) {
	defer SetTheme("classic", true)
	SetTheme("mono", false)

	out := PanelString([]string{"first", "second line"})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "first")
	assert.Contains(t, lines[2], "second line")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcdefg...", Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", Truncate("ab", 2))
}

func TestIsTerminal_NonFile(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}

func TestSanitize_StripsControlSequences(t *testing.T) {
	assert.Equal(t, "red x", Sanitize("\x1b[31mred\x1b[0m\tx"))
	assert.Equal(t, "a b", Sanitize("a\nb"))
	assert.Equal(t, "plain", Sanitize("plain"))
}
