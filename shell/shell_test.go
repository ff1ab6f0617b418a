package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/letterbox/config"
)

func testController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return newController(config.DefaultConfig(), out), out
}

func writeWordList(t *testing.T, words ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte(strings.Join(words, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExecuteSolve(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	path := writeWordList(t, "juvenile", "embark", "jive", "mule", "be")

	is.NoErr(sc.Execute("puzzle erb uln imk jav 6"))
	is.NoErr(sc.Execute("dict " + path))
	is.NoErr(sc.Execute("solve astar"))
	is.True(strings.Contains(out.String(), "SOLUTION:"))
	is.True(strings.Contains(out.String(), "juvenile"))
}

func TestExecuteValidate(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)

	is.NoErr(sc.Execute("puzzle erb uln imk jav 6"))
	is.NoErr(sc.Execute("validate juvenile embark"))
	is.True(strings.Contains(out.String(), "solution is valid"))

	err := sc.Execute("validate juvenile")
	is.True(err != nil) // incomplete coverage
}

func TestExecuteNoSolution(t *testing.T) {
	is := is.New(t)
	sc, out := testController(t)
	path := writeWordList(t, "jive")

	is.NoErr(sc.Execute("puzzle erb uln imk jav 6"))
	is.NoErr(sc.Execute("dict " + path))
	is.NoErr(sc.Execute("solve predict"))
	is.True(strings.Contains(out.String(), "no solution found"))
}

func TestExecuteErrors(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)

	is.True(sc.Execute("solve") != nil)             // no puzzle yet
	is.True(sc.Execute("puzzle erb uln") != nil)    // malformed board
	is.True(sc.Execute("frobnicate") != nil)        // unknown command
	is.True(sc.Execute("set max-words ten") != nil) // not a number
}

func TestExecuteSet(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)

	is.NoErr(sc.Execute("set max-words 3"))
	is.NoErr(sc.Execute("puzzle erb uln imk jav"))
	is.Equal(sc.puz.MaxWords(), 3)
}

func TestExecuteQuit(t *testing.T) {
	is := is.New(t)
	sc, _ := testController(t)

	is.Equal(sc.Execute("exit"), errQuit)
	is.Equal(sc.Execute("quit"), errQuit)
}
