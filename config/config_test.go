package config

import (
	"testing"

	"github.com/matryer/is"
)

func TestDefaults(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()

	is.Equal(c.GetString("strategy"), "astar")
	is.Equal(c.GetInt("max-words"), 6)
	is.Equal(c.GetInt("edge-weight"), 0)
	is.Equal(c.GetBool("debug"), false)
}

func TestLoadFlags(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()

	err := c.Load([]string{
		"-strategy", "predict",
		"-max-words", "4",
		"-debug",
		"erb uln imk jav", "6",
	})
	is.NoErr(err)
	is.Equal(c.GetString("strategy"), "predict")
	is.Equal(c.GetInt("max-words"), 4)
	is.Equal(c.GetBool("debug"), true)
	is.Equal(c.Args(), []string{"erb uln imk jav", "6"})
}

func TestEnvOverride(t *testing.T) {
	is := is.New(t)
	t.Setenv("LETTERBOX_MAX_WORDS", "3")

	c := DefaultConfig()
	is.Equal(c.GetInt("max-words"), 3)
}

func TestSet(t *testing.T) {
	is := is.New(t)
	c := DefaultConfig()

	c.Set("edge-weight", 7)
	is.Equal(c.GetInt("edge-weight"), 7)
}
