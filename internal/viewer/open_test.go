package viewer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenWith_PicksPlatformOpener(t *testing.T) {
	var gotName string
	var gotArgs []string
	fake := func(name string, args ...string) error {
		gotName = name
		gotArgs = args
		return nil
	}

	assert.NoError(t, openWith("linux", "/tmp/cv.pdf", fake))
	assert.Equal(t, "xdg-open", gotName)
	assert.Equal(t, []string{"/tmp/cv.pdf"}, gotArgs)

	assert.NoError(t, openWith("darwin", "/tmp/cv.pdf", fake))
	assert.Equal(t, "open", gotName)

	assert.NoError(t, openWith("windows", `C:\cv.pdf`, fake))
	assert.Equal(t, "cmd", gotName)
}
