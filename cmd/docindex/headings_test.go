package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docindex/cmd/docindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeadingsCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists markdown headings with explicit ids", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.md")
		writeFile(t, path, "---\ntitle: Doc\n---\n# Intro\n\n## Setup {#install}\n\n```\n# not a heading\n```\n## Intro\n")
		stdout := &bytes.Buffer{}

		err := (&main.HeadingsCmd{File: path}).Run(newDeps(stdout, &bytes.Buffer{}))

		require.NoError(t, err)
		assert.Equal(t, "h1  intro  Intro\nh2  install  Setup\nh2  intro-1  Intro\n", stdout.String())
	})

	t.Run("writes generated ids back into html", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		writeFile(t, path, `<h2>Usage</h2><p>a</p><h2>Usage</h2>`)
		stdout := &bytes.Buffer{}

		err := (&main.HeadingsCmd{File: path, Write: true}).Run(newDeps(stdout, &bytes.Buffer{}))

		require.NoError(t, err)
		assert.Equal(t, "h2  usage  Usage\nh2  usage-1  Usage\n", stdout.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `<h2 id="usage">Usage</h2><p>a</p><h2 id="usage-1">Usage</h2>`, string(data))
	})

	t.Run("leaves html untouched without write", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.html")
		writeFile(t, path, `<h2>Usage</h2>`)

		err := (&main.HeadingsCmd{File: path}).Run(newDeps(&bytes.Buffer{}, &bytes.Buffer{}))

		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, `<h2>Usage</h2>`, string(data))
	})

	t.Run("reports files without headings", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "plain.md")
		writeFile(t, path, "Just text.\n")
		stdout := &bytes.Buffer{}

		err := (&main.HeadingsCmd{File: path}).Run(newDeps(stdout, &bytes.Buffer{}))

		require.NoError(t, err)
		assert.Equal(t, "No headings found.\n", stdout.String())
	})

	t.Run("rejects data files", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "data.json")
		writeFile(t, path, "{}")
		stderr := &bytes.Buffer{}

		err := (&main.HeadingsCmd{File: path}).Run(newDeps(&bytes.Buffer{}, stderr))

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "unsupported file type")
	})
}
