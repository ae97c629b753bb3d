package dotmerge

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicsFS embed.FS

func topicFiles() fs.FS {
	sub, err := fs.Sub(topicsFS, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
