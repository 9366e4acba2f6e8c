package templates

import (
	"embed"

	"github.com/filearchitect/desktop/backend/internal/shared/types"
)

//go:embed defaults/*.txt
var defaultFS embed.FS

// builtin lists the default templates in seeding order
var builtin = []struct {
	name string
	file string
}{
	{name: "Web Project", file: "defaults/web-project.txt"},
	{name: "School Class", file: "defaults/school-class.txt"},
	{name: "Video Project", file: "defaults/video-project.txt"},
	{name: "Graphic Design Project", file: "defaults/graphic-design-project.txt"},
}

// Defaults returns the built-in templates
func Defaults() []types.Template {
	out := make([]types.Template, 0, len(builtin))
	for _, b := range builtin {
		data, err := defaultFS.ReadFile(b.file)
		if err != nil {
			// Embedded at build time; a miss is a packaging bug
			panic("templates: missing embedded default " + b.file)
		}
		content := string(data)
		out = append(out, types.Template{Name: b.name, Content: content, Order: parseOrder(content)})
	}
	return out
}
