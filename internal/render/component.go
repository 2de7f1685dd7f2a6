package render

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Lines renders each entry followed by a newline.
func Lines(entries ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, entry+"\n"); err != nil {
				return err
			}
		}
		return nil
	})
}

// Component renders the block one line at a time.
func (b Block) Component() templ.Component {
	return Lines(b...)
}

// Text renders a component to a string.
func Text(ctx context.Context, component templ.Component) (string, error) {
	var builder strings.Builder
	if err := component.Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
