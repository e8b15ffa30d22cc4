package cliplugins

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"wordwatch/internal/words"
)

func printNotification(w io.Writer, n words.ChangeNotification, ws words.WordSet) {
	var kind string
	switch n.Kind {
	case words.Updated:
		kind = color.GreenString("%-8s", n.Kind)
	case words.Cleared:
		kind = color.YellowString("%-8s", n.Kind)
	default:
		kind = fmt.Sprintf("%-8s", n.Kind)
	}
	fmt.Fprintf(w, "%s %d %q\n", kind, ws.Len(), ws.Words())
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", color.RedString("%-8s", "error"), err)
}
