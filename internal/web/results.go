package web

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

func Results(board ResultsBoard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Maze Escape Results</title>
  </head>
  <body>
    <main class="shell">
      <h1>Results</h1>
`)
		writeResultTable(&b, "escaped", "Escaped", board.Escaped, true)
		writeResultTable(&b, "eliminated", "Eliminated", board.Eliminated, false)
		b.WriteString("    </main>\n")
		if board.LiveUpdate {
			b.WriteString(liveUpdateScript)
		}
		b.WriteString("  </body>\n</html>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ResultsTable renders one group; the live feed reuses it to redraw the page.
func ResultsTable(id, title string, rows []ResultRow, showTime bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		writeResultTable(&b, id, title, rows, showTime)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeResultTable(b *strings.Builder, id, title string, rows []ResultRow, showTime bool) {
	b.WriteString(`      <section class="panel" id="` + id + `">` + "\n")
	b.WriteString("        <h2>" + templ.EscapeString(title) + " (" + itoa(len(rows)) + ")</h2>\n")
	if len(rows) == 0 {
		b.WriteString("        <p class=\"empty\">No players yet.</p>\n      </section>\n")
		return
	}
	b.WriteString("        <table>\n          <thead><tr><th>Name</th><th>Number</th>")
	if showTime {
		b.WriteString("<th>Time remaining</th>")
	}
	b.WriteString("</tr></thead>\n          <tbody>\n")
	for _, row := range rows {
		b.WriteString("            <tr><td>" + templ.EscapeString(row.Name) + "</td><td>" + templ.EscapeString(row.Number) + "</td>")
		if showTime {
			b.WriteString("<td>" + templ.EscapeString(row.TimeRemaining) + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("          </tbody>\n        </table>\n      </section>\n")
}

const liveUpdateScript = `    <script>
      const scheme = window.location.protocol === "https:" ? "wss://" : "ws://";
      const socket = new WebSocket(scheme + window.location.host + "/ws/results");
      socket.addEventListener("message", (event) => {
        const data = JSON.parse(event.data);
        if (data.type !== "results" || !data.html) {
          return;
        }
        document.querySelector("main.shell").innerHTML = "<h1>Results</h1>" + data.html;
      });
    </script>
`
