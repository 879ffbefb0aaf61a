package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Home() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Maze Escape</title>
  </head>
  <body>
    <main class="shell">
      <header class="hero">
        <span class="tag">Maze Escape</span>
        <h1>Find the exit before the clock runs out.</h1>
        <p>Each player gets one run. Enter your name and number to begin.</p>
      </header>

      <section class="panel">
        <form id="playerForm" class="player-form" method="get" action="/play">
          <input name="player_name" placeholder="Player name" autocomplete="name" required/>
          <input name="player_number" placeholder="Player number" autocomplete="off" required/>
          <button type="submit" class="primary">Start</button>
        </form>
      </section>

      <section class="panel">
        <a href="/results">View results</a>
      </section>
    </main>
  </body>
</html>
`)
		return err
	})
}
