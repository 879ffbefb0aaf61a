package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Game is the maze page. The player's name and number travel in the query
// string; the script checks in, registers and reports the result itself.
func Game() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <meta name="viewport" content="width=device-width, initial-scale=1"/>
    <title>Maze Escape</title>
    <link rel="stylesheet" href="`+assetPath("/static/game.css")+`"/>
  </head>
  <body>
    <main class="game game-container">
      <div class="player-card">
        <span id="player-name"></span>
        <span id="player-number"></span>
      </div>
      <div id="timer-container" class="timer-container">
        <svg width="56" height="56" viewBox="0 0 56 56">
          <circle class="timer-track" cx="28" cy="28" r="22"/>
          <circle class="timer-progress" cx="28" cy="28" r="22"/>
        </svg>
        <span id="timer">5:00</span>
      </div>
      <div id="maze" class="maze"></div>
      <div id="controls" class="controls" hidden>
        <button id="up" type="button">&uarr;</button>
        <button id="left" type="button">&larr;</button>
        <button id="down" type="button">&darr;</button>
        <button id="right" type="button">&rarr;</button>
      </div>
      <div id="game-status" class="status" hidden>
        <p id="status-message"></p>
        <a href="/results">View results</a>
      </div>
    </main>
    <script src="`+assetPath("/static/game.js")+`"></script>
  </body>
</html>
`)
		return err
	})
}
