package server

import (
	"bytes"
	"context"

	"escape-tracker/internal/registry"
	"escape-tracker/internal/web"
)

func renderResultsHTML(escaped, eliminated []registry.PlayerRecord) string {
	var buf bytes.Buffer
	if err := web.ResultsTable("escaped", "Escaped", resultRows(escaped), true).Render(context.Background(), &buf); err != nil {
		return ""
	}
	if err := web.ResultsTable("eliminated", "Eliminated", resultRows(eliminated), false).Render(context.Background(), &buf); err != nil {
		return ""
	}
	return buf.String()
}
