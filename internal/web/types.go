package web

type ResultRow struct {
	Name          string
	Number        string
	TimeRemaining string
}

type ResultsBoard struct {
	Escaped    []ResultRow
	Eliminated []ResultRow
	LiveUpdate bool
}
