package web

import "strconv"

func itoa(value int) string {
	return strconv.Itoa(value)
}
