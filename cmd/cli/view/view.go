package view

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/linecard/echo/pkg/echo"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)

func Envelope(r echo.Response) (string, error) {
	j, err := json.Marshal(r)
	return string(j), err
}

func Status(r echo.Response) string {
	label := fmt.Sprintf("%d %s", r.StatusCode, http.StatusText(r.StatusCode))
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return okStyle.Render(label)
	}
	return failStyle.Render(label)
}

func Failure(err error) string {
	return failStyle.Render("error") + " " + err.Error()
}
