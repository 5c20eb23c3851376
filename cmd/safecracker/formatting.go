package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/DmarshalTU/safecracker/pkg/style"
	"github.com/DmarshalTU/safecracker/pkg/ui"
)

// formatPassword renders the result line. Piped or colorless output gets
// the exact plain form "Password: <count>"; an interactive terminal gets
// the same text styled.
func formatPassword(password int, noColor bool) string {
	plain := fmt.Sprintf("Password: %d", password)

	if noColor || ui.DetectFormat(os.Stdout) != ui.FormatTerminal {
		return plain
	}

	return style.LabelStyle.Render("Password:") + " " +
		style.PasswordStyle.Render(strconv.Itoa(password))
}
