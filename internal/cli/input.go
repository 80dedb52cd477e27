package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// Surrounding whitespace is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readLine prompts on the app's output and reads one line.
func (a *App) readLine(prompt string) (string, error) {
	return GetSimpleText(a.reader, prompt, a.out)
}

// pause shows msg and waits for Enter; whatever was typed is discarded.
func (a *App) pause(msg string) error {
	_, err := a.readLine(msg)
	return err
}

// confirm asks a y/n question until it gets one of the two answers.
func (a *App) confirm(prompt string) (bool, error) {
	for {
		answer, err := a.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		if err := a.pause(a.palette.hint.Sprint("Enter a valid choice 'y' or 'n'. Enter to continue")); err != nil {
			return false, err
		}
		a.screen.Clear()
	}
}
