package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

func promptString(message string) (string, error) {
	var answer string
	if err := survey.AskOne(&survey.Input{Message: message}, &answer, survey.WithValidator(survey.Required)); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func promptInt(message string) (int, error) {
	answer, err := promptString(message)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", answer, err)
	}
	return v, nil
}

func promptFloat(message string) (float64, error) {
	answer, err := promptString(message)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(answer, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", answer, err)
	}
	return v, nil
}

// promptExistingFile asks for a path to a regular file, completing on tab.
func promptExistingFile(message string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: message,
		Suggest: suggestFiles,
	}
	if err := survey.AskOne(prompt, &answer, survey.WithValidator(validateExistingFile)); err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func promptMultiSelect(message string, options []string) ([]string, error) {
	var selected []string
	prompt := &survey.MultiSelect{
		Message: message,
		Options: options,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}
	return selected, nil
}

func validateExistingFile(ans interface{}) error {
	path, ok := ans.(string)
	if !ok {
		return errors.New("expected a path")
	}
	info, err := os.Stat(strings.TrimSpace(path))
	if err != nil {
		return fmt.Errorf("file does not exist: %s", path)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	return nil
}

func suggestFiles(toComplete string) []string {
	matches, _ := filepath.Glob(toComplete + "*")
	return matches
}
