// Package main provides localization for the dirsh CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Russian translations for CLI messages.
	l10n.Register("ru", l10n.LexiconMap{
		// Flag groups
		"Logging":     "Журналирование",
		"Interactive": "Интерактивный режим",

		// Root command
		"A small shell for navigating and editing the filesystem.": "Небольшая оболочка для навигации и редактирования файловой системы.",
		"dirsh version %s": "dirsh версия %s",

		// Usage and startup
		"Usage: dirsh [file_name]": "Использование: dirsh [имя_файла]",
		"Cannot open script %s":    "Не удалось открыть сценарий %s",
	})
}
