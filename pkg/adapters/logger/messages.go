package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ru", l10n.LexiconMap{
		// Session lifecycle (info)
		"Session %s started in %s": "Сеанс %s запущен в %s",
		"Session %s ended":         "Сеанс %s завершён",
		"Reading script %s":        "Чтение сценария %s",
		"Interactive mode":         "Интерактивный режим",

		// Dispatcher (debug)
		"Executing %s with %d argument(s)": "Выполнение %s с аргументами: %d",
		"Command %s failed: %s":            "Команда %s завершилась ошибкой: %s",
		"Directory changed to %s":          "Текущий каталог изменён на %s",
		"Cannot delete %s: %v":             "Не удалось удалить %s: %v",
		"Cannot stat %s: %v":               "Не удалось получить сведения о %s: %v",

		// Terminal (warn)
		"Terminal unavailable, falling back to plain input: %v": "Терминал недоступен, используется простой ввод: %v",
		"History recall ignored while a command is running":     "Вызов истории пропущен во время выполнения команды",
	})
}
