package shellerr

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ru", l10n.LexiconMap{
		`Illegal usage of command "%s"`:          `Неверное использование команды "%s"`,
		`Command "%s" requires the "%s" flag`:    `Команде "%s" нужен флаг "%s"`,
		`Command "%s" is not found`:              `Команда "%s" не найдена`,
		`"%s" doesn't exist`:                     `"%s" не существует`,
		`"%s" already exists`:                    `"%s" уже существует`,
		`"%s" is not a directory`:                `"%s" не является каталогом`,
		`"%s" is not a file`:                     `"%s" не является файлом`,
		`"%s" is not in the current directory`:   `"%s" находится не в текущем каталоге`,
		`"%s" can't be deleted`:                  `"%s" не может быть удалён`,
		`Unable to read "%s"`:                    `Не удалось прочитать "%s"`,
		`Invalid path "%s"`:                      `Недопустимый путь "%s"`,
		`"%s" can't be created`:                  `"%s" не может быть создан`,
		`Unable to write "%s"`:                   `Не удалось записать "%s"`,
		"Unknown error":                          "Неизвестная ошибка",
	})
}
