// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadBalance reads the balance configuration file and overlays it on the
// built-in defaults: поля, которых нет в файле, сохраняют значения по
// умолчанию, неизвестные поля игнорируются. Любая ошибка возвращается вместе
// с пригодным к использованию балансом — вызывающий может продолжать.
func LoadBalance(path string) (*Balance, error) {
	bal := DefaultBalance()

	file, err := os.ReadFile(path)
	if err != nil {
		return bal, fmt.Errorf("failed to read balance file: %w", err)
	}

	if err := json.Unmarshal(file, bal); err != nil {
		// Частично применённый результат не используем — возвращаем чистые умолчания.
		return DefaultBalance(), fmt.Errorf("failed to unmarshal balance file: %w", err)
	}

	bal.sanitize()
	fmt.Printf("Loaded balance config from %s\n", path)
	return bal, nil
}
