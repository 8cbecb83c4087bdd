package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный логгер приложения. Инициализируется один раз в main
// (или в TestMain для пакетов, чей код пишет логи).
var Log *logrus.Logger

// Init настраивает глобальный логгер из переменных окружения.
// LOG_LEVEL: debug | info | warn | error (по умолчанию info).
// LOG_FORMAT: json для продакшена, всё остальное - текст с цветами.
func Init() {
	Log = logrus.New()

	levelName, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(os.Stdout)
}
