package logger_test

import (
	"os"
	"time"

	"github.com/mordilloSan/locale-logger/logger"
)

func exampleClock() time.Time {
	return time.Date(2025, time.March, 7, 9, 5, 1, 0, time.UTC)
}

// This example logs through a dedicated handle with plain output.
func ExampleNew() {
	log, err := logger.New(
		logger.Config{MinLevel: logger.InfoLevel, Timezone: "UTC", Color: logger.ColorNever},
		logger.WithOutput(os.Stdout),
		logger.WithClock(exampleClock),
	)
	if err != nil {
		panic(err)
	}

	log.Debug("config_loaded")
	log.Info("startup")
	log.Status(500, "request_server_error")
	log.Warning("greeting")
	// Output:
	// 2025/3/7 09:05:01 [Info] System started
	// 2025/3/7 09:05:01 [Error] Request failed
	// 2025/3/7 09:05:01 [Warning] Translate Failed! | Lang en | Tz UTC | Value greeting
}

// This example switches the handle to Chinese and Shanghai time.
func ExampleLogger_Configure() {
	log, err := logger.New(
		logger.Config{Color: logger.ColorNever},
		logger.WithOutput(os.Stdout),
		logger.WithClock(exampleClock),
	)
	if err != nil {
		panic(err)
	}

	if err := log.Configure(logger.DebugLevel, "zh-CN", "Asia/Shanghai"); err != nil {
		panic(err)
	}
	log.Info("startup")
	// Output:
	// 2025/3/7 17:05:01 [信息] 系统已启动
}

// This example configures the process-wide logger from the environment,
// as if started with
//
//	LOGGER_LEVEL=warning LOGGER_LANG=zh-CN LOGGER_TZ=UTC LOGGER_COLOR=never ./myapp
func ExampleConfigFromEnv() {
	env := map[string]string{
		logger.EnvLevel:    "warning",
		logger.EnvLanguage: "zh-CN",
		logger.EnvTimezone: "UTC",
		logger.EnvColor:    "never",
	}
	for k, v := range env {
		os.Setenv(k, v)
		defer os.Unsetenv(k)
	}
	defer logger.SetDefault(logger.Default())

	cfg, err := logger.ConfigFromEnv()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg, logger.WithOutput(os.Stdout), logger.WithClock(exampleClock)); err != nil {
		panic(err)
	}

	logger.Info("startup")
	logger.Error("shutdown")
	// Output:
	// 2025/3/7 09:05:01 [错误] 系统已停止
}
