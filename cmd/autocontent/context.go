package main

import (
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/onegreenvn/autocontent-backend/internal/app"
	"github.com/onegreenvn/autocontent-backend/internal/config"
	"github.com/onegreenvn/autocontent-backend/internal/database"
)

type commandContext struct {
	envFlag *string
	verbose *bool

	appOnce sync.Once
	app     *app.App
	appErr  error
}

func newCommandContext(envFlag *string, verbose *bool) *commandContext {
	return &commandContext{envFlag: envFlag, verbose: verbose}
}

// ensureApp loads the environment, connects to the database and wires services once
func (c *commandContext) ensureApp() (*app.App, error) {
	c.appOnce.Do(func() {
		var err error
		if path := strings.TrimSpace(*c.envFlag); path != "" {
			err = godotenv.Load(path)
		} else {
			err = godotenv.Load()
		}
		if err != nil {
			logrus.Debugf("No env file loaded: %v", err)
		}

		level := logrus.WarnLevel
		if *c.verbose {
			level = logrus.DebugLevel
		}
		logrus.SetLevel(level)
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

		db, err := database.InitDB(config.GetDatabaseConfig())
		if err != nil {
			c.appErr = err
			return
		}
		c.app = app.New(db, config.GetServerConfig(), config.GetAuthConfig(), config.GetSchedulerConfig(), config.GetRedisConfig())
	})
	return c.app, c.appErr
}

func (c *commandContext) close() {
	if c.app != nil {
		c.app.Close()
	}
}
