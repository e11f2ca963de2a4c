package logger

import (
	"os"

	"go.uber.org/zap"
)

var Logger *zap.Logger

func init() {
	var err error
	if os.Getenv("ENV") == "dev" {
		Logger, err = zap.NewDevelopment()
	} else {
		Logger, err = zap.NewProduction()
	}
	if err != nil {
		Logger = zap.NewNop()
	}
}
