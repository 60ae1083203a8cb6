package logger

// Default is the logger behind the package level functions.
// Its level can be configured with the LOG_LEVEL environment variable.
var Default Logger

func Debug(msg string, ds ...LoggingDetail) {
	Default.Debug(msg, ds...)
}

func Error(msg string, ds ...LoggingDetail) {
	Default.Error(msg, ds...)
}
