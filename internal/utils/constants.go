package utils

const (
	// ApplicationName is the executable and configuration namespace.
	ApplicationName = "textify"
	// ConfigFileName is the local configuration file looked up in the working directory.
	ConfigFileName = ".textify.yaml"
	// GlobalConfigDirectoryName is the directory under the user's home holding the global configuration.
	GlobalConfigDirectoryName = ".textify"
	// GlobalConfigFileName is the configuration file inside GlobalConfigDirectoryName.
	GlobalConfigFileName = "config.yaml"
)

const (
	// LoggerInitializationFailedMessageFormat reports a logger construction failure.
	LoggerInitializationFailedMessageFormat = "failed to initialize logger: %w"
	// ApplicationExecutionFailedMessage prefixes fatal errors returned by the command tree.
	ApplicationExecutionFailedMessage = "textify failed"
)
