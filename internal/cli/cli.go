// Package cli provides the command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/textify/internal/commands"
	"github.com/temirov/textify/internal/config"
	"github.com/temirov/textify/internal/output"
	"github.com/temirov/textify/internal/services/clipboard"
	"github.com/temirov/textify/internal/tokenizer"
	"github.com/temirov/textify/internal/utils"
)

const (
	rootFlagName         = "root"
	outputFlagName       = "output"
	configFlagName       = "config"
	copyFlagName         = "copy"
	tokensFlagName       = "tokens"
	modelFlagName        = "model"
	versionFlagName      = "version"
	globalFlagName       = "global"
	forceFlagName        = "force"
	versionTemplate      = "textify version: %s\n"
	rootUse              = utils.ApplicationName
	rootShortDescription = "serialize a project into one text document"
	rootLongDescription  = `textify writes the directory tree of a project followed by the content of every
allow-listed source file into a single text document.
Without flags it walks the current directory and writes project_context_for_ai.txt.
Settings are read from ~/.textify/config.yaml and .textify.yaml when present; flags override them.`
	rootUsageExample = `  # Serialize the current directory
  textify

  # Serialize another project and copy the result
  textify --root ../webapp --output /tmp/webapp.txt --copy

  # Report a token estimate for a specific model
  textify --tokens --model gpt-4`
	initUse              = "init"
	initShortDescription = "write the default configuration file"
	initLongDescription  = `Write the default textify configuration to .textify.yaml in the working directory,
or to ~/.textify/config.yaml with --global. Existing files are kept unless --force is given.`

	rootFlagDescription    = "project directory to serialize"
	outputFlagDescription  = "document file to write"
	configFlagDescription  = "configuration file to use instead of .textify.yaml"
	copyFlagDescription    = "copy the document to the clipboard"
	tokensFlagDescription  = "estimate the token count of the document"
	modelFlagDescription   = "tokenizer model to use for token counting"
	versionFlagDescription = "display application version"
	globalFlagDescription  = "write the global configuration instead of the local one"
	forceFlagDescription   = "overwrite an existing configuration file"

	configurationInitializedFormat = "Configuration written to %s\n"
	errorLoadConfigurationFormat   = "loading configuration: %w"
	errorTokenizerFormat           = "initializing tokenizer: %w"
	errorCountTokensFormat         = "counting tokens in %s: %w"
	errorCopyFormat                = "copying %s to clipboard: %w"

	logFieldPath              = "path"
	logFieldError             = "error"
	placeholderWarningMessage = "unreadable file replaced by placeholder"
	tokensSkippedMessage      = "document is not valid UTF-8; token count skipped"
)

// Dependencies holds the collaborators used by the commands.
type Dependencies struct {
	Logger           *zap.Logger
	Filesystem       afero.Fs
	Copier           clipboard.Copier
	NewCounter       func(tokenizer.Config) (tokenizer.Counter, string, error)
	WorkingDirectory string
	HomeDirectory    string
}

// Execute runs the textify application.
func Execute(logger *zap.Logger) error {
	rootCommand := NewRootCommand(Dependencies{
		Logger:     logger,
		Filesystem: afero.NewOsFs(),
		Copier:     clipboard.NewService(),
		NewCounter: tokenizer.NewCounter,
	})
	return rootCommand.Execute()
}

// generateOptions stores flag values of the root command.
type generateOptions struct {
	rootDirectory     string
	outputFile        string
	configurationPath string
	copyToClipboard   bool
	countTokens       bool
	model             string
	showVersion       bool
}

// NewRootCommand builds the root Cobra command.
func NewRootCommand(dependencies Dependencies) *cobra.Command {
	dependencies = withDefaults(dependencies)
	options := generateOptions{model: tokenizer.DefaultModel}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, err := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return err
			}
			return runGenerate(command, dependencies, options)
		},
	}
	flags := rootCommand.Flags()
	flags.StringVar(&options.rootDirectory, rootFlagName, "", rootFlagDescription)
	flags.StringVar(&options.outputFile, outputFlagName, "", outputFlagDescription)
	flags.StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	flags.BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	flags.BoolVar(&options.countTokens, tokensFlagName, false, tokensFlagDescription)
	flags.StringVar(&options.model, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)
	flags.BoolVar(&options.showVersion, versionFlagName, false, versionFlagDescription)

	rootCommand.AddCommand(createInitCommand(dependencies))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

func withDefaults(dependencies Dependencies) Dependencies {
	if dependencies.Logger == nil {
		dependencies.Logger = zap.NewNop()
	}
	if dependencies.Filesystem == nil {
		dependencies.Filesystem = afero.NewOsFs()
	}
	if dependencies.Copier == nil {
		dependencies.Copier = clipboard.NewService()
	}
	if dependencies.NewCounter == nil {
		dependencies.NewCounter = tokenizer.NewCounter
	}
	return dependencies
}

// createInitCommand returns the init subcommand.
func createInitCommand(dependencies Dependencies) *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			destinationPath, err := config.InitializeConfiguration(config.InitOptions{
				Filesystem:       dependencies.Filesystem,
				Target:           target,
				Force:            force,
				WorkingDirectory: dependencies.WorkingDirectory,
				HomeDirectory:    dependencies.HomeDirectory,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(command.OutOrStdout(), configurationInitializedFormat, destinationPath)
			return err
		},
	}
	initCommand.Flags().BoolVar(&global, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// resolveConfiguration layers defaults, configuration files and flags into one Configuration.
func resolveConfiguration(dependencies Dependencies, options generateOptions) (config.Configuration, error) {
	fileConfiguration, err := config.LoadFileConfiguration(config.LoadOptions{
		Filesystem:       dependencies.Filesystem,
		WorkingDirectory: dependencies.WorkingDirectory,
		HomeDirectory:    dependencies.HomeDirectory,
		ExplicitFilePath: options.configurationPath,
	})
	if err != nil {
		return config.Configuration{}, fmt.Errorf(errorLoadConfigurationFormat, err)
	}
	resolved := fileConfiguration.Apply(config.DefaultOptions())
	if options.rootDirectory != "" {
		resolved.RootDirectory = options.rootDirectory
	}
	if options.outputFile != "" {
		resolved.OutputFile = options.outputFile
	}
	return config.New(resolved), nil
}

func runGenerate(command *cobra.Command, dependencies Dependencies, options generateOptions) error {
	configuration, err := resolveConfiguration(dependencies, options)
	if err != nil {
		return err
	}
	logger := dependencies.Logger

	generator := commands.NewDocumentGenerator(dependencies.Filesystem, configuration)
	generator.Warn = func(filePath string, readError error) {
		logger.Warn(placeholderWarningMessage, zap.String(logFieldPath, filePath), zap.NamedError(logFieldError, readError))
	}
	summary, err := generator.GenerateFile()
	if err != nil {
		return err
	}
	outputPath := configuration.OutputFile()

	if options.countTokens {
		counter, modelName, counterErr := dependencies.NewCounter(tokenizer.Config{Model: options.model})
		if counterErr != nil {
			return fmt.Errorf(errorTokenizerFormat, counterErr)
		}
		result, countErr := tokenizer.CountFile(counter, dependencies.Filesystem, outputPath)
		if countErr != nil {
			return fmt.Errorf(errorCountTokensFormat, outputPath, countErr)
		}
		if result.Counted {
			summary.TotalTokens = result.Tokens
			summary.Model = modelName
		} else {
			logger.Warn(tokensSkippedMessage, zap.String(logFieldPath, outputPath))
		}
	}

	if options.copyToClipboard {
		if copyErr := clipboard.CopyFile(dependencies.Copier, dependencies.Filesystem, outputPath); copyErr != nil {
			return fmt.Errorf(errorCopyFormat, outputPath, copyErr)
		}
	}

	logger.Info(output.FormatSummaryLine(summary))
	_, err = fmt.Fprintln(command.OutOrStdout(), output.FormatCompletionLine(outputPath))
	return err
}
