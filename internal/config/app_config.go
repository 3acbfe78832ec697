package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/temirov/textify/internal/utils"
)

const (
	errorWorkingDirectoryFormat = "determine working directory: %w"
	errorResolvePathFormat      = "resolve configuration path %s: %w"
	errorStatFormat             = "stat configuration %s: %w"
	errorIsDirectoryFormat      = "configuration path %s is a directory"
	errorExplicitMissingFormat  = "configuration file %s does not exist"
	errorReadFormat             = "read configuration from %s: %w"
	errorDecodeFormat           = "decode configuration from %s: %w"
)

// LoadOptions controls how configuration files are discovered.
type LoadOptions struct {
	Filesystem       afero.Fs
	WorkingDirectory string
	HomeDirectory    string
	ExplicitFilePath string
}

// FileConfiguration mirrors the YAML layout of textify configuration files.
// Empty values leave the underlying setting untouched.
type FileConfiguration struct {
	Root       string                 `mapstructure:"root"`
	Output     string                 `mapstructure:"output"`
	Exclude    ExclusionConfiguration `mapstructure:"exclude"`
	Extensions []string               `mapstructure:"extensions"`
}

// ExclusionConfiguration lists bare names excluded from traversal.
type ExclusionConfiguration struct {
	Directories []string `mapstructure:"directories"`
	Files       []string `mapstructure:"files"`
}

// LoadFileConfiguration reads the global configuration and then the local (or explicit) one,
// letting local values override global ones.
func LoadFileConfiguration(options LoadOptions) (FileConfiguration, error) {
	filesystem := options.Filesystem
	if filesystem == nil {
		filesystem = afero.NewOsFs()
	}
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, err := os.Getwd()
		if err != nil {
			return FileConfiguration{}, fmt.Errorf(errorWorkingDirectoryFormat, err)
		}
		workingDirectory = currentDirectory
	}
	homeDirectory := options.HomeDirectory
	if homeDirectory == "" {
		if resolvedHome, err := os.UserHomeDir(); err == nil {
			homeDirectory = resolvedHome
		}
	}

	var merged FileConfiguration
	if homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName, utils.GlobalConfigFileName)
		globalConfig, loadErr := loadConfigurationFromPath(filesystem, globalPath, false)
		if loadErr != nil {
			return FileConfiguration{}, loadErr
		}
		merged = merged.Merge(globalConfig)
	}

	localPath, explicit, resolveErr := resolveLocalConfigPath(workingDirectory, options.ExplicitFilePath)
	if resolveErr != nil {
		return FileConfiguration{}, resolveErr
	}
	localConfig, loadErr := loadConfigurationFromPath(filesystem, localPath, explicit)
	if loadErr != nil {
		return FileConfiguration{}, loadErr
	}
	return merged.Merge(localConfig), nil
}

func resolveLocalConfigPath(workingDirectory, explicitPath string) (string, bool, error) {
	if explicitPath == "" {
		return filepath.Join(workingDirectory, utils.ConfigFileName), false, nil
	}
	if filepath.IsAbs(explicitPath) {
		return explicitPath, true, nil
	}
	if workingDirectory == "" {
		absolutePath, err := filepath.Abs(explicitPath)
		if err != nil {
			return "", true, fmt.Errorf(errorResolvePathFormat, explicitPath, err)
		}
		return absolutePath, true, nil
	}
	return filepath.Join(workingDirectory, explicitPath), true, nil
}

func loadConfigurationFromPath(filesystem afero.Fs, path string, required bool) (FileConfiguration, error) {
	info, statErr := filesystem.Stat(path)
	if statErr != nil {
		if os.IsNotExist(statErr) {
			if required {
				return FileConfiguration{}, fmt.Errorf(errorExplicitMissingFormat, path)
			}
			return FileConfiguration{}, nil
		}
		return FileConfiguration{}, fmt.Errorf(errorStatFormat, path, statErr)
	}
	if info.IsDir() {
		return FileConfiguration{}, fmt.Errorf(errorIsDirectoryFormat, path)
	}

	reader := viper.New()
	reader.SetFs(filesystem)
	reader.SetConfigFile(path)
	reader.SetConfigType("yaml")
	if readErr := reader.ReadInConfig(); readErr != nil {
		return FileConfiguration{}, fmt.Errorf(errorReadFormat, path, readErr)
	}
	var configuration FileConfiguration
	if decodeErr := reader.Unmarshal(&configuration); decodeErr != nil {
		return FileConfiguration{}, fmt.Errorf(errorDecodeFormat, path, decodeErr)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver. Lists replace rather than append.
func (configuration FileConfiguration) Merge(override FileConfiguration) FileConfiguration {
	result := configuration
	if override.Root != "" {
		result.Root = override.Root
	}
	if override.Output != "" {
		result.Output = override.Output
	}
	if len(override.Exclude.Directories) > 0 {
		result.Exclude.Directories = utils.DeduplicateStrings(override.Exclude.Directories)
	}
	if len(override.Exclude.Files) > 0 {
		result.Exclude.Files = utils.DeduplicateStrings(override.Exclude.Files)
	}
	if len(override.Extensions) > 0 {
		result.Extensions = utils.DeduplicateStrings(override.Extensions)
	}
	return result
}

// Apply overlays the file configuration onto options.
func (configuration FileConfiguration) Apply(options Options) Options {
	result := options
	if configuration.Root != "" {
		result.RootDirectory = configuration.Root
	}
	if configuration.Output != "" {
		result.OutputFile = configuration.Output
	}
	if len(configuration.Exclude.Directories) > 0 {
		result.ExcludedDirectories = append([]string(nil), configuration.Exclude.Directories...)
	}
	if len(configuration.Exclude.Files) > 0 {
		result.ExcludedFiles = append([]string(nil), configuration.Exclude.Files...)
	}
	if len(configuration.Extensions) > 0 {
		result.Extensions = append([]string(nil), configuration.Extensions...)
	}
	return result
}
