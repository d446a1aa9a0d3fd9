package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	gitDirectoryNameConstant   = ".git"
	hooksDirectoryNameConstant = "hooks"
	hookFileNameConstant       = "pre-commit"

	hookScriptMarkerConstant  = "# managed by precommit"
	hookScriptContentConstant = "#!/bin/sh\n" + hookScriptMarkerConstant + "\nexec precommit run\n"

	hookFilePermissionsConstant       = os.FileMode(0o755)
	hooksDirectoryPermissionsConstant = os.FileMode(0o755)

	missingGitDirectoryTemplateConstant = "%s does not contain a %s directory"
	foreignHookErrorTemplateConstant    = "existing hook at %s was not installed by precommit; use --force to overwrite"
	foreignHookRemovalTemplateConstant  = "existing hook at %s was not installed by precommit; refusing to remove it"
	hookNotInstalledTemplateConstant    = "no precommit hook installed at %s"
)

// Installer writes and removes the managed pre-commit hook script.
type Installer struct {
	fileSystem FileSystem
}

// NewInstaller constructs an Installer over the provided filesystem,
// defaulting to the operating system when nil.
func NewInstaller(fileSystem FileSystem) *Installer {
	if fileSystem == nil {
		fileSystem = OSFileSystem{}
	}
	return &Installer{fileSystem: fileSystem}
}

// Install writes the hook script into the repository's hooks directory and
// returns the hook path. An existing hook not carrying the managed marker is
// preserved unless force is set.
func (installer *Installer) Install(repositoryPath string, force bool) (string, error) {
	gitDirectoryPath := filepath.Join(repositoryPath, gitDirectoryNameConstant)
	gitDirectoryInfo, statError := installer.fileSystem.Stat(gitDirectoryPath)
	if statError != nil || !gitDirectoryInfo.IsDir() {
		return "", fmt.Errorf(missingGitDirectoryTemplateConstant, repositoryPath, gitDirectoryNameConstant)
	}

	hooksDirectoryPath := filepath.Join(gitDirectoryPath, hooksDirectoryNameConstant)
	if mkdirError := installer.fileSystem.MkdirAll(hooksDirectoryPath, hooksDirectoryPermissionsConstant); mkdirError != nil {
		return "", mkdirError
	}

	hookPath := filepath.Join(hooksDirectoryPath, hookFileNameConstant)
	existingContent, readError := installer.fileSystem.ReadFile(hookPath)
	if readError == nil && !force && !isManagedHook(existingContent) {
		return "", fmt.Errorf(foreignHookErrorTemplateConstant, hookPath)
	}

	if writeError := installer.fileSystem.WriteFile(hookPath, []byte(hookScriptContentConstant), hookFilePermissionsConstant); writeError != nil {
		return "", writeError
	}

	return hookPath, nil
}

// Uninstall removes the managed hook script and returns its path. Hooks
// written by other tools are left untouched.
func (installer *Installer) Uninstall(repositoryPath string) (string, error) {
	hookPath := filepath.Join(repositoryPath, gitDirectoryNameConstant, hooksDirectoryNameConstant, hookFileNameConstant)

	existingContent, readError := installer.fileSystem.ReadFile(hookPath)
	if readError != nil {
		if errors.Is(readError, os.ErrNotExist) {
			return "", fmt.Errorf(hookNotInstalledTemplateConstant, hookPath)
		}
		return "", readError
	}

	if !isManagedHook(existingContent) {
		return "", fmt.Errorf(foreignHookRemovalTemplateConstant, hookPath)
	}

	if removeError := installer.fileSystem.Remove(hookPath); removeError != nil {
		return "", removeError
	}

	return hookPath, nil
}

func isManagedHook(content []byte) bool {
	return strings.Contains(string(content), hookScriptMarkerConstant)
}
