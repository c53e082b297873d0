package porcelain

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// defaultConfigText mirrors the teacher's .git/config default content
// (core.repositoryformatversion etc., plus a placeholder [user] section),
// reworked to live purely in memory — spec.md §6 rules out any file I/O.
const defaultConfigText = `[core]
	repositoryformatversion = 0
	filemode = true
	bare = false
	logallrefupdates = true

[user]
	name = username
	email = user@email.com
`

// Config wraps an in-memory ini.File the way the teacher's porcelain
// wraps a ".git/config" file on disk — same key/value shape, no path.
type Config struct {
	file *ini.File
}

func defaultConfig() *Config {
	f, err := ini.Load([]byte(defaultConfigText))
	if err != nil {
		// defaultConfigText is a compile-time constant; a parse failure
		// here means the constant itself is malformed.
		panic(errors.Wrap(err, "porcelain: default config is not valid ini"))
	}
	return &Config{file: f}
}

// GetConfig reads a "section.key" value. Mirrors the teacher's
// getConfig, minus the disk read.
func (c *Config) GetConfig(key string) (string, error) {
	section, name, err := splitConfigKey(key)
	if err != nil {
		return "", err
	}
	val := c.file.Section(section).Key(name).String()
	if val == "" {
		return "", fmt.Errorf("config key not found: %s", key)
	}
	return val, nil
}

// SetConfig writes a "section.key" value. Mirrors the teacher's
// setConfig, minus the SaveTo disk write.
func (c *Config) SetConfig(key, value string) error {
	section, name, err := splitConfigKey(key)
	if err != nil {
		return err
	}
	c.file.Section(section).Key(name).SetValue(value)
	return nil
}

// Author is the (name, email) pair used to stamp commits, sourced from
// the repo's in-memory config the same way the teacher's getAuthorInfo
// reads it from .git/config.
type Author struct {
	Name  string
	Email string
}

// AuthorInfo reads the [user] section's name/email.
func (c *Config) AuthorInfo() (Author, error) {
	name, err := c.GetConfig("user.name")
	if err != nil {
		return Author{}, err
	}
	email, err := c.GetConfig("user.email")
	if err != nil {
		return Author{}, err
	}
	return Author{Name: name, Email: email}, nil
}

func splitConfigKey(key string) (section, name string, err error) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid config key: %s", key)
	}
	return parts[0], parts[1], nil
}
