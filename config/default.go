package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"vwire/log"
	"vwire/wire"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelInfo.String(),
	MaxDepth: wire.DefaultMaxDepth,
	Format:   "text",
}

const defaultConfigTemplateText = `# vwire Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
log_level = "{{.LogLevel}}"

# Sets the maximum section/list nesting depth the decoder will accept
# before rejecting a message.
max_depth = {{.MaxDepth}}

# Sets the default output format for decoded messages. Can be one of
# the following values:
# - text
# - table
# - json
format = "{{.Format}}"
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, ConfigFileName), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
